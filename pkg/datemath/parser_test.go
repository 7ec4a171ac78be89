package datemath

import (
	"testing"
	"time"
)

func TestNewParser(t *testing.T) {
	if _, err := NewParser("Asia/Kolkata"); err != nil {
		t.Fatalf("expected valid timezone, got error: %v", err)
	}
	if _, err := NewParser("Not/AZone"); err == nil {
		t.Fatal("expected error for invalid timezone")
	}
}

func TestParseDateTime(t *testing.T) {
	p, _ := NewParser("Asia/Kolkata")

	got, err := p.ParseDateTime("2025-07-21T10:00:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, 7, 21, 10, 0, 0, 0, p.Location())
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := p.ParseDateTime("21/07/2025 10:00"); err == nil {
		t.Error("expected error for non-ISO datetime")
	}
	if _, err := p.ParseDateTime("2025-07-21T10:00:00+05:30"); err == nil {
		t.Error("expected error for datetime with offset")
	}
}

func TestDayWindow(t *testing.T) {
	p, _ := NewParser("Asia/Kolkata")

	start, end, err := p.DayWindow("2025-07-25")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantStart := time.Date(2025, 7, 25, 0, 0, 0, 0, p.Location())
	wantEnd := time.Date(2025, 7, 25, 23, 59, 59, 0, p.Location())
	if !start.Equal(wantStart) {
		t.Errorf("start: got %v, want %v", start, wantStart)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("end: got %v, want %v", end, wantEnd)
	}

	if _, _, err := p.DayWindow("July 25"); err == nil {
		t.Error("expected error for unparseable date")
	}
}

func TestDayWindowDSTTransitions(t *testing.T) {
	p, _ := NewParser("America/New_York")

	cases := []struct {
		name string
		date string
	}{
		{name: "spring forward", date: "2025-03-09"},
		{name: "fall back", date: "2025-11-02"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end, err := p.DayWindow(tc.date)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := start.Format(DateTimeLayout); got != tc.date+"T00:00:00" {
				t.Errorf("start: got %s, want %sT00:00:00", got, tc.date)
			}
			if got := end.Format(DateTimeLayout); got != tc.date+"T23:59:59" {
				t.Errorf("end: got %s, want %sT23:59:59", got, tc.date)
			}
		})
	}
}

func TestStartOfDay(t *testing.T) {
	p, _ := NewParser("UTC")

	in := time.Date(2025, 3, 14, 17, 45, 12, 0, time.UTC)
	got := p.StartOfDay(in)
	want := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
