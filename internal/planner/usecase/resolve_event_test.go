package usecase_test

import (
	"context"
	"testing"
	"time"

	"agentic-task-planner/internal/planner"
	"agentic-task-planner/pkg/gcalendar"
)

func TestResolveEventDayWindow(t *testing.T) {
	llm := &mockLLM{answer: `{"intent": "delete_event", "eventTitleToDelete": "Review", "eventDateToDelete": "2025-07-25"}`}
	cal := &mockCalendar{events: []gcalendar.Event{{ID: "ev-1", Summary: "Review"}}}
	uc := newTestUseCase(t, llm, cal, &mockMailer{})

	if _, err := uc.ProcessPrompt(context.Background(), planner.ProcessPromptInput{Prompt: "cancel the review on 2025-07-25"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cal.listReqs) != 1 {
		t.Fatalf("expected 1 list call, got %d", len(cal.listReqs))
	}

	req := cal.listReqs[0]
	loc, _ := time.LoadLocation(testTimezone)
	wantMin := time.Date(2025, 7, 25, 0, 0, 0, 0, loc)
	wantMax := time.Date(2025, 7, 25, 23, 59, 59, 0, loc)
	if !req.TimeMin.Equal(wantMin) {
		t.Errorf("TimeMin: got %v, want %v", req.TimeMin, wantMin)
	}
	if !req.TimeMax.Equal(wantMax) {
		t.Errorf("TimeMax: got %v, want %v", req.TimeMax, wantMax)
	}
	if req.Query != "Review" {
		t.Errorf("expected title as search hint, got %q", req.Query)
	}
}

func TestResolveEventDefaultWindow(t *testing.T) {
	llm := &mockLLM{answer: `{"intent": "delete_event", "eventTitleToDelete": "Review"}`}
	cal := &mockCalendar{events: []gcalendar.Event{{ID: "ev-1", Summary: "Review"}}}
	uc := newTestUseCase(t, llm, cal, &mockMailer{})

	before := time.Now()
	if _, err := uc.ProcessPrompt(context.Background(), planner.ProcessPromptInput{Prompt: "cancel the review"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after := time.Now()

	req := cal.listReqs[0]
	if req.TimeMin.Before(before.Add(-time.Second)) || req.TimeMin.After(after.Add(time.Second)) {
		t.Errorf("TimeMin should be roughly now, got %v", req.TimeMin)
	}
	if got, want := req.TimeMax.Sub(req.TimeMin), 7*24*time.Hour; got != want {
		t.Errorf("search window: got %v, want %v", got, want)
	}
}

func TestResolveEventBadDateFallsBack(t *testing.T) {
	llm := &mockLLM{answer: `{"intent": "delete_event", "eventTitleToDelete": "Review", "eventDateToDelete": "next friday"}`}
	cal := &mockCalendar{events: []gcalendar.Event{{ID: "ev-1", Summary: "Review"}}}
	uc := newTestUseCase(t, llm, cal, &mockMailer{})

	out, err := uc.ProcessPrompt(context.Background(), planner.ProcessPromptInput{Prompt: "cancel the review next friday"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Kind != planner.OutcomeSuccess {
		t.Errorf("expected the unparseable date to fall back, not fail: %s (%s)", out.Kind, out.Message)
	}

	req := cal.listReqs[0]
	if got, want := req.TimeMax.Sub(req.TimeMin), 7*24*time.Hour; got != want {
		t.Errorf("expected the default window after date-parse failure, got %v", got)
	}
}

func TestResolveEventExactMatchOnly(t *testing.T) {
	llm := &mockLLM{answer: `{"intent": "delete_event", "eventTitleToDelete": "Standup"}`}
	cal := &mockCalendar{events: []gcalendar.Event{
		{ID: "ev-1", Summary: "Standup Retro"},
		{ID: "ev-2", Summary: "Weekly Standup"},
		{ID: "ev-3", Summary: "STANDUP"}, // exact, case differs
	}}
	uc := newTestUseCase(t, llm, cal, &mockMailer{})

	out, err := uc.ProcessPrompt(context.Background(), planner.ProcessPromptInput{Prompt: "cancel the standup"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Kind != planner.OutcomeSuccess {
		t.Fatalf("expected success, got %s (%s)", out.Kind, out.Message)
	}
	if len(cal.deletedIDs) != 1 || cal.deletedIDs[0] != "ev-3" {
		t.Errorf("partial matches must never be selected, deleted %v", cal.deletedIDs)
	}
}
