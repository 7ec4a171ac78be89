package datemath

import (
	"fmt"
	"time"
)

const (
	// DateTimeLayout is the local datetime format exchanged with the LLM,
	// e.g. "2025-07-21T10:00:00". No timezone offset — values are
	// interpreted in the parser's timezone.
	DateTimeLayout = "2006-01-02T15:04:05"

	// DateLayout is the calendar date format, e.g. "2025-07-25".
	DateLayout = "2006-01-02"
)

// Parser converts date strings into absolute time.Time values pinned to a
// fixed IANA timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Kolkata"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseDateTime parses a local datetime string (DateTimeLayout) in the
// parser's timezone.
func (p *Parser) ParseDateTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateTimeLayout, s, p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid datetime %q: %w", s, err)
	}
	return t, nil
}

// ParseDate parses a calendar date string (DateLayout) in the parser's
// timezone, returning midnight of that day.
func (p *Parser) ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// DayWindow returns the inclusive bounds of the named calendar day:
// [00:00:00, 23:59:59] in the parser's timezone.
func (p *Parser) DayWindow(date string) (time.Time, time.Time, error) {
	start, err := p.ParseDate(date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, p.EndOfDay(start), nil
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given day in the parser's
// timezone. Calendar arithmetic, so DST transition days keep the 23:59:59
// wall-clock bound.
func (p *Parser) EndOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, p.location)
}
