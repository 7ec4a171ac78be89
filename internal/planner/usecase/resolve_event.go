package usecase

import (
	"context"
	"strings"
	"time"

	"agentic-task-planner/pkg/gcalendar"
)

// resolveEvent locates the calendar event to delete and returns its ID,
// or "" when no event matches.
//
// Search window: the named calendar day [00:00:00, 23:59:59] in the
// configured timezone when a date is given; otherwise now through +7 days.
// A date that fails to parse falls back to the undated window — resolution
// is best-effort, never a hard error.
//
// Among candidates the first event (in start-time order) whose title
// matches exactly, case-insensitively, wins. Partial matches never
// auto-select: deleting the wrong event is worse than a miss.
func (uc *implUseCase) resolveEvent(ctx context.Context, title, date string) (string, error) {
	now := time.Now().In(uc.dateMath.Location())
	timeMin := now
	timeMax := now.Add(eventSearchWindow)

	if date != "" {
		dayStart, dayEnd, err := uc.dateMath.DayWindow(date)
		if err != nil {
			uc.l.Warnf(ctx, "%s: could not parse event date %q, searching the default window: %v", logPrefixDispatch, date, err)
		} else {
			timeMin, timeMax = dayStart, dayEnd
		}
	}

	events, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.calendarID,
		Query:      title,
		TimeMin:    timeMin,
		TimeMax:    timeMax,
	})
	if err != nil {
		return "", err
	}

	for _, event := range events {
		if strings.EqualFold(event.Summary, title) {
			uc.l.Infof(ctx, "%s: resolved event %q to id=%s", logPrefixDispatch, event.Summary, event.ID)
			return event.ID, nil
		}
	}

	uc.l.Infof(ctx, "%s: no event found with title %q date=%q", logPrefixDispatch, title, date)
	return "", nil
}
