package usecase

import (
	"context"

	"agentic-task-planner/internal/planner"
	"agentic-task-planner/pkg/datemath"
	"agentic-task-planner/pkg/gcalendar"
	pkgLog "agentic-task-planner/pkg/log"
	"agentic-task-planner/pkg/mailer"
	"agentic-task-planner/pkg/ollama"
)

// CalendarClient abstracts the Google Calendar API for mocking.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calID, eventID string) error
}

type implUseCase struct {
	l          pkgLog.Logger
	llm        ollama.IOllama
	calendar   CalendarClient
	mailer     mailer.IMailer
	dateMath   *datemath.Parser
	timezone   string
	calendarID string
}

var _ planner.UseCase = (*implUseCase)(nil)

// New creates a new planner UseCase instance.
func New(
	l pkgLog.Logger,
	llm ollama.IOllama,
	calendar CalendarClient,
	m mailer.IMailer,
	dateMath *datemath.Parser,
	timezone string,
	calendarID string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		llm:        llm,
		calendar:   calendar,
		mailer:     m,
		dateMath:   dateMath,
		timezone:   timezone,
		calendarID: calendarID,
	}
}
