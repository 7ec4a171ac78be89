package usecase

import (
	"context"
	"fmt"
	"strings"

	"agentic-task-planner/internal/planner"
	"agentic-task-planner/pkg/gcalendar"
	"agentic-task-planner/pkg/mailer"
)

// ProcessPrompt classifies the prompt and dispatches the matching action.
// Validation always happens before any side effect: a rejected request
// never reaches the mailer or the calendar.
func (uc *implUseCase) ProcessPrompt(ctx context.Context, input planner.ProcessPromptInput) (planner.ProcessPromptOutput, error) {
	if strings.TrimSpace(input.Prompt) == "" {
		return planner.ProcessPromptOutput{}, planner.ErrEmptyPrompt
	}

	uc.l.Infof(ctx, "%s: prompt_length=%d", logPrefixDispatch, len(input.Prompt))

	cls := uc.classify(ctx, input.Prompt)

	switch cls.Intent {
	case planner.IntentSendEmail:
		return uc.dispatchSendEmail(ctx, input.Prompt, cls.SendEmail), nil
	case planner.IntentCreateEvent:
		return uc.dispatchCreateEvent(ctx, cls.CreateEvent), nil
	case planner.IntentDeleteEvent:
		return uc.dispatchDeleteEvent(ctx, cls.DeleteEvent), nil
	case planner.IntentGeneralChat:
		return dispatchChat(cls.Chat), nil
	default:
		return planner.ProcessPromptOutput{
			Intent:  planner.IntentUnknown,
			Kind:    planner.OutcomeUnknown,
			Message: msgUnknownIntent,
		}, nil
	}
}

// dispatchSendEmail validates the extracted entities and sends one email.
// The body defaults to the original prompt when the LLM extracted none.
func (uc *implUseCase) dispatchSendEmail(ctx context.Context, prompt string, d *planner.SendEmailDetails) planner.ProcessPromptOutput {
	if d.To == "" || d.Subject == "" {
		return planner.ProcessPromptOutput{
			Intent:  planner.IntentSendEmail,
			Kind:    planner.OutcomeValidationError,
			Message: msgEmailMissingFields,
		}
	}

	body := d.Body
	if body == "" {
		body = prompt
	}

	result, err := uc.mailer.Send(ctx, mailer.SendRequest{
		To:      d.To,
		Subject: d.Subject,
		Body:    body,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: mailer.Send failed: %v", logPrefixDispatch, err)
		return planner.ProcessPromptOutput{
			Intent:  planner.IntentSendEmail,
			Kind:    planner.OutcomeUpstreamError,
			Message: fmt.Sprintf("Error sending email: %v", err),
		}
	}

	return planner.ProcessPromptOutput{
		Intent:  planner.IntentSendEmail,
		Kind:    planner.OutcomeSuccess,
		Message: result,
	}
}

// dispatchCreateEvent validates the extracted entities and creates one
// calendar event in the configured timezone. A missing end time defaults
// to start + 1 hour.
func (uc *implUseCase) dispatchCreateEvent(ctx context.Context, d *planner.CreateEventDetails) planner.ProcessPromptOutput {
	if d.Title == "" || d.Start == "" {
		return planner.ProcessPromptOutput{
			Intent:  planner.IntentCreateEvent,
			Kind:    planner.OutcomeValidationError,
			Message: msgEventMissingFields,
		}
	}

	start, err := uc.dateMath.ParseDateTime(d.Start)
	if err != nil {
		uc.l.Warnf(ctx, "%s: unparseable start time %q: %v", logPrefixDispatch, d.Start, err)
		return planner.ProcessPromptOutput{
			Intent:  planner.IntentCreateEvent,
			Kind:    planner.OutcomeValidationError,
			Message: msgInvalidDateTime,
		}
	}

	end := start.Add(DefaultEventDuration)
	if d.End != "" {
		end, err = uc.dateMath.ParseDateTime(d.End)
		if err != nil {
			uc.l.Warnf(ctx, "%s: unparseable end time %q: %v", logPrefixDispatch, d.End, err)
			return planner.ProcessPromptOutput{
				Intent:  planner.IntentCreateEvent,
				Kind:    planner.OutcomeValidationError,
				Message: msgInvalidDateTime,
			}
		}
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     d.Title,
		Description: d.Description,
		StartTime:   start,
		EndTime:     end,
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: calendar.CreateEvent failed: %v", logPrefixDispatch, err)
		return planner.ProcessPromptOutput{
			Intent:  planner.IntentCreateEvent,
			Kind:    planner.OutcomeUpstreamError,
			Message: fmt.Sprintf("Error creating calendar event: %v", err),
		}
	}

	return planner.ProcessPromptOutput{
		Intent:  planner.IntentCreateEvent,
		Kind:    planner.OutcomeSuccess,
		Message: fmt.Sprintf("Calendar event '%s' created successfully! Link: %s", d.Title, event.HtmlLink),
	}
}

// dispatchDeleteEvent resolves the target event and deletes it by ID.
// A resolution miss is a normal negative result, not an error.
func (uc *implUseCase) dispatchDeleteEvent(ctx context.Context, d *planner.DeleteEventDetails) planner.ProcessPromptOutput {
	if d.Title == "" {
		return planner.ProcessPromptOutput{
			Intent:  planner.IntentDeleteEvent,
			Kind:    planner.OutcomeValidationError,
			Message: msgDeleteMissingTitle,
		}
	}

	eventID, err := uc.resolveEvent(ctx, d.Title, d.Date)
	if err != nil {
		uc.l.Errorf(ctx, "%s: resolveEvent failed: %v", logPrefixDispatch, err)
		return planner.ProcessPromptOutput{
			Intent:  planner.IntentDeleteEvent,
			Kind:    planner.OutcomeUpstreamError,
			Message: fmt.Sprintf("Error searching calendar events: %v", err),
		}
	}

	if eventID == "" {
		onDate := ""
		if d.Date != "" {
			onDate = fmt.Sprintf(" on %s", d.Date)
		}
		return planner.ProcessPromptOutput{
			Intent:  planner.IntentDeleteEvent,
			Kind:    planner.OutcomeNotFound,
			Message: fmt.Sprintf("Could not find a calendar event with title '%s'%s to delete.", d.Title, onDate),
		}
	}

	if err := uc.calendar.DeleteEvent(ctx, uc.calendarID, eventID); err != nil {
		uc.l.Errorf(ctx, "%s: calendar.DeleteEvent failed for id=%s: %v", logPrefixDispatch, eventID, err)
		return planner.ProcessPromptOutput{
			Intent:  planner.IntentDeleteEvent,
			Kind:    planner.OutcomeUpstreamError,
			Message: fmt.Sprintf("Error deleting calendar event: %v", err),
		}
	}

	return planner.ProcessPromptOutput{
		Intent:  planner.IntentDeleteEvent,
		Kind:    planner.OutcomeSuccess,
		Message: fmt.Sprintf("Calendar event '%s' deleted successfully.", d.Title),
	}
}

// dispatchChat echoes the conversational reply from the classification
// call, or a generic acknowledgment when the model supplied none.
func dispatchChat(d *planner.ChatDetails) planner.ProcessPromptOutput {
	if d.Reply == "" {
		return planner.ProcessPromptOutput{
			Intent:  planner.IntentGeneralChat,
			Kind:    planner.OutcomeSuccess,
			Message: msgChatNoReply,
		}
	}
	return planner.ProcessPromptOutput{
		Intent:  planner.IntentGeneralChat,
		Kind:    planner.OutcomeSuccess,
		Message: d.Reply,
	}
}
