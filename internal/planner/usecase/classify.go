package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"agentic-task-planner/internal/planner"
	"agentic-task-planner/pkg/ollama"
)

// classifierAnswer is the permissive JSON shape expected from the LLM.
// Unrecognized keys are ignored by encoding/json, keeping the contract
// forward-compatible.
type classifierAnswer struct {
	Intent             string `json:"intent"`
	To                 string `json:"to"`
	Subject            string `json:"subject"`
	Body               string `json:"body"`
	EventTitle         string `json:"eventTitle"`
	EventDescription   string `json:"eventDescription"`
	StartTime          string `json:"startTime"`
	EndTime            string `json:"endTime"`
	EventTitleToDelete string `json:"eventTitleToDelete"`
	EventDateToDelete  string `json:"eventDateToDelete"`
	Response           string `json:"response"`
}

// classify determines the user's intent with exactly one LLM call.
// Every failure mode — call error, unexpected envelope, malformed JSON,
// missing intent tag — degrades to IntentUnknown rather than an error,
// so dispatch can produce a uniform outcome.
func (uc *implUseCase) classify(ctx context.Context, prompt string) planner.Classification {
	resp, err := uc.llm.ChatCompletion(ctx, &ollama.ChatRequest{
		Messages: []ollama.Message{
			{Role: "system", Content: classifierSystem},
			{Role: "user", Content: fmt.Sprintf(classifierPrompt, prompt)},
		},
		ResponseFormat: &ollama.ResponseFormat{Type: "json_object"},
		Temperature:    classifierTemperature,
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: LLM call failed, falling back to unknown: %v", logPrefixClassify, err)
		return planner.Classification{Intent: planner.IntentUnknown}
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		uc.l.Warnf(ctx, "%s: unexpected LLM response envelope, falling back to unknown", logPrefixClassify)
		return planner.Classification{Intent: planner.IntentUnknown}
	}

	responseText := resp.Choices[0].Message.Content
	uc.l.Debugf(ctx, "%s: LLM raw answer: %s", logPrefixClassify, responseText)

	var answer classifierAnswer
	if err := json.Unmarshal([]byte(sanitizeJSONResponse(responseText)), &answer); err != nil {
		uc.l.Warnf(ctx, "%s: failed to parse LLM JSON answer, falling back to unknown: %v", logPrefixClassify, err)
		return planner.Classification{Intent: planner.IntentUnknown}
	}

	result := buildClassification(answer)
	uc.l.Infof(ctx, "%s: classified as %s", logPrefixClassify, result.Intent)
	return result
}

// buildClassification maps the raw answer to the tagged variant.
// The intent tag is matched case-insensitively.
func buildClassification(answer classifierAnswer) planner.Classification {
	switch strings.ToLower(strings.TrimSpace(answer.Intent)) {
	case string(planner.IntentSendEmail):
		return planner.Classification{
			Intent: planner.IntentSendEmail,
			SendEmail: &planner.SendEmailDetails{
				To:      answer.To,
				Subject: answer.Subject,
				Body:    answer.Body,
			},
		}
	case string(planner.IntentCreateEvent):
		return planner.Classification{
			Intent: planner.IntentCreateEvent,
			CreateEvent: &planner.CreateEventDetails{
				Title:       answer.EventTitle,
				Description: answer.EventDescription,
				Start:       answer.StartTime,
				End:         answer.EndTime,
			},
		}
	case string(planner.IntentDeleteEvent):
		return planner.Classification{
			Intent: planner.IntentDeleteEvent,
			DeleteEvent: &planner.DeleteEventDetails{
				Title: answer.EventTitleToDelete,
				Date:  answer.EventDateToDelete,
			},
		}
	case string(planner.IntentGeneralChat):
		return planner.Classification{
			Intent: planner.IntentGeneralChat,
			Chat:   &planner.ChatDetails{Reply: answer.Response},
		}
	default:
		return planner.Classification{Intent: planner.IntentUnknown}
	}
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing
// prose that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	re := regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	matches := re.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
