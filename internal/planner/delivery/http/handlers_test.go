package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"agentic-task-planner/internal/planner"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockUseCase returns a canned outcome.
type mockUseCase struct {
	output planner.ProcessPromptOutput
	err    error
}

func (m *mockUseCase) ProcessPrompt(ctx context.Context, input planner.ProcessPromptInput) (planner.ProcessPromptOutput, error) {
	return m.output, m.err
}

func performPrompt(t *testing.T, uc planner.UseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	h := New(&mockLogger{}, uc)
	router.POST("/prompt", h.ProcessPrompt)

	req := httptest.NewRequest(http.MethodPost, "/prompt", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestProcessPromptStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		output     planner.ProcessPromptOutput
		err        error
		wantStatus int
	}{
		{
			name:       "success",
			output:     planner.ProcessPromptOutput{Intent: planner.IntentSendEmail, Kind: planner.OutcomeSuccess, Message: "sent"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown intent stays 200",
			output:     planner.ProcessPromptOutput{Intent: planner.IntentUnknown, Kind: planner.OutcomeUnknown, Message: "Could not determine intent"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "validation error",
			output:     planner.ProcessPromptOutput{Intent: planner.IntentCreateEvent, Kind: planner.OutcomeValidationError, Message: "missing title"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not found",
			output:     planner.ProcessPromptOutput{Intent: planner.IntentDeleteEvent, Kind: planner.OutcomeNotFound, Message: "no such event"},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "upstream error",
			output:     planner.ProcessPromptOutput{Intent: planner.IntentSendEmail, Kind: planner.OutcomeUpstreamError, Message: "mailer down"},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "empty prompt error",
			err:        planner.ErrEmptyPrompt,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := performPrompt(t, &mockUseCase{output: tc.output, err: tc.err}, `{"prompt": "do the thing"}`)
			if w.Code != tc.wantStatus {
				t.Errorf("status: got %d, want %d (body %s)", w.Code, tc.wantStatus, w.Body.String())
			}
		})
	}
}

func TestProcessPromptSuccessBody(t *testing.T) {
	uc := &mockUseCase{output: planner.ProcessPromptOutput{
		Intent:  planner.IntentGeneralChat,
		Kind:    planner.OutcomeSuccess,
		Message: "hello",
	}}

	w := performPrompt(t, uc, `{"prompt": "hi"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}

	var envelope struct {
		Data struct {
			Intent  string `json:"intent"`
			Message string `json:"message"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to parse body: %v", err)
	}
	if envelope.Data.Intent != "general_chat" || envelope.Data.Message != "hello" {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestProcessPromptMissingBody(t *testing.T) {
	w := performPrompt(t, &mockUseCase{}, `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 on missing prompt field, got %d", w.Code)
	}
}
