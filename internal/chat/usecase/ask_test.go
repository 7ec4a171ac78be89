package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"agentic-task-planner/internal/chat"
	"agentic-task-planner/internal/chat/repository"
	"agentic-task-planner/internal/chat/usecase"
	"agentic-task-planner/internal/model"
	"agentic-task-planner/pkg/ollama"
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

// mockLLM serves canned generate payloads and counts calls.
type mockLLM struct {
	payload json.RawMessage
	err     error
	calls   int
}

func (m *mockLLM) ChatCompletion(ctx context.Context, req *ollama.ChatRequest) (*ollama.ChatResponse, error) {
	return nil, errors.New("not implemented")
}

func (m *mockLLM) Generate(ctx context.Context, prompt string) (json.RawMessage, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.payload, nil
}

func (m *mockLLM) Model() string { return "llama3-test" }

// mockRepo records created exchanges and the last list filter.
type mockRepo struct {
	created   []repository.CreateResponseOptions
	createErr error
	entries   []model.LLMResponse
	listErr   error
	lastList  repository.ListResponsesOptions
}

func (m *mockRepo) CreateResponse(ctx context.Context, opt repository.CreateResponseOptions) (model.LLMResponse, error) {
	m.created = append(m.created, opt)
	if m.createErr != nil {
		return model.LLMResponse{}, m.createErr
	}
	return model.LLMResponse{ID: fmt.Sprintf("resp-%d", len(m.created)), Prompt: opt.Prompt, Response: opt.Response}, nil
}

func (m *mockRepo) ListResponses(ctx context.Context, opt repository.ListResponsesOptions) ([]model.LLMResponse, int, error) {
	m.lastList = opt
	if m.listErr != nil {
		return nil, 0, m.listErr
	}
	return m.entries, len(m.entries), nil
}

func payloadWith(response string) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{"model":"llama3","response":%q,"done":true}`, response))
}

func TestAskEmptyPrompt(t *testing.T) {
	uc := usecase.New(&mockLogger{}, &mockLLM{}, &mockRepo{}, 30*time.Second, 16)

	_, err := uc.Ask(context.Background(), chat.AskInput{Prompt: "  "})
	if !errors.Is(err, chat.ErrEmptyPrompt) {
		t.Fatalf("expected ErrEmptyPrompt, got %v", err)
	}
}

func TestAskCachesRepeatedPrompt(t *testing.T) {
	llm := &mockLLM{payload: payloadWith("hello there")}
	uc := usecase.New(&mockLogger{}, llm, &mockRepo{}, 30*time.Second, 16)

	first, err := uc.Ask(context.Background(), chat.AskInput{Prompt: "say hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Reply != "hello there" || first.Cached {
		t.Errorf("unexpected first answer: %+v", first)
	}

	second, err := uc.Ask(context.Background(), chat.AskInput{Prompt: "say hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Reply != "hello there" || !second.Cached {
		t.Errorf("expected a cached answer, got %+v", second)
	}
	if llm.calls != 1 {
		t.Errorf("expected exactly 1 LLM call, got %d", llm.calls)
	}

	// a different prompt is a different cache key
	if _, err := uc.Ask(context.Background(), chat.AskInput{Prompt: "say goodbye"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if llm.calls != 2 {
		t.Errorf("expected 2 LLM calls after a distinct prompt, got %d", llm.calls)
	}
}

func TestAskCacheExpires(t *testing.T) {
	llm := &mockLLM{payload: payloadWith("hi")}
	uc := usecase.New(&mockLogger{}, llm, &mockRepo{}, 50*time.Millisecond, 16)

	if _, err := uc.Ask(context.Background(), chat.AskInput{Prompt: "hi"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	time.Sleep(120 * time.Millisecond)

	out, err := uc.Ask(context.Background(), chat.AskInput{Prompt: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Cached {
		t.Error("expected a fresh answer after TTL expiry")
	}
	if llm.calls != 2 {
		t.Errorf("expected a second LLM call after expiry, got %d", llm.calls)
	}
}

func TestAskUnparseablePayloadNotCached(t *testing.T) {
	llm := &mockLLM{payload: json.RawMessage(`{"done": true}`)} // no response field
	repo := &mockRepo{}
	uc := usecase.New(&mockLogger{}, llm, repo, 30*time.Second, 16)

	out, err := uc.Ask(context.Background(), chat.AskInput{Prompt: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Reply != "Failed to parse LLM response." {
		t.Errorf("expected the fixed placeholder, got %q", out.Reply)
	}
	// the failed exchange still lands in history
	if len(repo.created) != 1 || repo.created[0].Response != "Failed to parse LLM response." {
		t.Errorf("expected the placeholder exchange in history, got %+v", repo.created)
	}

	// the failure is not cached, so the next ask retries the LLM
	llm.payload = payloadWith("recovered")
	out, err = uc.Ask(context.Background(), chat.AskInput{Prompt: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Reply != "recovered" || out.Cached {
		t.Errorf("expected a fresh retry, got %+v", out)
	}
	if llm.calls != 2 {
		t.Errorf("expected 2 LLM calls, got %d", llm.calls)
	}
}

func TestAskLLMFailure(t *testing.T) {
	llm := &mockLLM{err: errors.New("connection refused")}
	uc := usecase.New(&mockLogger{}, llm, &mockRepo{}, 30*time.Second, 16)

	if _, err := uc.Ask(context.Background(), chat.AskInput{Prompt: "hi"}); err == nil {
		t.Fatal("expected error when the LLM is unreachable")
	}
}

func TestAskPersistsExchange(t *testing.T) {
	llm := &mockLLM{payload: payloadWith("42")}
	repo := &mockRepo{}
	uc := usecase.New(&mockLogger{}, llm, repo, 30*time.Second, 16)

	if _, err := uc.Ask(context.Background(), chat.AskInput{
		Prompt: "meaning of life?",
		TaskID: "task-9",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.created) != 1 {
		t.Fatalf("expected 1 persisted exchange, got %d", len(repo.created))
	}
	got := repo.created[0]
	if got.Prompt != "meaning of life?" || got.Response != "42" || got.TaskID != "task-9" {
		t.Errorf("unexpected persisted exchange: %+v", got)
	}
}

func TestAskStorageFailureIsNotFatal(t *testing.T) {
	llm := &mockLLM{payload: payloadWith("still here")}
	repo := &mockRepo{createErr: errors.New("disk full")}
	uc := usecase.New(&mockLogger{}, llm, repo, 30*time.Second, 16)

	out, err := uc.Ask(context.Background(), chat.AskInput{Prompt: "hi"})
	if err != nil {
		t.Fatalf("storage failure must not fail the ask: %v", err)
	}
	if out.Reply != "still here" {
		t.Errorf("got reply %q", out.Reply)
	}
}

func TestHistoryFiltersBySubtask(t *testing.T) {
	repo := &mockRepo{entries: []model.LLMResponse{{ID: "a"}}}
	uc := usecase.New(&mockLogger{}, &mockLLM{}, repo, 30*time.Second, 16)

	if _, err := uc.History(context.Background(), chat.HistoryInput{
		TaskID:    "task-9",
		SubtaskID: "sub-3",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.lastList.TaskID != "task-9" || repo.lastList.SubtaskID != "sub-3" {
		t.Errorf("filters not passed through, got %+v", repo.lastList)
	}
}

func TestHistoryClampsPagination(t *testing.T) {
	repo := &mockRepo{entries: []model.LLMResponse{{ID: "a"}, {ID: "b"}}}
	uc := usecase.New(&mockLogger{}, &mockLLM{}, repo, 30*time.Second, 16)

	out, err := uc.History(context.Background(), chat.HistoryInput{Limit: -5, Offset: -1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Limit != 20 || out.Offset != 0 {
		t.Errorf("expected clamped pagination, got limit=%d offset=%d", out.Limit, out.Offset)
	}
	if len(out.Entries) != 2 || out.Total != 2 {
		t.Errorf("unexpected page: %+v", out)
	}
}
