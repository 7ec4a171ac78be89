package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestChatCompletion(t *testing.T) {
	var gotReq ChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != chatCompletionsPath {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "{\"intent\": \"general_chat\"}"}}]}`))
	}))
	defer srv.Close()

	client, err := New(Config{BaseURL: srv.URL, Model: "llama3"})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	resp, err := client.ChatCompletion(context.Background(), &ChatRequest{
		Messages:       []Message{{Role: "user", Content: "hi"}},
		ResponseFormat: &ResponseFormat{Type: "json_object"},
		Temperature:    0.1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Choices) != 1 || resp.Choices[0].Message.Content == "" {
		t.Errorf("unexpected response: %+v", resp)
	}

	// the client model fills in a missing request model
	if gotReq.Model != "llama3" {
		t.Errorf("expected default model llama3, got %q", gotReq.Model)
	}
	if gotReq.Stream {
		t.Error("streaming must be off")
	}
	if gotReq.ResponseFormat == nil || gotReq.ResponseFormat.Type != "json_object" {
		t.Errorf("response_format not forwarded: %+v", gotReq.ResponseFormat)
	}
}

func TestChatCompletionAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client, _ := New(Config{BaseURL: srv.URL})
	_, err := client.ChatCompletion(context.Background(), &ChatRequest{})
	if err == nil {
		t.Fatal("expected error on non-200 status")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("expected status in error, got %v", err)
	}
}

func TestGenerateReturnsVerbatimPayload(t *testing.T) {
	const payload = `{"model":"llama3","response":"hello there","done":true,"eval_count":42}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != generatePath {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Prompt != "say hello" || req.Stream {
			t.Errorf("unexpected request: %+v", req)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	}))
	defer srv.Close()

	client, _ := New(Config{BaseURL: srv.URL, Model: "llama3"})
	raw, err := client.Generate(context.Background(), "say hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != payload {
		t.Errorf("payload must be returned verbatim, got %s", raw)
	}

	var parsed GeneratePayload
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("payload must stay parseable: %v", err)
	}
	if parsed.Response != "hello there" {
		t.Errorf("got response %q", parsed.Response)
	}
}

func TestNewDefaults(t *testing.T) {
	client, err := New(Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Model() != DefaultModel {
		t.Errorf("expected default model, got %q", client.Model())
	}
	if client.baseURL != DefaultBaseURL {
		t.Errorf("expected default base URL, got %q", client.baseURL)
	}
}
