package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSend(t *testing.T) {
	var got SendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != sendPath {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		w.Write([]byte("Email sent successfully to " + got.To))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	result, err := client.Send(context.Background(), SendRequest{
		To:      "alice@example.com",
		Subject: "Project Update",
		Body:    "All good.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.To != "alice@example.com" || got.Subject != "Project Update" || got.Body != "All good." {
		t.Errorf("request fields not forwarded: %+v", got)
	}
	if result != "Email sent successfully to alice@example.com" {
		t.Errorf("response body must be returned verbatim, got %q", result)
	}
}

func TestSendAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "relay unavailable", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Send(context.Background(), SendRequest{To: "a@b.com", Subject: "x"})
	if err == nil {
		t.Fatal("expected error on non-200 status")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Errorf("expected status in error, got %v", err)
	}
}

func TestSendServiceDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(srv.URL)
	if _, err := client.Send(context.Background(), SendRequest{To: "a@b.com", Subject: "x"}); err == nil {
		t.Fatal("expected error when the service is unreachable")
	}
}
