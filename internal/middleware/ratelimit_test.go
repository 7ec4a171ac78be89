package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimiterAllowsWithinLimit(t *testing.T) {
	rl := newRateLimiter(600) // burst of 60

	for i := 0; i < 10; i++ {
		if err := rl.Allow("1.2.3.4"); err != nil {
			t.Fatalf("request %d should be allowed: %v", i, err)
		}
	}
}

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	rl := newRateLimiter(10) // burst of 1

	if err := rl.Allow("1.2.3.4"); err != nil {
		t.Fatalf("first request should be allowed: %v", err)
	}
	if err := rl.Allow("1.2.3.4"); err == nil {
		t.Error("second immediate request should be blocked")
	}

	// separate clients have separate buckets
	if err := rl.Allow("5.6.7.8"); err != nil {
		t.Errorf("unrelated client should be allowed: %v", err)
	}
}

func TestExtractIP(t *testing.T) {
	cases := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{"remote addr", "10.0.0.1:5432", nil, "10.0.0.1"},
		{"x-forwarded-for", "10.0.0.1:5432", map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.1"}, "203.0.113.9"},
		{"x-real-ip", "10.0.0.1:5432", map[string]string{"X-Real-IP": "203.0.113.7"}, "203.0.113.7"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				r.Header.Set(k, v)
			}
			if got := extractIP(r); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}
