package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const sendPath = "/api/email/send"

// Client is the email sender microservice client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new email sender client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetBaseURL overrides the service URL for testing purposes.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

// Send posts one email to the sender service and returns its response
// body verbatim.
func (c *Client) Send(ctx context.Context, req SendRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("mailer: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sendPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("mailer: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("mailer: failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("mailer: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("mailer: API error %d: %s", resp.StatusCode, string(raw))
	}

	return string(raw), nil
}
