package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultServiceURL = "http://ai-service:8000"
	defaultAttempts   = 3
)

// ServiceProvider talks to the internal ai-service chat endpoint:
// POST {BaseURL}/v1/chat with {"agent":"auto","input":...}.
type ServiceProvider struct {
	BaseURL  string
	HTTP     *http.Client
	Attempts int
	// Backoff is the delay before the first retry; it doubles per attempt.
	Backoff time.Duration
}

func NewServiceProvider(baseURL string, timeout time.Duration) *ServiceProvider {
	if baseURL == "" {
		baseURL = DefaultServiceURL
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &ServiceProvider{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		HTTP:     &http.Client{Timeout: timeout},
		Attempts: defaultAttempts,
		Backoff:  time.Second,
	}
}

type chatRequest struct {
	Agent string `json:"agent"`
	Input string `json:"input"`
}

type chatResponse struct {
	Agent  string `json:"agent"`
	Output string `json:"output"`
}

func (s *ServiceProvider) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{Agent: "auto", Input: prompt})
	if err != nil {
		return "", err
	}

	rb, err := s.doPostWithRetry(ctx, "/v1/chat", body)
	if err != nil {
		return "", err
	}

	var chatResp chatResponse
	if err := json.Unmarshal(rb, &chatResp); err != nil {
		return "", &ResponseError{Message: "ai-service returned malformed chat response", StatusCode: http.StatusOK, Cause: err}
	}
	return chatResp.Output, nil
}

// doPostWithRetry performs an HTTP POST to the given path with retry/backoff.
// Transport failures and 5xx responses are retried; 4xx responses are not.
func (s *ServiceProvider) doPostWithRetry(ctx context.Context, path string, body []byte) ([]byte, error) {
	attempts := s.Attempts
	if attempts <= 0 {
		attempts = defaultAttempts
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		rb, status, err := s.post(ctx, path, body)
		switch {
		case err != nil:
			lastErr = err
		case status == http.StatusOK:
			return rb, nil
		case status >= 500:
			lastErr = &ResponseError{Message: "ai-service unavailable", StatusCode: status, Body: string(rb)}
		default:
			return nil, &ResponseError{Message: "ai-service rejected request", StatusCode: status, Body: string(rb)}
		}

		slog.Warn("ai.client: request failed", "attempt", i+1, "error", lastErr)

		// exponential backoff before retrying
		if i < attempts-1 {
			backoff := s.Backoff * time.Duration(1<<i)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, fmt.Errorf("ai-service: giving up after %d attempts: %w", attempts, lastErr)
}

func (s *ServiceProvider) post(ctx context.Context, path string, body []byte) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	rb, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	slog.Debug("ai.client: POST", "url", s.BaseURL+path, "status", resp.StatusCode, "bytes", len(rb))
	return rb, resp.StatusCode, nil
}
