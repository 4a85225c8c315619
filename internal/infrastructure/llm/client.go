package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"lakenine-studio/internal/infrastructure/metrics"
)

// ErrUnavailable is the one upstream condition surfaced to callers:
// the model provider could not serve the request at all.
var ErrUnavailable = errors.New("model provider unavailable")

// Client talks to an OpenAI-compatible chat completions endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	maxTokens  int
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(baseURL, apiKey, model string, maxTokens int, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		maxTokens:  maxTokens,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete sends one system+user exchange and returns the raw assistant
// content. Transport failures, provider 5xx/429 and auth errors all map
// to ErrUnavailable.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.ObserveLLMRequest(time.Since(start).Seconds())
	if err != nil {
		metrics.IncLLMRequest("transport_error")
		return "", fmt.Errorf("completion request: %w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		metrics.IncLLMRequest("read_error")
		return "", fmt.Errorf("read completion response: %w: %w", ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized,
		resp.StatusCode == http.StatusForbidden,
		resp.StatusCode == http.StatusTooManyRequests,
		resp.StatusCode >= 500:
		metrics.IncLLMRequest("upstream_error")
		c.logger.Error("model provider error", "status", resp.StatusCode, "body", truncate(string(body), 256))
		return "", fmt.Errorf("provider returned %d: %w", resp.StatusCode, ErrUnavailable)
	default:
		metrics.IncLLMRequest("request_error")
		return "", fmt.Errorf("provider returned %d: %s", resp.StatusCode, truncate(string(body), 256))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		metrics.IncLLMRequest("decode_error")
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if parsed.Error != nil {
		metrics.IncLLMRequest("provider_error")
		return "", fmt.Errorf("provider error: %s: %w", parsed.Error.Message, ErrUnavailable)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		metrics.IncLLMRequest("empty")
		return "", fmt.Errorf("provider returned no content: %w", ErrUnavailable)
	}

	metrics.IncLLMRequest("ok")
	return parsed.Choices[0].Message.Content, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
