package llm

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	return NewClient(baseURL, "test-key", "test-model", 1000, 5*time.Second,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCompleteHappyPath(t *testing.T) {
	var captured chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "# Project Plan\nhello"}}]}`))
	}))
	defer server.Close()

	content, err := newTestClient(server.URL).Complete(context.Background(), "system text", "user text")

	require.NoError(t, err)
	assert.Equal(t, "# Project Plan\nhello", content)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, "test-model", captured.Model)
}

func TestCompleteUpstreamFailureIsErrUnavailable(t *testing.T) {
	for _, status := range []int{http.StatusInternalServerError, http.StatusTooManyRequests, http.StatusUnauthorized} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		}))
		_, err := newTestClient(server.URL).Complete(context.Background(), "s", "u")
		server.Close()

		require.Error(t, err, "status %d", status)
		assert.ErrorIs(t, err, ErrUnavailable, "status %d", status)
	}
}

func TestCompleteTransportFailureIsErrUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // connection refused from here on

	_, err := newTestClient(server.URL).Complete(context.Background(), "s", "u")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestCompleteEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Complete(context.Background(), "s", "u")
	assert.ErrorIs(t, err, ErrUnavailable)
}
