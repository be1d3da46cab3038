package completion

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClient(Config{
		APIKey:       "sk-test",
		BaseURL:      server.URL + "/v1",
		Model:        "gpt-3.5-turbo",
		SystemPrompt: "You roast GitHub profiles.",
	}, logger)
}

func chatResponse(content string) string {
	body, _ := json.Marshal(map[string]any{
		"id":     "chatcmpl-1",
		"object": "chat.completion",
		"model":  "gpt-3.5-turbo",
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": content},
		}},
	})
	return string(body)
}

func TestClient_Complete(t *testing.T) {
	t.Run("sends the fixed request shape and trims the answer", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

			var req struct {
				Model       string  `json:"model"`
				MaxTokens   int     `json:"max_tokens"`
				Temperature float64 `json:"temperature"`
				Messages    []struct {
					Role    string `json:"role"`
					Content string `json:"content"`
				} `json:"messages"`
			}
			if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			assert.Equal(t, "gpt-3.5-turbo", req.Model)
			assert.Equal(t, 500, req.MaxTokens)
			assert.InDelta(t, 0.8, req.Temperature, 1e-6)
			if assert.Len(t, req.Messages, 2) {
				assert.Equal(t, "system", req.Messages[0].Role)
				assert.Equal(t, "You roast GitHub profiles.", req.Messages[0].Content)
				assert.Equal(t, "user", req.Messages[1].Role)
				assert.Equal(t, "roast octocat", req.Messages[1].Content)
			}

			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, chatResponse("\n  Your repos are all forks.  \n"))
		})

		got, err := client.Complete(context.Background(), "roast octocat", 0.8)

		require.NoError(t, err)
		assert.Equal(t, "Your repos are all forks.", got)
	})

	t.Run("empty content falls back to a fixed message", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, chatResponse(""))
		})

		got, err := client.Complete(context.Background(), "roast", 0.5)

		require.NoError(t, err)
		assert.Equal(t, NoContentFallback, got)
	})

	t.Run("service error is returned", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"error": {"message": "Incorrect API key provided", "type": "invalid_request_error", "code": "invalid_api_key"}}`)
		})

		got, err := client.Complete(context.Background(), "roast", 0.5)

		require.Error(t, err)
		assert.Empty(t, got)
		assert.Contains(t, err.Error(), "Incorrect API key provided")
	})
}
