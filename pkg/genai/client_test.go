package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arguehive/debatehub-backend/pkg/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(config.GeminiConfig{
		APIKey:  "test-key",
		Model:   "gemini-2.5-flash",
		BaseURL: server.URL,
		Timeout: 2 * time.Second,
	}, nil)
}

func geminiTextResponse(text string) string {
	payload := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
	}
	raw, _ := json.Marshal(payload)
	return string(raw)
}

func TestGenerateDebateParsesFencedJSON(t *testing.T) {
	body := "```json\n{\"for\": [\"a1\", \"a2\"], \"against\": [\"b1\"]}\n```"
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "gemini-2.5-flash:generateContent")
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		w.Write([]byte(geminiTextResponse(body)))
	})

	generated := client.GenerateDebate(context.Background(), "remote work")
	require.Equal(t, []string{"a1", "a2"}, generated.For)
	require.Equal(t, []string{"b1"}, generated.Against)
}

func TestGenerateDebateFallsBackOnProviderError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	generated := client.GenerateDebate(context.Background(), "remote work")
	require.Len(t, generated.For, 3)
	require.Len(t, generated.Against, 3)
	assert.Contains(t, generated.For[0], "remote work")
}

func TestGenerateDebateFallsBackOnInvalidJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(geminiTextResponse("I cannot produce JSON today.")))
	})

	generated := client.GenerateDebate(context.Background(), "space travel")
	require.Len(t, generated.For, 3)
	assert.Contains(t, generated.Against[0], "space travel")
}

func TestGenerateDebateWithoutAPIKeyUsesPlaceholders(t *testing.T) {
	client := NewClient(config.GeminiConfig{Model: "gemini-2.5-flash", BaseURL: "http://unused", Timeout: time.Second}, nil)

	generated := client.GenerateDebate(context.Background(), "nuclear energy")
	require.Len(t, generated.For, 3)
	require.Len(t, generated.Against, 3)
}

func TestSummarizeReturnsProviderText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Contains(t, req.Contents[0].Parts[0].Text, "- first point")
		w.Write([]byte(geminiTextResponse("  A balanced summary.  ")))
	})

	summary := client.Summarize(context.Background(), []string{"first point", "second point"})
	assert.Equal(t, "A balanced summary.", summary)
}

func TestSummarizeEdgeCases(t *testing.T) {
	client := NewClient(config.GeminiConfig{Model: "m", BaseURL: "http://unused", Timeout: time.Second}, nil)
	assert.Equal(t, "No arguments provided for summary.", client.Summarize(context.Background(), nil))
	assert.Equal(t, placeholderSummary, client.Summarize(context.Background(), []string{"one"}))

	failing := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	assert.Equal(t, placeholderSummary, failing.Summarize(context.Background(), []string{"one"}))
}

func TestStripCodeFences(t *testing.T) {
	cases := map[string]string{
		"{\"for\": []}":                          "{\"for\": []}",
		"```json\n{\"for\": []}\n```":            "{\"for\": []}",
		"```\n{\"for\": []}\n```":                "{\"for\": []}",
		"  ```json\n{\"a\":1}\n```  ":            "{\"a\":1}",
		"```json\n{\"a\":1}\n```\ntrailing text": "{\"a\":1}",
	}
	for input, want := range cases {
		if got := stripCodeFences(input); got != want {
			t.Fatalf("stripCodeFences(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestGenerateContentJoinsParts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": "hello "}, {"text": "world"}}}},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(payload))
	})

	text, err := client.generateContent(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
}

func TestGenerateContentRejectsEmptyCandidates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	})

	_, err := client.generateContent(context.Background(), "prompt")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "no candidates"))
}
