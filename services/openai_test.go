package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatGPTComplete(t *testing.T) {
	var got OpenAIRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"ok\":true}"}}]}`))
	}))
	defer server.Close()

	client := NewChatGPT(server.URL+"/v1/", "", 5*time.Second, nil)
	content, err := client.Complete(context.Background(), "sk-test", CompletionRequest{
		System:      "system text",
		User:        "user text",
		Temperature: GradingTemperature,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, content)

	assert.Equal(t, DefaultModel, got.Model)
	assert.Equal(t, 0.3, got.Temperature)
	assert.Equal(t, "json_object", got.ResponseFormat.Type)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, Message{Role: "system", Content: "system text"}, got.Messages[0])
	assert.Equal(t, Message{Role: "user", Content: "user text"}, got.Messages[1])
}

func TestChatGPTProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid API key","type":"invalid_request_error"}}`))
	}))
	defer server.Close()

	_, err := NewChatGPT(server.URL, "gpt-4o-mini", time.Second, nil).Complete(context.Background(), "sk-bad", CompletionRequest{})
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, KindProvider, e.Kind)
	assert.Equal(t, http.StatusUnauthorized, e.Status)
	assert.Equal(t, "Invalid API key", e.Message)
}

func TestChatGPTProviderErrorWithoutMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`<html>down</html>`))
	}))
	defer server.Close()

	_, err := NewChatGPT(server.URL, "", time.Second, nil).Complete(context.Background(), "sk-x", CompletionRequest{})
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, KindProvider, e.Kind)
	assert.Empty(t, e.Message)
	assert.Equal(t, "API Error: 503 Service Unavailable", statusFallback(err))
	assert.Equal(t, "Failed to grade text", asUserError(err, gradeFallbackMessage).Message)
}

func TestChatGPTMalformedEnvelope(t *testing.T) {
	for name, body := range map[string]string{
		"not json":   `nope`,
		"no choices": `{"choices":[]}`,
	} {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer server.Close()

			_, err := NewChatGPT(server.URL, "", time.Second, nil).Complete(context.Background(), "sk-x", CompletionRequest{})
			assert.True(t, IsKind(err, KindMalformedResponse), "got %v", err)
		})
	}
}

func TestChatGPTTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewChatGPT(url, "", time.Second, nil).Complete(context.Background(), "sk-x", CompletionRequest{})
	assert.True(t, IsKind(err, KindTransport))
	assert.Equal(t, "Failed to reach the model provider.", err.Error())
}

func TestStatusFallbackWithoutStatus(t *testing.T) {
	assert.Equal(t, "Failed to generate topic", statusFallback(malformed("bad")))
}
