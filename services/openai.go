package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"writeassess/internal/logger"
)

const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-4o-mini"

	GradingTemperature = 0.3
	TopicTemperature   = 0.8
)

// CompletionRequest is one system+user exchange sent to the model
type CompletionRequest struct {
	System      string
	User        string
	Temperature float64
}

// Completer sends a completion request and returns the raw message content
type Completer interface {
	Complete(ctx context.Context, apiKey string, req CompletionRequest) (string, error)
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type OpenAIRequest struct {
	Model          string         `json:"model"`
	Messages       []Message      `json:"messages"`
	Temperature    float64        `json:"temperature"`
	ResponseFormat responseFormat `json:"response_format"`
}

// ChatGPT talks to an OpenAI-compatible chat completions endpoint. The API
// key is supplied per call because every session brings its own.
type ChatGPT struct {
	URL        string
	Model      string
	HTTPClient *http.Client
	log        *logger.Logger
}

func NewChatGPT(baseURL, model string, timeout time.Duration, log *logger.Logger) *ChatGPT {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ChatGPT{
		URL:        strings.TrimRight(baseURL, "/") + "/chat/completions",
		Model:      model,
		HTTPClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

func (c *ChatGPT) Complete(ctx context.Context, apiKey string, req CompletionRequest) (string, error) {
	payload, err := json.Marshal(OpenAIRequest{
		Model: c.Model,
		Messages: []Message{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		Temperature:    req.Temperature,
		ResponseFormat: responseFormat{Type: "json_object"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request data: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)

	start := time.Now()
	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		c.log.Warn("model request failed", "model", c.Model, "error", err.Error())
		return "", &Error{Kind: KindTransport, Message: "Failed to reach the model provider.", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Kind: KindTransport, Status: resp.StatusCode, Message: "Failed to read the model response.", Err: err}
	}
	c.log.Debug("model request finished",
		"model", c.Model,
		"status", resp.StatusCode,
		"elapsed", time.Since(start).String(),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", providerError(resp, body)
	}

	var responseData struct {
		Choices []struct {
			Message struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &responseData); err != nil {
		return "", &Error{Kind: KindMalformedResponse, Message: "The model response could not be parsed.", Err: err}
	}
	if len(responseData.Choices) == 0 {
		return "", malformed("The model response contained no choices.")
	}
	return responseData.Choices[0].Message.Content, nil
}

// providerError extracts error.message from a failed response. The message
// stays empty when the body carries none so callers can pick a fallback.
func providerError(resp *http.Response, body []byte) *Error {
	var errorData struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	_ = json.Unmarshal(body, &errorData)
	return &Error{
		Kind:    KindProvider,
		Status:  resp.StatusCode,
		Message: strings.TrimSpace(errorData.Error.Message),
		Err:     fmt.Errorf("API error: %s", resp.Status),
	}
}

// statusFallback mirrors the "API Error: <code> <text>" message used when the
// provider sends no error message.
func statusFallback(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Status != 0 {
		return fmt.Sprintf("API Error: %d %s", e.Status, http.StatusText(e.Status))
	}
	return "Failed to generate topic"
}

// cleanModelOutput strips markdown fences some models wrap JSON in
func cleanModelOutput(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
