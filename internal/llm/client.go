package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/huchen/gitie/internal/config"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	Stream      bool          `json:"stream"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

// RequestError is any failure of the chat-completion call: transport errors,
// non-2xx responses, and malformed or empty bodies. Status is zero when the
// request never produced an HTTP response.
type RequestError struct {
	Status int
	Body   string
	Err    error
}

func (e *RequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("AI service returned status %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("AI request failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// Client is a minimal OpenAI-compatible chat-completion client. One request
// per invocation, no retries; a timeout or failure surfaces as a
// RequestError and the caller decides what that means.
type Client struct {
	apiURL      string
	model       string
	temperature float64
	apiKey      string
	httpClient  *http.Client
}

func NewClient(cfg config.AIConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	temperature := 0.7
	if cfg.Temperature != nil {
		temperature = *cfg.Temperature
	}
	return &Client{
		apiURL:      cfg.APIURL,
		model:       cfg.ModelName,
		temperature: temperature,
		apiKey:      cfg.APIKey,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// Complete sends one system+user message pair and returns the assistant's
// reply, cleaned of fences and reasoning preambles.
func (c *Client) Complete(ctx context.Context, systemPrompt, userContent string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userContent},
		},
		Temperature: c.temperature,
		Stream:      false,
	})
	if err != nil {
		return "", &RequestError{Err: fmt.Errorf("could not serialize request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", &RequestError{Err: fmt.Errorf("could not build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &RequestError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &RequestError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", &RequestError{Err: fmt.Errorf("could not parse response body: %w", err)}
	}
	if len(parsed.Choices) == 0 {
		return "", &RequestError{Err: fmt.Errorf("response contained no choices")}
	}

	content := CleanOutput(parsed.Choices[0].Message.Content)
	if content == "" {
		return "", &RequestError{Err: fmt.Errorf("response message was empty")}
	}
	return content, nil
}
