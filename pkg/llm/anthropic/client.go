package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/careerpathai/backend/pkg/llm"
	"github.com/careerpathai/backend/pkg/metrics"
)

const apiVersion = "2023-06-01"

// Client is a minimal Anthropic Messages API client.
type Client struct {
	APIKey  string
	BaseURL string
	httpDo  *http.Client
}

func New(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://api.anthropic.com"
	}
	return &Client{
		APIKey:  apiKey,
		BaseURL: baseURL,
		httpDo: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesRequest struct {
	Model     string    `json:"model"`
	System    string    `json:"system,omitempty"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type messagesResponse struct {
	ID         string         `json:"id"`
	Model      string         `json:"model"`
	StopReason string         `json:"stop_reason"`
	Content    []contentBlock `json:"content"`
}

// Ask sends the prompt to the Messages API and returns the first text block.
// Failures are mapped onto the llm error taxonomy so callers can fall back.
func (c *Client) Ask(ctx context.Context, req llm.Request) (string, error) {
	if c.APIKey == "" {
		return "", llm.ErrNotConfigured
	}
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 4096
	}
	reqBody := messagesRequest{
		Model:     req.Model,
		System:    req.System,
		MaxTokens: maxTokens,
		Messages: []message{
			{Role: "user", Content: req.Prompt},
		},
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/v1/messages", c.BaseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.APIKey)
	httpReq.Header.Set("anthropic-version", apiVersion)

	started := time.Now()
	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		if timedOut(ctx, err) {
			metrics.RecordLLMRequest(req.Model, "timeout", time.Since(started))
			return "", &llm.TimeoutError{Cause: err}
		}
		metrics.RecordLLMRequest(req.Model, "transport_error", time.Since(started))
		return "", &llm.TransportError{Detail: err.Error()}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errMap map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&errMap)
		metrics.RecordLLMRequest(req.Model, "http_error", time.Since(started))
		return "", &llm.TransportError{Status: resp.StatusCode, Detail: fmt.Sprintf("%v", errMap)}
	}
	var out messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		metrics.RecordLLMRequest(req.Model, "decode_error", time.Since(started))
		return "", &llm.TransportError{Detail: "decode response: " + err.Error()}
	}
	for _, block := range out.Content {
		if block.Type == "text" {
			metrics.RecordLLMRequest(req.Model, "ok", time.Since(started))
			return block.Text, nil
		}
	}
	metrics.RecordLLMRequest(req.Model, "empty", time.Since(started))
	return "", &llm.TransportError{Detail: "no text content returned by model"}
}

func timedOut(ctx context.Context, err error) bool {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
