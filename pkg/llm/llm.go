package llm

import (
	"context"
	"errors"
	"fmt"
)

// Request carries one completion call: a fixed system instruction, the user
// prompt, the model identifier and the output-size cap.
type Request struct {
	System    string
	Prompt    string
	Model     string
	MaxTokens int
}

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
// It intentionally hides concrete providers to preserve dependency direction.
// The returned text is raw model output; callers must not assume it is JSON.
type ChatModel interface {
	Ask(ctx context.Context, req Request) (string, error)
}

// ErrNotConfigured is returned when no API credential is available.
var ErrNotConfigured = errors.New("llm: client is not configured")

// TransportError covers network, auth and quota failures talking to the
// provider. Status is the HTTP status code when one was received, 0 otherwise.
type TransportError struct {
	Status int
	Detail string
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("llm: transport failure (http %d): %s", e.Status, e.Detail)
	}
	return "llm: transport failure: " + e.Detail
}

// TimeoutError reports that the completion call exceeded its deadline.
type TimeoutError struct {
	Cause error
}

func (e *TimeoutError) Error() string { return "llm: request timed out" }

func (e *TimeoutError) Unwrap() error { return e.Cause }
