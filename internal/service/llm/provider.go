// Package llm wraps the AI completion providers used for summaries and scoring.
//
// Callers never see a provider failure: CompleteJSON degrades to a caller-supplied
// deterministic fallback and flags the result.
package llm

import (
	"context"
	"errors"
)

// ErrUnavailable is returned by providers that have no credentials configured.
var ErrUnavailable = errors.New("llm provider is not available")

// Provider defines the interface for completion backends.
type Provider interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	IsAvailable() bool
}

// CompletionRequest configures one completion call.
type CompletionRequest struct {
	System      string  `json:"system,omitempty"`
	Prompt      string  `json:"prompt"`
	Model       string  `json:"model,omitempty"`
	MaxTokens   int     `json:"max_tokens,omitempty"`
	Temperature float64 `json:"temperature"`
}

// NoopProvider is used when no provider is configured.
type NoopProvider struct{}

func (NoopProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	return "", ErrUnavailable
}

func (NoopProvider) IsAvailable() bool { return false }
