package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/infrastructure/observability"
)

// Fallback reasons reported in Result and the ai_fallbacks metric.
const (
	ReasonUnavailable = "unavailable"
	ReasonCircuitOpen = "circuit_open"
	ReasonUpstream    = "upstream_error"
	ReasonTimeout     = "timeout"
	ReasonInvalidJSON = "invalid_json"
)

// Result describes how a completion was produced.
type Result struct {
	Fallback bool   `json:"fallback"`
	Reason   string `json:"reason,omitempty"`
}

// Source is "ai" or "heuristic".
func (r Result) Source() string {
	if r.Fallback {
		return "heuristic"
	}
	return "ai"
}

// Service runs completions with a deterministic fallback.
type Service struct {
	provider Provider
	timeout  time.Duration
	metrics  *observability.Collector
	logger   *zap.Logger
}

// NewService creates a new LLM service with the specified provider. A nil provider
// always falls back.
func NewService(provider Provider, timeout time.Duration, metrics *observability.Collector, logger *zap.Logger) *Service {
	if provider == nil {
		provider = NoopProvider{}
	}
	return &Service{provider: provider, timeout: timeout, metrics: metrics, logger: logger}
}

// IsAvailable returns true if the provider has credentials.
func (s *Service) IsAvailable() bool {
	return s.provider.IsAvailable()
}

// CompleteJSON asks the provider for JSON and decodes it into target. On any failure
// fallback fills target instead and the result is flagged.
func (s *Service) CompleteJSON(ctx context.Context, req CompletionRequest, target interface{}, fallback func()) Result {
	if !s.provider.IsAvailable() {
		return s.fallback(ReasonUnavailable, nil, fallback)
	}

	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	text, err := s.provider.Complete(callCtx, req)
	switch {
	case errors.Is(err, ErrUnavailable):
		return s.fallback(ReasonUnavailable, err, fallback)
	case errors.Is(err, ErrCircuitOpen):
		return s.fallback(ReasonCircuitOpen, err, fallback)
	case errors.Is(err, context.DeadlineExceeded):
		return s.fallback(ReasonTimeout, err, fallback)
	case err != nil:
		return s.fallback(ReasonUpstream, err, fallback)
	}

	if err := DecodeJSON(text, target); err != nil {
		return s.fallback(ReasonInvalidJSON, err, fallback)
	}
	return Result{}
}

func (s *Service) fallback(reason string, err error, fill func()) Result {
	if err != nil {
		s.logger.Warn("AI completion fell back to heuristic", zap.String("reason", reason), zap.Error(err))
	}
	s.metrics.RecordAIFallback(reason)
	if fill != nil {
		fill()
	}
	return Result{Fallback: true, Reason: reason}
}

// DecodeJSON decodes the first JSON object or array found in text, ignoring
// markdown code fences and surrounding prose.
func DecodeJSON(text string, target interface{}) error {
	raw := ExtractJSON(text)
	if raw == "" {
		return fmt.Errorf("no JSON found in completion")
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		return fmt.Errorf("failed to parse JSON response: %w", err)
	}
	return nil
}

// ExtractJSON returns the outermost JSON object or array in text, or "".
func ExtractJSON(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.Index(text, "```"); i >= 0 {
		rest := text[i+3:]
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
			rest = rest[nl+1:]
		}
		if end := strings.Index(rest, "```"); end >= 0 {
			rest = rest[:end]
		}
		text = strings.TrimSpace(rest)
	}

	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return ""
	}
	closer := byte('}')
	if text[start] == '[' {
		closer = ']'
	}
	end := strings.LastIndexByte(text, closer)
	if end < start {
		return ""
	}
	return text[start : end+1]
}
