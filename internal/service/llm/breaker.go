package llm

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/infrastructure/observability"
)

// ErrCircuitOpen is returned while the provider breaker rejects calls.
var ErrCircuitOpen = errors.New("llm circuit breaker is open")

// BreakerProvider stops calling a failing provider for a cool-down period.
type BreakerProvider struct {
	next    Provider
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerProvider wraps next. After failures consecutive errors the breaker
// opens for openFor.
func NewBreakerProvider(next Provider, failures uint32, openFor time.Duration, metrics *observability.Collector, logger *zap.Logger) *BreakerProvider {
	return &BreakerProvider{
		next: next,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "llm",
			MaxRequests: 1,
			Timeout:     openFor,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= failures
			},
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, ErrUnavailable) || errors.Is(err, context.Canceled)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("LLM circuit breaker state changed",
					zap.String("from", from.String()),
					zap.String("to", to.String()),
				)
				metrics.SetBreakerState(name, float64(to))
			},
		}),
	}
}

func (p *BreakerProvider) IsAvailable() bool {
	return p.next.IsAvailable()
}

func (p *BreakerProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	out, err := p.breaker.Execute(func() (interface{}, error) {
		return p.next.Complete(ctx, req)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "", ErrCircuitOpen
	}
	if err != nil {
		return "", err
	}
	return out.(string), nil
}
