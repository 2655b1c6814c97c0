// Package persistence decorates the store adapters with a circuit breaker, metrics and spans.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/infrastructure/observability"
	appErrors "github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/pkg/errors"
)

// GuardConfig configures the store circuit breaker.
type GuardConfig struct {
	Name                string
	ConsecutiveFailures uint32
	OpenTimeout         time.Duration
	HalfOpenRequests    uint32
}

// DefaultGuardConfig returns the production breaker settings.
func DefaultGuardConfig() GuardConfig {
	return GuardConfig{
		Name:                "store",
		ConsecutiveFailures: 5,
		OpenTimeout:         30 * time.Second,
		HalfOpenRequests:    1,
	}
}

// Guard runs store calls through one shared breaker.
type Guard struct {
	breaker *gobreaker.CircuitBreaker
	metrics *observability.Collector
	tracer  trace.Tracer
	logger  *zap.Logger
}

// NewGuard creates a guard. metrics may be nil.
func NewGuard(cfg GuardConfig, metrics *observability.Collector, logger *zap.Logger) *Guard {
	g := &Guard{
		metrics: metrics,
		tracer:  observability.Tracer(),
		logger:  logger,
	}
	g.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.HalfOpenRequests,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.ConsecutiveFailures
		},
		// A miss or a rejected payload says nothing about store health.
		IsSuccessful: func(err error) bool {
			return err == nil || appErrors.IsNotFound(err) || appErrors.IsValidation(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Store circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
			metrics.SetBreakerState(name, float64(to))
		},
	})
	return g
}

// State reports the breaker state.
func (g *Guard) State() gobreaker.State {
	return g.breaker.State()
}

func run[T any](ctx context.Context, g *Guard, operation, table string, fn func(ctx context.Context) (T, error)) (T, error) {
	ctx, span := g.tracer.Start(ctx, "store."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "postgresql"),
			attribute.String("db.operation", operation),
			attribute.String("db.collection", table),
		),
	)
	defer span.End()

	start := time.Now()
	res, err := g.breaker.Execute(func() (interface{}, error) {
		return await(ctx, fn)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = appErrors.NewUpstream("store unavailable", err)
	}
	g.metrics.RecordStoreOperation(operation, table, err, time.Since(start))

	if err != nil && !appErrors.IsNotFound(err) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	var zero T
	if err != nil {
		return zero, err
	}
	v, ok := res.(T)
	if !ok {
		return zero, nil
	}
	return v, nil
}

type outcome[T any] struct {
	value T
	err   error
}

// await stops waiting for fn once ctx ends. The PostgREST client takes no
// context, so the abandoned call finishes in the background.
func await[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) (T, error) {
	done := make(chan outcome[T], 1)
	go func() {
		v, err := fn(ctx)
		done <- outcome[T]{value: v, err: err}
	}()
	select {
	case o := <-done:
		return o.value, o.err
	case <-ctx.Done():
		var zero T
		return zero, appErrors.NewUpstream("store call abandoned", ctx.Err())
	}
}

type pageResult[T any] struct {
	items []T
	total int
}
