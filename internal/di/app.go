// Package di wires the application together.
package di

import (
	"context"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/config"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/events"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/infrastructure/messaging"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/infrastructure/observability"
)

// App is the assembled API: the router plus everything that needs an orderly shutdown.
type App struct {
	Config  *config.Store
	Logger  *zap.Logger
	Router  *chi.Mux
	Bus     *events.Bus
	Metrics *observability.Collector
	Tracer  *observability.TracerProvider

	// Forwarder is nil unless EVENT_BUS_NAME is set.
	Forwarder *messaging.Forwarder
}

// NewApp bundles the assembled components.
func NewApp(store *config.Store, logger *zap.Logger, router *chi.Mux, bus *events.Bus,
	metrics *observability.Collector, tracer *observability.TracerProvider, forwarder *messaging.Forwarder) *App {
	return &App{
		Config:  store,
		Logger:  logger,
		Router:  router,
		Bus:     bus,
		Metrics: metrics,
		Tracer:  tracer,

		Forwarder: forwarder,
	}
}

// Shutdown flushes telemetry.
func (a *App) Shutdown(ctx context.Context) {
	if a.Tracer != nil {
		if err := a.Tracer.Shutdown(ctx); err != nil {
			a.Logger.Warn("Tracer shutdown failed", zap.Error(err))
		}
	}
	a.Logger.Sync()
}
