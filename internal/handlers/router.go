package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	_ "github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/docs/swagger"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/config"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/infrastructure/observability"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/middleware"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/repository"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/pkg/api"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/pkg/auth"
)

// IdempotencyTTL is how long a replayable response is kept.
const IdempotencyTTL = 24 * time.Hour

// RouterDeps holds everything the router mounts.
type RouterDeps struct {
	Config      *config.Store
	Verifier    auth.Verifier
	Idempotency repository.IdempotencyStore
	Metrics     *observability.Collector
	Logger      *zap.Logger

	Search    *SearchHandler
	Contacts  *ContactHandler
	Estimate  *EstimateHandler
	Insights  *InsightsHandler
	Campaigns *CampaignHandler
}

// NewRouter creates the HTTP router with all routes and middleware.
func NewRouter(d RouterDeps) *chi.Mux {
	cfg := d.Config.Get()
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.IdempotencyKeyHeader, middleware.RequestIDHeader},
		ExposedHeaders:   []string{"Content-Disposition", middleware.ReplayedHeader, middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.Logger(d.Logger))
	if d.Metrics != nil {
		r.Use(observability.MetricsMiddleware(d.Metrics))
	}
	if cfg.EnableTracing {
		r.Use(observability.TracingMiddleware("logistic-intel-api"))
	}
	r.Use(middleware.Timeout(cfg.RequestTimeout, d.Logger))

	r.Group(func(r chi.Router) {
		r.Get("/health", Health(d.Config))
		if d.Metrics != nil {
			r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())
		}
		r.Get("/api/docs", api.SwaggerUIHandler("/api/swagger"))
		r.Get("/api/swagger", api.SwaggerHandler(api.SwaggerInstance))
	})

	exportBreaker := middleware.CircuitBreaker(middleware.DefaultCircuitBreakerConfig("export"), d.Metrics, d.Logger)

	r.Route("/api", func(r chi.Router) {
		// Pure calculators need no account.
		r.Route("/estimate", func(r chi.Router) {
			r.Get("/tariff", d.Estimate.Tariff)
			r.Post("/tariff", d.Estimate.Tariff)
			r.Post("/quote", d.Estimate.Quote)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(d.Verifier, d.Logger))
			r.Use(middleware.Idempotency(d.Idempotency, IdempotencyTTL, d.Logger))

			r.Get("/search/unified", d.Search.Unified)
			// Search answers its own failure envelope; only bulk export sheds load.
			r.With(exportBreaker).Get("/search/unified/export", d.Search.Export)

			r.Get("/crm/contacts", d.Contacts.List)
			r.Post("/crm/contacts", d.Contacts.Upsert)

			r.Get("/insights/company", d.Insights.Company)

			r.Get("/campaigns", d.Campaigns.List)
			r.Post("/campaigns", d.Campaigns.Create)
		})
	})

	return r
}
