package di

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/go-chi/chi/v5"
	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/config"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/events"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/handlers"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/infrastructure/idempotency"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/infrastructure/messaging"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/infrastructure/observability"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/infrastructure/persistence"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/infrastructure/persistence/supabasedb"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/repository"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/service/campaign"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/service/crm"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/service/enrichment"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/service/insights"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/service/llm"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/service/search"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/pkg/auth"
)

const (
	serviceName = "logistic-intel-api"

	// Supabase user tokens carry this audience.
	supabaseAudience = "authenticated"

	llmBreakerFailures = 5
	llmBreakerOpenFor  = 60 * time.Second
	enrichmentTimeout  = 5 * time.Second
)

// Configuration providers

func provideConfigStore(cfg *config.Config) *config.Store {
	return config.NewStore(cfg)
}

func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger.With(zap.String("service", serviceName), zap.String("environment", string(cfg.Environment))), nil
}

// Observability providers

func provideMetricsCollector(cfg *config.Config) *observability.Collector {
	if !cfg.EnableMetrics {
		return nil
	}
	return observability.NewCollector("logistic_intel")
}

func provideTracerProvider(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*observability.TracerProvider, error) {
	if !cfg.EnableTracing {
		return nil, nil
	}
	tp, err := observability.InitTracing(ctx, observability.TracingConfig{
		ServiceName: serviceName,
		Environment: string(cfg.Environment),
		Endpoint:    cfg.OTLPEndpoint,
		SampleRate:  cfg.TraceSampleRate,
	})
	if err != nil {
		return nil, err
	}
	logger.Info("Tracing enabled", zap.String("endpoint", cfg.OTLPEndpoint))
	return tp, nil
}

// Infrastructure providers

func provideSupabaseClient(cfg *config.Config) (*supabase.Client, error) {
	return supabasedb.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceRoleKey)
}

func provideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return aws.Config{}, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return awsCfg, nil
}

func provideGuard(metrics *observability.Collector, logger *zap.Logger) *persistence.Guard {
	return persistence.NewGuard(persistence.DefaultGuardConfig(), metrics, logger)
}

func provideShipmentRepository(client *supabase.Client, cfg *config.Config, guard *persistence.Guard, logger *zap.Logger) repository.ShipmentRepository {
	return persistence.NewShipmentRepository(
		supabasedb.NewShipmentRepository(client, cfg.ShipmentsView, logger), guard, cfg.ShipmentsView)
}

func provideContactRepository(client *supabase.Client, cfg *config.Config, guard *persistence.Guard, logger *zap.Logger) repository.ContactRepository {
	return persistence.NewContactRepository(
		supabasedb.NewContactRepository(client, cfg.ContactsTable, logger), guard, cfg.ContactsTable)
}

func provideCampaignRepository(client *supabase.Client, cfg *config.Config, guard *persistence.Guard, logger *zap.Logger) repository.CampaignRepository {
	return persistence.NewCampaignRepository(
		supabasedb.NewCampaignRepository(client, cfg.CampaignsTable, logger), guard, cfg.CampaignsTable)
}

// provideIdempotencyStore returns nil when no table is configured, which disables replay.
func provideIdempotencyStore(awsCfg aws.Config, cfg *config.Config) repository.IdempotencyStore {
	if cfg.IdempotencyTable == "" {
		return nil
	}
	return idempotency.NewStore(dynamodb.NewFromConfig(awsCfg), cfg.IdempotencyTable)
}

func provideEventBus(logger *zap.Logger) *events.Bus {
	return events.NewBus(logger)
}

// provideForwarder attaches an EventBridge forwarder to the bus when a bus name is configured.
func provideForwarder(awsCfg aws.Config, cfg *config.Config, bus *events.Bus, logger *zap.Logger) (*messaging.Forwarder, func()) {
	if cfg.EventBusName == "" {
		return nil, func() {}
	}
	forwarder := messaging.NewForwarder(eventbridge.NewFromConfig(awsCfg), cfg.EventBusName, logger)
	detach := forwarder.Attach(context.Background(), bus)
	logger.Info("Forwarding domain events", zap.String("event_bus", cfg.EventBusName))
	return forwarder, detach
}

func provideVerifier(cfg *config.Config, client *supabase.Client) (auth.Verifier, error) {
	if cfg.Supabase.JWTSecret != "" {
		return auth.NewJWTVerifier(cfg.Supabase.JWTSecret, supabaseAudience)
	}
	return auth.NewGoTrueVerifier(client), nil
}

// AI and enrichment providers

func provideLLMProvider(ctx context.Context, cfg *config.Config, metrics *observability.Collector, logger *zap.Logger) (llm.Provider, error) {
	var provider llm.Provider
	switch cfg.AI.Provider {
	case config.AIProviderHTTP:
		provider = llm.NewHTTPProvider(cfg.AI.Endpoint, cfg.AI.APIKey, cfg.AI.Model, cfg.AI.Timeout, nil)
	case config.AIProviderGenAI:
		p, err := llm.NewGenAIProvider(ctx, cfg.AI.APIKey, cfg.AI.Model)
		if err != nil {
			return nil, err
		}
		provider = p
	default:
		logger.Info("AI provider disabled, insights use heuristics")
		return llm.NoopProvider{}, nil
	}
	return llm.NewBreakerProvider(provider, llmBreakerFailures, llmBreakerOpenFor, metrics, logger), nil
}

func provideLLMService(provider llm.Provider, cfg *config.Config, metrics *observability.Collector, logger *zap.Logger) *llm.Service {
	return llm.NewService(provider, cfg.AI.Timeout, metrics, logger)
}

func provideCompanyFinder(cfg *config.Config) enrichment.CompanyFinder {
	if cfg.Clearbit.APIKey == "" {
		return nil
	}
	return enrichment.NewClearbitFinder(cfg.Clearbit.APIKey, enrichmentTimeout)
}

// Service providers

func provideSearchService(repo repository.ShipmentRepository, store *config.Store, metrics *observability.Collector, logger *zap.Logger) *search.Service {
	return search.NewService(repo, store, metrics, logger)
}

func provideCRMService(repo repository.ContactRepository, publisher events.Publisher, metrics *observability.Collector, logger *zap.Logger) *crm.Service {
	return crm.NewService(repo, publisher, metrics, logger)
}

func provideCampaignService(repo repository.CampaignRepository, publisher events.Publisher, logger *zap.Logger) *campaign.Service {
	return campaign.NewService(repo, publisher, logger)
}

func provideEnrichmentService(finder enrichment.CompanyFinder, logger *zap.Logger) *enrichment.Service {
	return enrichment.NewService(finder, logger)
}

func provideInsightsService(repo repository.ShipmentRepository, enrich *enrichment.Service, ai *llm.Service, store *config.Store, logger *zap.Logger) *insights.Service {
	return insights.NewService(repo, enrich, ai, store, logger)
}

// Interface providers

func provideRouter(
	store *config.Store,
	verifier auth.Verifier,
	idem repository.IdempotencyStore,
	metrics *observability.Collector,
	logger *zap.Logger,
	searchSvc *search.Service,
	crmSvc *crm.Service,
	insightsSvc *insights.Service,
	campaignSvc *campaign.Service,
) *chi.Mux {
	return handlers.NewRouter(handlers.RouterDeps{
		Config:      store,
		Verifier:    verifier,
		Idempotency: idem,
		Metrics:     metrics,
		Logger:      logger,
		Search:      handlers.NewSearchHandler(searchSvc, logger),
		Contacts:    handlers.NewContactHandler(crmSvc, store, logger),
		Estimate:    handlers.NewEstimateHandler(logger),
		Insights:    handlers.NewInsightsHandler(insightsSvc, logger),
		Campaigns:   handlers.NewCampaignHandler(campaignSvc, store, logger),
	})
}
