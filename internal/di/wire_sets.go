package di

import (
	"github.com/google/wire"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/events"
)

// SuperSet combines all provider sets for the complete application.
var SuperSet = wire.NewSet(
	ConfigProviders,
	ObservabilityProviders,
	InfrastructureProviders,
	ServiceProviders,
	InterfaceProviders,
	NewApp,
)

// ConfigProviders provides the live configuration and the logger.
var ConfigProviders = wire.NewSet(
	provideConfigStore,
	provideLogger,
)

// ObservabilityProviders provides metrics and tracing.
var ObservabilityProviders = wire.NewSet(
	provideMetricsCollector,
	provideTracerProvider,
)

// InfrastructureProviders provides the store, AWS clients and the event bus.
var InfrastructureProviders = wire.NewSet(
	provideSupabaseClient,
	provideAWSConfig,
	provideGuard,
	provideShipmentRepository,
	provideContactRepository,
	provideCampaignRepository,
	provideIdempotencyStore,
	provideEventBus,
	wire.Bind(new(events.Publisher), new(*events.Bus)),
	provideForwarder,
	provideVerifier,
)

// ServiceProviders provides the application services.
var ServiceProviders = wire.NewSet(
	provideLLMProvider,
	provideLLMService,
	provideCompanyFinder,
	provideEnrichmentService,
	provideSearchService,
	provideCRMService,
	provideCampaignService,
	provideInsightsService,
)

// InterfaceProviders provides the HTTP surface.
var InterfaceProviders = wire.NewSet(
	provideRouter,
)
