package di

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/config"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/service/enrichment"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/service/llm"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/pkg/auth"
)

func TestProvideLLMProvider(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("Should disable AI by default", func(t *testing.T) {
		p, err := provideLLMProvider(ctx, config.Default(), nil, logger)
		require.NoError(t, err)
		assert.IsType(t, llm.NoopProvider{}, p)
		assert.False(t, p.IsAvailable())
	})

	t.Run("Should wrap the HTTP provider in a breaker", func(t *testing.T) {
		cfg := config.Default()
		cfg.AI.Provider = config.AIProviderHTTP
		cfg.AI.Endpoint = "https://llm.internal/v1/complete"
		cfg.AI.APIKey = "key"

		p, err := provideLLMProvider(ctx, cfg, nil, logger)
		require.NoError(t, err)
		assert.IsType(t, &llm.BreakerProvider{}, p)
		assert.True(t, p.IsAvailable())
	})

	t.Run("Should require a GenAI key", func(t *testing.T) {
		cfg := config.Default()
		cfg.AI.Provider = config.AIProviderGenAI

		_, err := provideLLMProvider(ctx, cfg, nil, logger)
		assert.Error(t, err)
	})
}

func TestProvideCompanyFinder(t *testing.T) {
	cfg := config.Default()
	assert.Nil(t, provideCompanyFinder(cfg))

	cfg.Clearbit.APIKey = "sk_test"
	assert.IsType(t, &enrichment.ClearbitFinder{}, provideCompanyFinder(cfg))
}

func TestProvideIdempotencyStore(t *testing.T) {
	cfg := config.Default()
	assert.Nil(t, provideIdempotencyStore(aws.Config{Region: "us-east-1"}, cfg))

	cfg.IdempotencyTable = "idempotency"
	assert.NotNil(t, provideIdempotencyStore(aws.Config{Region: "us-east-1"}, cfg))
}

func TestProvideForwarderDisabled(t *testing.T) {
	logger := zap.NewNop()
	bus := provideEventBus(logger)

	forwarder, detach := provideForwarder(aws.Config{}, config.Default(), bus, logger)
	assert.Nil(t, forwarder)
	detach()
	assert.Equal(t, 0, bus.Subscribers())
}

func TestProvideVerifier(t *testing.T) {
	cfg := config.Default()
	cfg.Supabase.JWTSecret = "secret"

	v, err := provideVerifier(cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &auth.JWTVerifier{}, v)

	cfg.Supabase.JWTSecret = ""
	v, err = provideVerifier(cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &auth.GoTrueVerifier{}, v)
}

func TestProvideLogger(t *testing.T) {
	cfg := config.Default()
	logger, err := provideLogger(cfg)
	require.NoError(t, err)
	assert.NotNil(t, logger)

	cfg.LogLevel = "chatty"
	_, err = provideLogger(cfg)
	assert.Error(t, err)
}

func TestProvideMetricsCollector(t *testing.T) {
	cfg := config.Default()
	assert.NotNil(t, provideMetricsCollector(cfg))

	cfg.EnableMetrics = false
	assert.Nil(t, provideMetricsCollector(cfg))
}
