package insights

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/config"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/domain"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/repository/mocks"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/service/enrichment"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/service/llm"
	appErrors "github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/pkg/errors"
)

func acmeRows() []domain.Shipment {
	return []domain.Shipment{
		{ID: "1", Mode: domain.ModeOcean, CompanyName: "Acme Freight", OriginCity: "Shanghai", OriginCountry: "CN",
			DestinationCity: "Long Beach", DestinationCountry: "US", Carrier: "COSCO", HSCode: "850440", ShipmentDate: "2024-03-01"},
		{ID: "2", Mode: domain.ModeOcean, CompanyName: "Acme Freight", OriginCity: "Shanghai", OriginCountry: "CN",
			DestinationCity: "Long Beach", DestinationCountry: "US", Carrier: "Maersk", HSCode: "850440", ShipmentDate: "2024-04-11"},
		{ID: "3", Mode: domain.ModeAir, CompanyName: "Acme Freight", OriginCountry: "DE", DestinationCountry: "US",
			Carrier: "COSCO", HSCode: "9403", ShipmentDate: "2024-02-20"},
		{ID: "4", Mode: domain.ModeOcean, CompanyName: "Other Co", ShipmentDate: "2024-05-01"},
	}
}

func newService(provider llm.Provider) *Service {
	logger := zap.NewNop()
	return NewService(
		mocks.NewShipmentRepository(acmeRows()...),
		enrichment.NewService(nil, logger),
		llm.NewService(provider, time.Second, nil, logger),
		config.NewStore(config.Default()),
		logger,
	)
}

func TestAggregate(t *testing.T) {
	agg := Aggregate(acmeRows()[:3], 3)
	assert.Equal(t, 3, agg.TotalShipments)
	assert.Equal(t, "2024-04-11", agg.LatestShipment)
	assert.Equal(t, map[string]int{"ocean": 2, "air": 1}, agg.Modes)
	assert.Equal(t, Count{Name: "Shanghai, CN -> Long Beach, US", Count: 2}, agg.TopLanes[0])
	assert.Equal(t, Count{Name: "COSCO", Count: 2}, agg.TopCarriers[0])
	assert.Equal(t, Count{Name: "85", Count: 2}, agg.TopHSChapters[0])
	assert.Equal(t, "ocean", agg.dominantMode())
}

func TestHeuristicSummary(t *testing.T) {
	summary, opportunities := HeuristicSummary("Acme", Aggregate(acmeRows()[:3], 3))
	assert.Contains(t, summary, "Acme has 3 recorded shipments, the latest on 2024-04-11")
	assert.Contains(t, summary, "Shanghai, CN -> Long Beach, US")
	assert.Len(t, opportunities, 3)

	summary, opportunities = HeuristicSummary("Nobody", Aggregate(nil, 0))
	assert.Equal(t, "No shipment records found for Nobody.", summary)
	assert.Len(t, opportunities, 1)
}

func TestCompany(t *testing.T) {
	ctx := context.Background()
	pro := domain.Principal{UserID: "u", OrgID: "o", Plan: domain.PlanPro}

	t.Run("Should use AI summary", func(t *testing.T) {
		provider := llm.NewMockProvider(`{"summary":"Acme ships electronics from Shanghai.","opportunities":["Bid the CN-US lane"]}`)
		got, err := newService(provider).Company(ctx, pro, "Acme Freight")
		require.NoError(t, err)
		assert.Equal(t, "ai", got.Source)
		assert.Equal(t, "Acme ships electronics from Shanghai.", got.Summary)
		assert.Equal(t, []string{"Bid the CN-US lane"}, got.Opportunities)
		assert.Equal(t, 3, got.Aggregates.TotalShipments)
		assert.Equal(t, enrichment.SourceHeuristic, got.Enrichment.Source)

		reqs := provider.Requests()
		require.Len(t, reqs, 1)
		assert.Contains(t, reqs[0].Prompt, "Acme Freight")
	})

	t.Run("Should fall back without credentials", func(t *testing.T) {
		got, err := newService(nil).Company(ctx, pro, "Acme Freight")
		require.NoError(t, err)
		assert.Equal(t, "heuristic", got.Source)
		assert.Equal(t, llm.ReasonUnavailable, got.FallbackReason)
		assert.Contains(t, got.Summary, "Acme Freight has 3 recorded shipments")
	})

	t.Run("Should fall back on empty AI summary", func(t *testing.T) {
		got, err := newService(llm.NewMockProvider(`{"summary":""}`)).Company(ctx, pro, "Acme Freight")
		require.NoError(t, err)
		assert.Equal(t, "heuristic", got.Source)
		assert.NotEmpty(t, got.Summary)
	})

	t.Run("Should skip AI for free plan", func(t *testing.T) {
		provider := llm.NewMockProvider(`{"summary":"x"}`)
		got, err := newService(provider).Company(ctx, domain.Principal{UserID: "u", OrgID: "o", Plan: domain.PlanFree}, "Acme Freight")
		require.NoError(t, err)
		assert.Equal(t, ReasonPlan, got.FallbackReason)
		assert.Empty(t, provider.Requests())
	})

	t.Run("Should require a name", func(t *testing.T) {
		_, err := newService(nil).Company(ctx, pro, "   ")
		assert.True(t, appErrors.IsValidation(err))
	})

	t.Run("Should fail when shipments cannot be loaded", func(t *testing.T) {
		repo := mocks.NewShipmentRepository()
		repo.SetError("SearchUnified", errors.New("boom"))
		logger := zap.NewNop()
		svc := NewService(repo, enrichment.NewService(nil, logger), llm.NewService(nil, time.Second, nil, logger),
			config.NewStore(config.Default()), logger)

		_, err := svc.Company(ctx, pro, "Acme")
		assert.True(t, appErrors.IsUpstream(err))
	})
}
