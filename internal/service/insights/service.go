// Package insights builds the company insight card: shipment aggregates, enrichment
// and an AI summary with a deterministic fallback.
package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/config"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/domain"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/repository"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/service/enrichment"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/service/llm"
	appErrors "github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/pkg/errors"
)

// SampleSize is how many recent shipments are aggregated.
const SampleSize = 100

// ReasonPlan marks a heuristic summary served because the plan excludes AI insights.
const ReasonPlan = "plan"

const systemPrompt = `You are a trade-intelligence analyst for a freight forwarder.
Answer with a single JSON object: {"summary": string, "opportunities": [string]}.
Keep the summary under 80 words and list at most 4 concrete sales opportunities.`

// Insights is the company insight card.
type Insights struct {
	Company        string             `json:"company"`
	Aggregates     Aggregates         `json:"aggregates"`
	Summary        string             `json:"summary"`
	Opportunities  []string           `json:"opportunities"`
	Source         string             `json:"source"`
	FallbackReason string             `json:"fallback_reason,omitempty"`
	Enrichment     enrichment.Company `json:"enrichment"`
}

type aiSummary struct {
	Summary       string   `json:"summary"`
	Opportunities []string `json:"opportunities"`
}

// Service assembles insights.
type Service struct {
	shipments  repository.ShipmentRepository
	enrichment *enrichment.Service
	llm        *llm.Service
	config     *config.Store
	logger     *zap.Logger
}

// NewService creates the insights service.
func NewService(shipments repository.ShipmentRepository, enrich *enrichment.Service, ai *llm.Service, cfg *config.Store, logger *zap.Logger) *Service {
	return &Service{shipments: shipments, enrichment: enrich, llm: ai, config: cfg, logger: logger}
}

// Company builds the insight card for a company name or domain. Only a failing
// shipment query fails the request; enrichment and AI degrade.
func (s *Service) Company(ctx context.Context, principal domain.Principal, name string) (*Insights, error) {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return nil, appErrors.NewValidation("name is required")
	}

	var (
		rows    []domain.Shipment
		total   int
		company enrichment.Company
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, total, err = s.shipments.SearchUnified(gctx, domain.SearchRequest{
			Query: name,
			Mode:  domain.ModeAll,
			Limit: SampleSize,
		})
		return err
	})
	g.Go(func() error {
		company = s.enrichment.Company(gctx, name)
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("Company insights query failed", zap.String("company", name), zap.Error(err))
		return nil, appErrors.NewUpstream("Failed to load company insights", err)
	}

	out := &Insights{
		Company:    name,
		Aggregates: Aggregate(rows, total),
		Enrichment: company,
	}
	fill := func() {
		out.Summary, out.Opportunities = HeuristicSummary(name, out.Aggregates)
	}

	if !s.config.Get().Limits(principal.Plan).AIInsights {
		fill()
		out.Source = "heuristic"
		out.FallbackReason = ReasonPlan
		return out, nil
	}

	var summary aiSummary
	res := s.llm.CompleteJSON(ctx, llm.CompletionRequest{
		System:      systemPrompt,
		Prompt:      buildPrompt(name, out.Aggregates, company),
		MaxTokens:   400,
		Temperature: 0.3,
	}, &summary, fill)
	if !res.Fallback {
		if strings.TrimSpace(summary.Summary) == "" {
			fill()
			res = llm.Result{Fallback: true, Reason: llm.ReasonInvalidJSON}
		} else {
			out.Summary = summary.Summary
			out.Opportunities = summary.Opportunities
		}
	}
	if out.Opportunities == nil {
		out.Opportunities = []string{}
	}
	out.Source = res.Source()
	out.FallbackReason = res.Reason
	return out, nil
}

func buildPrompt(name string, agg Aggregates, company enrichment.Company) string {
	facts, _ := json.Marshal(struct {
		Company    string             `json:"company"`
		Aggregates Aggregates         `json:"aggregates"`
		Profile    enrichment.Company `json:"profile"`
	}{name, agg, company})
	return fmt.Sprintf("Summarize the trade activity of %s and suggest sales opportunities.\n\nData:\n%s", name, facts)
}
