// Package search serves the unified shipment search and its spreadsheet export.
package search

import (
	"context"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/config"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/domain"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/infrastructure/observability"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/normalize"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/repository"
)

// FailureMessage is the only error detail callers see.
const FailureMessage = "Search failed"

// Result is one page of the unified search, ready to encode.
type Result struct {
	Success bool              `json:"success"`
	Items   []domain.Shipment `json:"items"`
	Total   int               `json:"total"`
	HasMore bool              `json:"hasMore"`
	Limit   int               `json:"limit"`
	Offset  int               `json:"offset"`
	Error   string            `json:"error,omitempty"`
}

// Service runs unified searches.
type Service struct {
	repo    repository.ShipmentRepository
	config  *config.Store
	metrics *observability.Collector
	logger  *zap.Logger
}

// NewService creates a search service. metrics may be nil.
func NewService(repo repository.ShipmentRepository, cfg *config.Store, metrics *observability.Collector, logger *zap.Logger) *Service {
	return &Service{repo: repo, config: cfg, metrics: metrics, logger: logger}
}

// Request normalizes query parameters within the caller's plan page size.
func (s *Service) Request(principal domain.Principal, values url.Values) domain.SearchRequest {
	limits := s.config.Get().Limits(principal.Plan)
	return normalize.SearchRequest(values, limits.MaxPageSize)
}

// Search runs one page of the unified search. It never returns an error: failures
// are reported in the Result with Success false.
func (s *Service) Search(ctx context.Context, principal domain.Principal, values url.Values) Result {
	req := s.Request(principal, values)
	return s.Run(ctx, req)
}

// Run executes an already normalized request.
func (s *Service) Run(ctx context.Context, req domain.SearchRequest) Result {
	start := time.Now()
	items, total, err := s.repo.SearchUnified(ctx, req)
	if err != nil {
		s.logger.Error("Unified search failed",
			zap.String("mode", string(req.Mode)),
			zap.Int("limit", req.Limit),
			zap.Int("offset", req.Offset),
			zap.Error(err),
		)
		s.metrics.RecordSearch(string(req.Mode), "error")
		return Result{
			Success: false,
			Items:   []domain.Shipment{},
			Limit:   req.Limit,
			Offset:  req.Offset,
			Error:   FailureMessage,
		}
	}
	if items == nil {
		items = []domain.Shipment{}
	}

	s.metrics.RecordSearch(string(req.Mode), "ok")
	s.logger.Debug("Unified search",
		zap.String("mode", string(req.Mode)),
		zap.Int("returned", len(items)),
		zap.Int("total", total),
		zap.Duration("took", time.Since(start)),
	)

	return Result{
		Success: true,
		Items:   items,
		Total:   total,
		HasMore: domain.HasMore(req.Offset, len(items), total),
		Limit:   req.Limit,
		Offset:  req.Offset,
	}
}
