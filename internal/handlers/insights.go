package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/service/insights"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/pkg/api"
)

// InsightsHandler serves company insight cards.
type InsightsHandler struct {
	service *insights.Service
	logger  *zap.Logger
}

// NewInsightsHandler creates an insights handler.
func NewInsightsHandler(service *insights.Service, logger *zap.Logger) *InsightsHandler {
	return &InsightsHandler{service: service, logger: logger}
}

// Company handles GET /api/insights/company
//
// @Summary Company insights
// @Description Shipment aggregates, enrichment and an AI or heuristic summary. The source fields say which one produced the data.
// @Tags insights
// @Produce json
// @Param name query string true "Company name or domain"
// @Success 200 {object} api.Envelope
// @Failure 400 {object} api.Envelope
// @Failure 500 {object} api.Envelope
// @Security BearerAuth
// @Router /insights/company [get]
func (h *InsightsHandler) Company(w http.ResponseWriter, r *http.Request) {
	principal, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	card, err := h.service.Company(r.Context(), principal, r.URL.Query().Get("name"))
	if err != nil {
		handleServiceError(w, r, h.logger, err, "Failed to load company insights")
		return
	}
	api.Success(w, http.StatusOK, card)
}
