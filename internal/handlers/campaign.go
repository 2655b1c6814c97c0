package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/config"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/service/campaign"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/pkg/api"
)

// CampaignHandler serves the campaign builder.
type CampaignHandler struct {
	service *campaign.Service
	config  *config.Store
	logger  *zap.Logger
}

// NewCampaignHandler creates a campaign handler.
func NewCampaignHandler(service *campaign.Service, cfg *config.Store, logger *zap.Logger) *CampaignHandler {
	return &CampaignHandler{service: service, config: cfg, logger: logger}
}

// Create handles POST /api/campaigns
//
// @Summary Create a campaign draft
// @Tags campaigns
// @Accept json
// @Produce json
// @Param request body campaign.CreateInput true "Campaign"
// @Success 201 {object} api.Envelope
// @Failure 400 {object} api.Envelope
// @Failure 500 {object} api.Envelope
// @Security BearerAuth
// @Router /campaigns [post]
func (h *CampaignHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	var in campaign.CreateInput
	if err := decodeJSON(r, &in); err != nil {
		handleServiceError(w, r, h.logger, err, "")
		return
	}

	created, err := h.service.Create(r.Context(), principal, in)
	if err != nil {
		handleServiceError(w, r, h.logger, err, "Failed to create campaign")
		return
	}
	api.Success(w, http.StatusCreated, created)
}

// List handles GET /api/campaigns
//
// @Summary List campaigns
// @Tags campaigns
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} api.PageEnvelope
// @Failure 500 {object} api.Envelope
// @Security BearerAuth
// @Router /campaigns [get]
func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	query := listQuery(r, h.config.Get().Limits(principal.Plan).MaxPageSize)
	page, err := h.service.List(r.Context(), principal, query)
	if err != nil {
		handleServiceError(w, r, h.logger, err, "Failed to load campaigns")
		return
	}
	api.Page(w, http.StatusOK, api.PageEnvelope{
		Success: true,
		Items:   page.Items,
		Total:   page.Total,
		HasMore: page.HasMore(),
		Limit:   page.Limit,
		Offset:  page.Offset,
	})
}
