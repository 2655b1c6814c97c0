package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/config"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/domain"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/service/crm"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/pkg/api"
)

// ContactHandler serves CRM contacts.
type ContactHandler struct {
	service *crm.Service
	config  *config.Store
	logger  *zap.Logger
}

// NewContactHandler creates a contact handler.
func NewContactHandler(service *crm.Service, cfg *config.Store, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{service: service, config: cfg, logger: logger}
}

// UpsertResponse is the envelope of the upsert endpoint.
type UpsertResponse struct {
	Success bool           `json:"success"`
	Data    domain.Contact `json:"data"`
	Created bool           `json:"created"`
}

// Upsert handles POST /api/crm/contacts
//
// @Summary Upsert a CRM contact
// @Description Matches by external_id, then by email, within the caller's organization. Updates the match or inserts a new contact.
// @Tags crm
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Replay protection key"
// @Param request body crm.UpsertInput true "Contact"
// @Success 200 {object} UpsertResponse "Updated"
// @Success 201 {object} UpsertResponse "Created"
// @Failure 400 {object} api.Envelope
// @Failure 500 {object} api.Envelope
// @Security BearerAuth
// @Router /crm/contacts [post]
func (h *ContactHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	principal, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	var in crm.UpsertInput
	if err := decodeJSON(r, &in); err != nil {
		handleServiceError(w, r, h.logger, err, "")
		return
	}

	res, err := h.service.Upsert(r.Context(), principal, in)
	if err != nil {
		handleServiceError(w, r, h.logger, err, crm.SaveFailedMessage)
		return
	}

	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}
	api.JSON(w, status, UpsertResponse{Success: true, Data: res.Contact, Created: res.Created})
}

// List handles GET /api/crm/contacts
//
// @Summary List CRM contacts
// @Tags crm
// @Produce json
// @Param q query string false "Company, name or email contains"
// @Param limit query int false "Page size"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} api.PageEnvelope
// @Failure 500 {object} api.Envelope
// @Security BearerAuth
// @Router /crm/contacts [get]
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	query := listQuery(r, h.config.Get().Limits(principal.Plan).MaxPageSize)
	page, err := h.service.List(r.Context(), principal, query)
	if err != nil {
		handleServiceError(w, r, h.logger, err, "Failed to load contacts")
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
