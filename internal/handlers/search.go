package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/service/search"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/pkg/api"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SearchHandler serves the unified shipment search.
type SearchHandler struct {
	service *search.Service
	logger  *zap.Logger
}

// NewSearchHandler creates a search handler.
func NewSearchHandler(service *search.Service, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{service: service, logger: logger}
}

// Unified handles GET /api/search/unified
//
// @Summary Unified shipment search
// @Description Free-text and filtered search over air and ocean shipments, newest first.
// @Tags search
// @Produce json
// @Param q query string false "Free text"
// @Param mode query string false "all, air or ocean"
// @Param date_from query string false "Earliest shipment date"
// @Param date_to query string false "Latest shipment date"
// @Param hs_code query string false "HS code prefix"
// @Param limit query int false "Page size"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} search.Result
// @Failure 500 {object} search.Result
// @Security BearerAuth
// @Router /search/unified [get]
func (h *SearchHandler) Unified(w http.ResponseWriter, r *http.Request) {
	principal, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	res := h.service.Search(r.Context(), principal, r.URL.Query())
	status := http.StatusOK
	if !res.Success {
		status = http.StatusInternalServerError
	}
	api.Page(w, status, api.PageEnvelope{
		Success: res.Success,
		Items:   res.Items,
		Total:   res.Total,
		HasMore: res.HasMore,
		Limit:   res.Limit,
		Offset:  res.Offset,
		Error:   res.Error,
	})
}

// Export handles GET /api/search/unified/export
//
// @Summary Export search results
// @Description Same filters as the unified search; returns an XLSX workbook capped by the plan export limit.
// @Tags search
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} api.Envelope
// @Security BearerAuth
// @Router /search/unified/export [get]
func (h *SearchHandler) Export(w http.ResponseWriter, r *http.Request) {
	principal, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	rows, err := h.service.Export(r.Context(), principal, r.URL.Query(), &buf)
	if err != nil {
		handleServiceError(w, r, h.logger, err, search.FailureMessage)
		return
	}

	filename := fmt.Sprintf("shipments-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("X-Export-Rows", strconv.Itoa(rows))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
