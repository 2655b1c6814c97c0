package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/domain"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/service/estimate"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/validation"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/pkg/api"
	appErrors "github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/pkg/errors"
)

// EstimateHandler serves the deterministic tariff and freight estimators.
type EstimateHandler struct {
	logger *zap.Logger
}

// NewEstimateHandler creates an estimate handler.
func NewEstimateHandler(logger *zap.Logger) *EstimateHandler {
	return &EstimateHandler{logger: logger}
}

// TariffRequest is the body of a tariff estimate.
type TariffRequest struct {
	HSCode       string  `json:"hs_code" validate:"max=20"`
	Incoterm     string  `json:"incoterm" validate:"max=3"`
	CustomsValue float64 `json:"customs_value" validate:"gte=0"`
}

// QuoteRequest is the body of a freight quote.
type QuoteRequest struct {
	Mode               string  `json:"mode"`
	WeightKg           float64 `json:"weight_kg" validate:"gte=0"`
	Containers         int     `json:"containers" validate:"gte=0"`
	OriginCountry      string  `json:"origin_country" validate:"max=64"`
	DestinationCountry string  `json:"destination_country" validate:"max=64"`
	Incoterm           string  `json:"incoterm" validate:"max=3"`
	HSCode             string  `json:"hs_code" validate:"max=20"`
	CustomsValue       float64 `json:"customs_value" validate:"gte=0"`
}

func tariffFromQuery(r *http.Request) (TariffRequest, error) {
	values := r.URL.Query()
	req := TariffRequest{
		HSCode:   values.Get("hs_code"),
		Incoterm: values.Get("incoterm"),
	}
	if raw := strings.TrimSpace(values.Get("customs_value")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return req, appErrors.NewValidation("customs_value must be a number")
		}
		req.CustomsValue = v
	}
	return req, nil
}

// Tariff handles GET and POST /api/estimate/tariff
//
// @Summary Estimate duty and tax
// @Description Heuristic, non-binding duty and tax estimate from the HS chapter and incoterm.
// @Tags estimate
// @Accept json
// @Produce json
// @Param request body TariffRequest false "Tariff input (POST)"
// @Param hs_code query string false "HS code (GET)"
// @Param incoterm query string false "Incoterm (GET)"
// @Param customs_value query number false "Customs value (GET)"
// @Success 200 {object} api.Envelope
// @Failure 400 {object} api.Envelope
// @Router /estimate/tariff [post]
func (h *EstimateHandler) Tariff(w http.ResponseWriter, r *http.Request) {
	var (
		req TariffRequest
		err error
	)
	if r.Method == http.MethodGet {
		req, err = tariffFromQuery(r)
	} else {
		err = decodeJSON(r, &req)
	}
	if err == nil {
		err = validation.GetValidator().Validate(req)
	}
	if err != nil {
		handleServiceError(w, r, h.logger, err, "")
		return
	}

	api.Success(w, http.StatusOK, estimate.Tariff(domain.TariffInput{
		HSCode:       req.HSCode,
		Incoterm:     req.Incoterm,
		CustomsValue: req.CustomsValue,
	}))
}

// Quote handles POST /api/estimate/quote
//
// @Summary Quote freight and landed cost
// @Description Air is priced per chargeable kilogram, ocean per container, plus lane and fuel surcharges and the tariff estimate.
// @Tags estimate
// @Accept json
// @Produce json
// @Param request body QuoteRequest true "Quote input"
// @Success 200 {object} api.Envelope
// @Failure 400 {object} api.Envelope
// @Router /estimate/quote [post]
func (h *EstimateHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	err := decodeJSON(r, &req)
	if err == nil {
		err = validation.GetValidator().Validate(req)
	}
	if err != nil {
		handleServiceError(w, r, h.logger, err, "")
		return
	}

	api.Success(w, http.StatusOK, estimate.Quote(domain.QuoteInput{
		Mode:               domain.Mode(strings.ToLower(strings.TrimSpace(req.Mode))),
		WeightKg:           req.WeightKg,
		Containers:         req.Containers,
		OriginCountry:      req.OriginCountry,
		DestinationCountry: req.DestinationCountry,
		Incoterm:           req.Incoterm,
		HSCode:             req.HSCode,
		CustomsValue:       req.CustomsValue,
	}))
}
