package handlers

import (
	"net/http"
	"time"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/config"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/pkg/api"
)

// HealthStatus is the body of the health check.
type HealthStatus struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Time        string `json:"time"`
}

// Health handles GET /health
//
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} api.Envelope
// @Router /health [get]
func Health(cfg *config.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		api.Success(w, http.StatusOK, HealthStatus{
			Status:      "ok",
			Environment: string(cfg.Get().Environment),
			Time:        time.Now().UTC().Format(time.RFC3339),
		})
	}
}
