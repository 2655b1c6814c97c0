// Package handlers adapts HTTP requests to the services and shapes the JSON envelopes.
package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	appctx "github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/context"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/domain"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/normalize"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/repository"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/pkg/api"
	appErrors "github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/pkg/errors"
)

const maxBodyBytes = 1 << 20

// getPrincipal extracts the authenticated caller, answering 401 when absent.
func getPrincipal(w http.ResponseWriter, r *http.Request) (domain.Principal, bool) {
	p, ok := appctx.PrincipalFrom(r.Context())
	if !ok {
		api.Error(w, http.StatusUnauthorized, "Authentication required")
	}
	return p, ok
}

// decodeJSON reads a JSON body into v. Malformed bodies are validation errors.
func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return appErrors.NewValidation("Invalid request body")
	}
	return nil
}

// listQuery reads limit, offset and q for org-scoped lists.
func listQuery(r *http.Request, maxLimit int) repository.ListQuery {
	values := r.URL.Query()
	def := normalize.DefaultLimit
	if def > maxLimit {
		def = maxLimit
	}
	return repository.ListQuery{
		Query:  normalize.Text(values.Get("q")),
		Limit:  normalize.Int(values.Get("limit"), def, 1, maxLimit),
		Offset: normalize.Int(values.Get("offset"), 0, 0, normalize.MaxOffset),
	}
}

// handleServiceError converts service errors to appropriate HTTP responses.
// Server-side failures answer with failureMessage and are reported to Sentry.
func handleServiceError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error, failureMessage string) {
	status := appErrors.HTTPStatus(err)
	if status < http.StatusInternalServerError {
		logger.Debug("Request rejected",
			zap.String("request_id", appctx.GetRequestID(r.Context())),
			zap.String("type", string(appErrors.TypeOf(err))),
			zap.Error(err),
		)
		api.Error(w, status, appErrors.PublicMessage(err))
		return
	}

	logger.Error("Request failed",
		zap.String("request_id", appctx.GetRequestID(r.Context())),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	sentry.CaptureException(err)
	if failureMessage == "" {
		failureMessage = appErrors.PublicMessage(err)
	}
	api.Error(w, status, failureMessage)
}
