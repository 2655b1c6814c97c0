// Package middleware holds the HTTP middleware shared by every route.
package middleware

import (
	"net/http"

	"github.com/google/uuid"

	appctx "github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/context"
)

// RequestIDHeader carries the correlation id in and out.
const RequestIDHeader = "X-Request-ID"

// RequestID middleware generates or extracts request ID and adds it to context and response headers
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" || len(requestID) > 128 {
			requestID = uuid.New().String()
		}

		w.Header().Set(RequestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(appctx.WithRequestID(r.Context(), requestID)))
	})
}

// GetRequestIDFromRequest extracts the request ID from the request context
func GetRequestIDFromRequest(r *http.Request) string {
	return appctx.GetRequestID(r.Context())
}
