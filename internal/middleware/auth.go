package middleware

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	appctx "github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/context"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/pkg/api"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/pkg/auth"
)

// Authenticate resolves the bearer token into a principal and stores it in the request context.
func Authenticate(verifier auth.Verifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := auth.BearerToken(r.Header.Get("Authorization"))
			if token == "" {
				api.Error(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			principal, err := verifier.Verify(r.Context(), token)
			if err != nil {
				logger.Warn("Authentication failed",
					zap.String("request_id", GetRequestIDFromRequest(r)),
					zap.String("path", r.URL.Path),
					zap.Error(err),
				)
				msg := "Invalid token"
				if errors.Is(err, auth.ErrExpiredToken) {
					msg = "Token expired"
				}
				api.Error(w, http.StatusUnauthorized, msg)
				return
			}

			next.ServeHTTP(w, r.WithContext(appctx.WithPrincipal(r.Context(), principal)))
		})
	}
}
