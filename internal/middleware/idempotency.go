package middleware

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	appctx "github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/context"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/repository"
)

const (
	IdempotencyKeyHeader = "Idempotency-Key"
	ReplayedHeader       = "Idempotent-Replayed"
)

// Idempotency replays the first stored response for a repeated Idempotency-Key.
// Keys are scoped to the caller, method and path. Store failures never fail the request.
// A nil store disables the middleware.
func Idempotency(store repository.IdempotencyStore, ttl time.Duration, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if store == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := strings.TrimSpace(r.Header.Get(IdempotencyKeyHeader))
			if key == "" || len(key) > 255 || r.Method == http.MethodGet || r.Method == http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}
			scoped := scopeKey(r, key)

			stored, ok, err := store.Get(r.Context(), scoped)
			if err != nil {
				logger.Warn("Idempotency lookup failed", zap.String("request_id", GetRequestIDFromRequest(r)), zap.Error(err))
			}
			if ok {
				if stored.ContentType != "" {
					w.Header().Set("Content-Type", stored.ContentType)
				}
				w.Header().Set(ReplayedHeader, "true")
				w.WriteHeader(stored.StatusCode)
				w.Write(stored.Body)
				return
			}

			var body bytes.Buffer
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			ww.Tee(&body)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			if status >= http.StatusInternalServerError {
				return
			}
			resp := repository.StoredResponse{
				StatusCode:  status,
				ContentType: ww.Header().Get("Content-Type"),
				Body:        body.Bytes(),
				CreatedAt:   time.Now().UTC(),
			}
			if _, err := store.Put(r.Context(), scoped, resp, ttl); err != nil {
				logger.Warn("Idempotency store failed", zap.String("request_id", GetRequestIDFromRequest(r)), zap.Error(err))
			}
		})
	}
}

func scopeKey(r *http.Request, key string) string {
	org, user := "anonymous", "anonymous"
	if p, ok := appctx.PrincipalFrom(r.Context()); ok {
		org, user = p.OrgID, p.UserID
	}
	return strings.Join([]string{org, user, r.Method, r.URL.Path, key}, "|")
}
