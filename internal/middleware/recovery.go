package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/pkg/api"
)

// Recovery converts panics into a 500 envelope. Panics are reported to Sentry when a
// client has been initialised.
func Recovery(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				requestID := GetRequestIDFromRequest(r)

				logger.Error("Panic recovered",
					zap.String("request_id", requestID),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("panic", fmt.Sprint(rec)),
					zap.ByteString("stack", debug.Stack()),
				)

				hub := sentry.CurrentHub().Clone()
				hub.Scope().SetTag("request_id", requestID)
				hub.Scope().SetRequest(r)
				hub.Recover(rec)

				// Nothing can be sent once the handler started writing.
				if w.Header().Get("Content-Type") == "" {
					api.Error(w, http.StatusInternalServerError, "Internal server error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
