// Package context provides shared request context utilities
package context

import (
	"context"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/domain"
)

// contextKey is used for context values
type contextKey struct {
	name string
}

var (
	// PrincipalKey is the key used to store the authenticated caller in context
	PrincipalKey = contextKey{"principal"}
	// RequestIDKey is the key used to store the request id in context
	RequestIDKey = contextKey{"requestID"}
)

// WithPrincipal adds the authenticated caller to context
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, PrincipalKey, p)
}

// PrincipalFrom extracts the authenticated caller from context
func PrincipalFrom(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(PrincipalKey).(domain.Principal)
	return p, ok && p.UserID != ""
}

// WithRequestID adds the request id to context
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// GetRequestID extracts the request id from context
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}
