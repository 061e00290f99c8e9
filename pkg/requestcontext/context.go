// Package requestcontext provides HTTP-independent context accessors for
// request-scoped values. Middleware sets them; services and handlers read
// them without importing net/http.
package requestcontext

import (
	"context"

	usermodels "insightdeck/internal/users/models"
)

// Context key types (unexported for encapsulation).
type (
	requestIDKey struct{}
	userKey      struct{}
	userAgentKey struct{}
)

// Exported context keys for tests that need context.WithValue directly.
var (
	ContextKeyRequestID = requestIDKey{}
	ContextKeyUser      = userKey{}
	ContextKeyUserAgent = userAgentKey{}
)

// RequestID retrieves the request ID from the context.
func RequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return reqID
	}
	return ""
}

// WithRequestID injects a request ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// User retrieves the authenticated user's sanitized profile from the
// context. Returns nil when the request carried no valid session token.
func User(ctx context.Context) *usermodels.Profile {
	if user, ok := ctx.Value(ContextKeyUser).(*usermodels.Profile); ok {
		return user
	}
	return nil
}

// WithUser injects an authenticated user profile into the context.
func WithUser(ctx context.Context, user *usermodels.Profile) context.Context {
	return context.WithValue(ctx, ContextKeyUser, user)
}

// UserAgent retrieves the request User-Agent from the context.
func UserAgent(ctx context.Context) string {
	if ua, ok := ctx.Value(ContextKeyUserAgent).(string); ok {
		return ua
	}
	return ""
}

// WithUserAgent injects a User-Agent string into a context. Useful for
// service unit tests that don't run the full HTTP middleware chain.
func WithUserAgent(ctx context.Context, userAgent string) context.Context {
	return context.WithValue(ctx, ContextKeyUserAgent, userAgent)
}
