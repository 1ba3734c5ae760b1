// Package identity carries the authenticated user through request contexts.
package identity

import (
	"context"
	"net"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
)

// BearerSecurity marks an operation as requiring a bearer token. The auth
// middleware keys off this.
var BearerSecurity = []map[string][]string{{"bearerAuth": {}}}

type userIDKey struct{}

// WithUserID stamps the authenticated user's id onto the context.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// AttachUserID stamps the authenticated user's id onto a request context
// flowing through the API middleware chain.
func AttachUserID(ctx huma.Context, userID int64) huma.Context {
	return huma.WithValue(ctx, userIDKey{}, userID)
}

// UserID returns the authenticated user's id, if any.
func UserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}

// Require returns the authenticated user's id or a 401 error.
func Require(ctx context.Context) (int64, error) {
	userID, ok := UserID(ctx)
	if !ok {
		return 0, httperr.New(http.StatusUnauthorized, "Authentication required")
	}
	return userID, nil
}

type clientIPKey struct{}

// WithClientIP stamps the caller's address onto the context.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey{}, ip)
}

// ClientIP returns the caller's address, or an empty string when unknown.
func ClientIP(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey{}).(string)
	return ip
}

// ClientIPMiddleware records the remote address on the request context so
// audit trails can attribute actions to a source.
func ClientIPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := r.RemoteAddr
		if host, _, err := net.SplitHostPort(ip); err == nil {
			ip = host
		}
		next.ServeHTTP(w, r.WithContext(WithClientIP(r.Context(), ip)))
	})
}
