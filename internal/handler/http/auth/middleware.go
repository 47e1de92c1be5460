package auth

import (
	"context"
	"net/http"
	"strings"

	"conduit/internal/handler/http/respond"
)

type ctxKey string

const ctxIdentity ctxKey = "identity"

// IdentityFromContext retrieves the authenticated identity from the context.
// Returns nil when the request is anonymous.
func IdentityFromContext(ctx context.Context) *Identity {
	if id, ok := ctx.Value(ctxIdentity).(*Identity); ok {
		return id
	}
	return nil
}

// ViewerID returns the authenticated user's ID, or 0 for anonymous requests.
func ViewerID(ctx context.Context) int64 {
	if id := IdentityFromContext(ctx); id != nil {
		return id.UserID
	}
	return 0
}

// WithIdentity returns a context carrying the identity.
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, ctxIdentity, identity)
}

// Required returns middleware that rejects requests without a valid token.
// The verified identity is attached to the request context.
func (m *TokenManager) Required(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := m.identityFromHeader(r)
		if err != nil {
			respond.FieldError(w, http.StatusUnauthorized, "body", "unauthorized")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
	})
}

// Optional returns middleware that attaches the identity when a valid token
// is present and passes the request through anonymously otherwise. An
// invalid token on an optional route is still rejected so a caller never
// silently loses their identity.
func (m *TokenManager) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			next.ServeHTTP(w, r)
			return
		}
		identity, err := m.identityFromHeader(r)
		if err != nil {
			respond.FieldError(w, http.StatusUnauthorized, "body", "unauthorized")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
	})
}

// identityFromHeader extracts and verifies the token from the Authorization
// header. Both "Bearer <token>" and the legacy "Token <token>" scheme are
// accepted.
func (m *TokenManager) identityFromHeader(r *http.Request) (*Identity, error) {
	authz := r.Header.Get("Authorization")
	var tokenString string
	switch {
	case strings.HasPrefix(authz, "Bearer "):
		tokenString = strings.TrimPrefix(authz, "Bearer ")
	case strings.HasPrefix(authz, "Token "):
		tokenString = strings.TrimPrefix(authz, "Token ")
	default:
		return nil, ErrInvalidToken
	}
	return m.Verify(tokenString)
}
