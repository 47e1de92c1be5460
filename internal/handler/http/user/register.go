package user

import (
	"net/http"

	"conduit/internal/handler/http/auth"
	userUC "conduit/internal/usecase/user"
)

// RouteDeps carries the shared dependencies for the account routes.
type RouteDeps struct {
	Svc    *userUC.Service
	Tokens *auth.TokenManager

	// LoginLimiter is applied to the login route only; nil disables it.
	LoginLimiter func(http.Handler) http.Handler
}

// Register registers all account-related HTTP handlers with the given mux.
// Registration and login are public; the current-user routes require a token.
func Register(mux *http.ServeMux, deps RouteDeps) {
	var login http.Handler = LoginHandler{Svc: deps.Svc, Tokens: deps.Tokens}
	if deps.LoginLimiter != nil {
		login = deps.LoginLimiter(login)
	}

	mux.Handle("POST   /api/users", RegisterHandler{Svc: deps.Svc, Tokens: deps.Tokens})
	mux.Handle("POST   /api/users/login", login)

	mux.Handle("GET    /api/user", deps.Tokens.Required(GetHandler{Svc: deps.Svc, Tokens: deps.Tokens}))
	mux.Handle("PUT    /api/user", deps.Tokens.Required(UpdateHandler{Svc: deps.Svc, Tokens: deps.Tokens}))
}
