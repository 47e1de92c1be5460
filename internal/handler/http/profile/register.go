package profile

import (
	"net/http"

	"conduit/internal/handler/http/auth"
	profUC "conduit/internal/usecase/profile"
)

// Register registers all profile-related HTTP handlers with the given mux.
// Profile reads are public; follow and unfollow require a token.
func Register(mux *http.ServeMux, svc *profUC.Service, tokens *auth.TokenManager) {
	mux.Handle("GET    /api/profiles/{username}", tokens.Optional(GetHandler{Svc: svc}))
	mux.Handle("POST   /api/profiles/{username}/follow", tokens.Required(FollowHandler{Svc: svc}))
	mux.Handle("DELETE /api/profiles/{username}/follow", tokens.Required(UnfollowHandler{Svc: svc}))
}
