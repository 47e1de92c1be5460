package comment

import (
	"net/http"

	"conduit/internal/handler/http/auth"
	comUC "conduit/internal/usecase/comment"
)

// Register registers all comment-related HTTP handlers with the given mux.
// Reading comments is public; posting and deleting require a token.
func Register(mux *http.ServeMux, svc *comUC.Service, tokens *auth.TokenManager) {
	mux.Handle("GET    /api/articles/{slug}/comments", tokens.Optional(ListHandler{Svc: svc}))
	mux.Handle("POST   /api/articles/{slug}/comments", tokens.Required(CreateHandler{Svc: svc}))
	mux.Handle("DELETE /api/articles/{slug}/comments/{id}", tokens.Required(DeleteHandler{Svc: svc}))
}
