package article

import (
	"log/slog"
	"net/http"

	"conduit/internal/common/pagination"
	"conduit/internal/handler/http/auth"
	artUC "conduit/internal/usecase/article"
)

// Register registers all article-related HTTP handlers with the given mux.
// Listing and reads are public with optional authentication for the
// viewer-relative flags; everything that writes requires a token.
//
// The /api/articles/feed pattern is more specific than /api/articles/{slug},
// so the mux routes "feed" to the feed handler and never to the slug lookup.
func Register(mux *http.ServeMux, svc *artUC.Service, tokens *auth.TokenManager, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET    /api/articles", tokens.Optional(ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	}))
	mux.Handle("GET    /api/articles/feed", tokens.Required(FeedHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	}))
	mux.Handle("GET    /api/articles/{slug}", tokens.Optional(GetHandler{Svc: svc}))

	mux.Handle("POST   /api/articles", tokens.Required(CreateHandler{Svc: svc}))
	mux.Handle("PUT    /api/articles/{slug}", tokens.Required(UpdateHandler{Svc: svc}))
	mux.Handle("DELETE /api/articles/{slug}", tokens.Required(DeleteHandler{Svc: svc}))

	mux.Handle("POST   /api/articles/{slug}/favorite", tokens.Required(FavoriteHandler{Svc: svc}))
	mux.Handle("DELETE /api/articles/{slug}/favorite", tokens.Required(UnfavoriteHandler{Svc: svc}))
}
