package article

import (
	"log/slog"
	"net/http"

	"conduit/internal/common/pagination"
	"conduit/internal/handler/http/auth"
	"conduit/internal/handler/http/respond"
	"conduit/internal/observability/logging"
	artUC "conduit/internal/usecase/article"
)

type FeedHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP フィード取得
// @Summary      フィード取得
// @Description  フォロー中のユーザーの記事を新しい順に取得します
// @Tags         articles
// @Security     BearerAuth
// @Produce      json
// @Param        limit   query  int  false  "1ページあたりの件数" default(20) minimum(1) maximum(100)
// @Param        offset  query  int  false  "スキップする件数" default(0) minimum(0)
// @Success      200 {object} ListResponse "フィード記事一覧"
// @Failure      400 {object} respond.ErrorEnvelope "Invalid query parameters"
// @Failure      401 {object} respond.ErrorEnvelope "Authentication required"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /api/articles/feed [get]
func (h FeedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("invalid pagination parameters", "error", err.Error())
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.Feed(ctx, auth.ViewerID(ctx), params.Limit, params.Offset)
	if err != nil {
		logger.Error("failed to load feed", "error", err.Error())
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, newListResponse(result.Articles, result.Total))
}
