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

type ListHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP 記事一覧取得
// @Summary      記事一覧取得
// @Description  記事を新しい順に取得します。タグ・著者・お気に入りユーザーで絞り込みできます
// @Tags         articles
// @Produce      json
// @Param        tag        query  string  false  "タグ名で絞り込み"
// @Param        author     query  string  false  "著者のユーザー名で絞り込み"
// @Param        favorited  query  string  false  "お気に入り登録したユーザー名で絞り込み"
// @Param        limit      query  int     false  "1ページあたりの件数" default(20) minimum(1) maximum(100)
// @Param        offset     query  int     false  "スキップする件数" default(0) minimum(0)
// @Success      200 {object} ListResponse "記事一覧"
// @Failure      400 {object} respond.ErrorEnvelope "Invalid query parameters"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /api/articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("invalid pagination parameters", "error", err.Error())
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	q := r.URL.Query()
	result, err := h.Svc.List(ctx, artUC.ListInput{
		Tag:         q.Get("tag"),
		Author:      q.Get("author"),
		FavoritedBy: q.Get("favorited"),
		Limit:       params.Limit,
		Offset:      params.Offset,
	}, auth.ViewerID(ctx))
	if err != nil {
		logger.Error("failed to list articles", "error", err.Error())
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, newListResponse(result.Articles, result.Total))
}
