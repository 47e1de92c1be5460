package article

import (
	"errors"
	"net/http"

	"conduit/internal/handler/http/auth"
	"conduit/internal/handler/http/respond"
	artUC "conduit/internal/usecase/article"
)

type GetHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事詳細取得
// @Summary      記事詳細取得
// @Description  指定されたスラッグの記事を取得します
// @Tags         articles
// @Produce      json
// @Param        slug path string true "記事スラッグ"
// @Success      200 {object} Response "記事詳細"
// @Failure      404 {object} respond.ErrorEnvelope "Article not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /api/articles/{slug} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	meta, err := h.Svc.Get(r.Context(), r.PathValue("slug"), auth.ViewerID(r.Context()))
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, Response{Article: fromMeta(meta)})
}

// statusFor maps article use case errors to HTTP status codes. Validation
// errors are handled inside respond.SafeError and need no mapping here.
func statusFor(err error) int {
	switch {
	case errors.Is(err, artUC.ErrArticleNotFound):
		return http.StatusNotFound
	case errors.Is(err, artUC.ErrNotArticleAuthor):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
