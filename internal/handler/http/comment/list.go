package comment

import (
	"errors"
	"net/http"

	"conduit/internal/handler/http/auth"
	"conduit/internal/handler/http/respond"
	artUC "conduit/internal/usecase/article"
	comUC "conduit/internal/usecase/comment"
)

type ListHandler struct{ Svc *comUC.Service }

// ServeHTTP コメント一覧取得
// @Summary      コメント一覧取得
// @Description  記事のコメントを新しい順に取得します
// @Tags         comments
// @Produce      json
// @Param        slug path string true "記事スラッグ"
// @Success      200 {object} ListResponse "コメント一覧"
// @Failure      404 {object} respond.ErrorEnvelope "Article not found"
// @Router       /api/articles/{slug}/comments [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	comments, err := h.Svc.List(r.Context(), r.PathValue("slug"), auth.ViewerID(r.Context()))
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, newListResponse(comments))
}

// statusFor maps comment use case errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, artUC.ErrArticleNotFound), errors.Is(err, comUC.ErrCommentNotFound):
		return http.StatusNotFound
	case errors.Is(err, comUC.ErrNotCommentAuthor):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
