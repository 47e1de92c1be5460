package article

import (
	"net/http"

	"conduit/internal/handler/http/auth"
	"conduit/internal/handler/http/respond"
	artUC "conduit/internal/usecase/article"
)

type DeleteHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事削除
// @Summary      記事削除
// @Description  記事を削除します。コメントとお気に入りも一緒に削除されます。著者本人のみ実行できます
// @Tags         articles
// @Security     BearerAuth
// @Param        slug path string true "記事スラッグ"
// @Success      204 "No Content"
// @Failure      401 {object} respond.ErrorEnvelope "Authentication required"
// @Failure      403 {object} respond.ErrorEnvelope "Not the article author"
// @Failure      404 {object} respond.ErrorEnvelope "Article not found"
// @Router       /api/articles/{slug} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), auth.ViewerID(r.Context()), r.PathValue("slug")); err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
