package comment

import (
	"net/http"

	"conduit/internal/handler/http/auth"
	"conduit/internal/handler/http/pathutil"
	"conduit/internal/handler/http/respond"
	comUC "conduit/internal/usecase/comment"
)

type DeleteHandler struct{ Svc *comUC.Service }

// ServeHTTP コメント削除
// @Summary      コメント削除
// @Description  コメントを削除します。投稿者本人のみ実行できます
// @Tags         comments
// @Security     BearerAuth
// @Param        slug path string true "記事スラッグ"
// @Param        id   path int    true "コメントID"
// @Success      204 "No Content"
// @Failure      400 {object} respond.ErrorEnvelope "Invalid comment ID"
// @Failure      401 {object} respond.ErrorEnvelope "Authentication required"
// @Failure      403 {object} respond.ErrorEnvelope "Not the comment author"
// @Failure      404 {object} respond.ErrorEnvelope "Comment not found"
// @Router       /api/articles/{slug}/comments/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), auth.ViewerID(r.Context()), r.PathValue("slug"), id); err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
