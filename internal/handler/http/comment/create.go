package comment

import (
	"encoding/json"
	"net/http"

	"conduit/internal/handler/http/auth"
	"conduit/internal/handler/http/respond"
	comUC "conduit/internal/usecase/comment"
)

type CreateHandler struct{ Svc *comUC.Service }

// ServeHTTP コメント投稿
// @Summary      コメント投稿
// @Description  記事にコメントを投稿します
// @Tags         comments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        slug path string true "記事スラッグ"
// @Param        comment body object true "コメント本文"
// @Success      201 {object} Response "投稿されたコメント"
// @Failure      400 {string} string "Bad request - malformed JSON"
// @Failure      401 {object} respond.ErrorEnvelope "Authentication required"
// @Failure      404 {object} respond.ErrorEnvelope "Article not found"
// @Failure      422 {object} respond.ErrorEnvelope "Validation failed"
// @Router       /api/articles/{slug}/comments [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Comment struct {
			Body string `json:"body"`
		} `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	created, err := h.Svc.Create(r.Context(), auth.ViewerID(r.Context()), r.PathValue("slug"), req.Comment.Body)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	respond.JSON(w, http.StatusCreated, Response{Comment: fromAuthored(created)})
}
