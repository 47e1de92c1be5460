package article

import (
	"encoding/json"
	"net/http"

	"conduit/internal/handler/http/auth"
	"conduit/internal/handler/http/respond"
	artUC "conduit/internal/usecase/article"
)

type UpdateHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事更新
// @Summary      記事更新
// @Description  記事を部分更新します。タイトル変更時はスラッグも再生成されます。著者本人のみ実行できます
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        slug path string true "記事スラッグ"
// @Param        article body object true "更新内容"
// @Success      200 {object} Response "更新後の記事"
// @Failure      400 {string} string "Bad request - malformed JSON"
// @Failure      401 {object} respond.ErrorEnvelope "Authentication required"
// @Failure      403 {object} respond.ErrorEnvelope "Not the article author"
// @Failure      404 {object} respond.ErrorEnvelope "Article not found"
// @Failure      422 {object} respond.ErrorEnvelope "Validation failed"
// @Router       /api/articles/{slug} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Article struct {
			Title       *string `json:"title"`
			Description *string `json:"description"`
			Body        *string `json:"body"`
		} `json:"article"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	meta, err := h.Svc.Update(r.Context(), auth.ViewerID(r.Context()), r.PathValue("slug"), artUC.UpdateInput{
		Title:       req.Article.Title,
		Description: req.Article.Description,
		Body:        req.Article.Body,
	})
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	respond.JSON(w, http.StatusOK, Response{Article: fromMeta(meta)})
}
