package article

import (
	"encoding/json"
	"net/http"

	"conduit/internal/handler/http/auth"
	"conduit/internal/handler/http/respond"
	artUC "conduit/internal/usecase/article"
)

type CreateHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事作成
// @Summary      記事作成
// @Description  新しい記事を作成します。スラッグはタイトルから自動生成されます
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        article body object true "記事情報"
// @Success      201 {object} Response "作成された記事"
// @Failure      400 {string} string "Bad request - malformed JSON"
// @Failure      401 {object} respond.ErrorEnvelope "Authentication required"
// @Failure      422 {object} respond.ErrorEnvelope "Validation failed"
// @Router       /api/articles [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Article struct {
			Title       string   `json:"title"`
			Description string   `json:"description"`
			Body        string   `json:"body"`
			TagList     []string `json:"tagList"`
		} `json:"article"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	meta, err := h.Svc.Create(r.Context(), auth.ViewerID(r.Context()), artUC.CreateInput{
		Title:       req.Article.Title,
		Description: req.Article.Description,
		Body:        req.Article.Body,
		Tags:        req.Article.TagList,
	})
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	respond.JSON(w, http.StatusCreated, Response{Article: fromMeta(meta)})
}
