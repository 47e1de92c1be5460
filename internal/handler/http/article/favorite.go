package article

import (
	"net/http"

	"conduit/internal/handler/http/auth"
	"conduit/internal/handler/http/respond"
	artUC "conduit/internal/usecase/article"
)

type FavoriteHandler struct{ Svc *artUC.Service }

// ServeHTTP お気に入り登録
// @Summary      お気に入り登録
// @Description  記事をお気に入りに登録します。既に登録済みの場合も成功します
// @Tags         favorites
// @Security     BearerAuth
// @Produce      json
// @Param        slug path string true "記事スラッグ"
// @Success      200 {object} Response "登録後の記事"
// @Failure      401 {object} respond.ErrorEnvelope "Authentication required"
// @Failure      404 {object} respond.ErrorEnvelope "Article not found"
// @Router       /api/articles/{slug}/favorite [post]
func (h FavoriteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	meta, err := h.Svc.Favorite(r.Context(), auth.ViewerID(r.Context()), r.PathValue("slug"))
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, Response{Article: fromMeta(meta)})
}

type UnfavoriteHandler struct{ Svc *artUC.Service }

// ServeHTTP お気に入り解除
// @Summary      お気に入り解除
// @Description  記事のお気に入りを解除します。登録していない場合も成功します
// @Tags         favorites
// @Security     BearerAuth
// @Produce      json
// @Param        slug path string true "記事スラッグ"
// @Success      200 {object} Response "解除後の記事"
// @Failure      401 {object} respond.ErrorEnvelope "Authentication required"
// @Failure      404 {object} respond.ErrorEnvelope "Article not found"
// @Router       /api/articles/{slug}/favorite [delete]
func (h UnfavoriteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	meta, err := h.Svc.Unfavorite(r.Context(), auth.ViewerID(r.Context()), r.PathValue("slug"))
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, Response{Article: fromMeta(meta)})
}
