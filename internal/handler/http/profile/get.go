package profile

import (
	"errors"
	"net/http"

	"conduit/internal/handler/http/auth"
	"conduit/internal/handler/http/respond"
	profUC "conduit/internal/usecase/profile"
)

type GetHandler struct{ Svc *profUC.Service }

// ServeHTTP プロフィール取得
// @Summary      プロフィール取得
// @Description  指定されたユーザー名のプロフィールを取得します。認証済みの場合はフォロー状態も返します
// @Tags         profiles
// @Produce      json
// @Param        username path string true "ユーザー名"
// @Success      200 {object} Response "プロフィール"
// @Failure      404 {object} respond.ErrorEnvelope "Profile not found"
// @Router       /api/profiles/{username} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	p, err := h.Svc.Get(r.Context(), username, auth.ViewerID(r.Context()))
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, profUC.ErrProfileNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, newResponse(p))
}
