package profile

import (
	"errors"
	"net/http"

	"conduit/internal/handler/http/auth"
	"conduit/internal/handler/http/respond"
	profUC "conduit/internal/usecase/profile"
)

type FollowHandler struct{ Svc *profUC.Service }

// ServeHTTP フォロー
// @Summary      フォロー
// @Description  指定されたユーザーをフォローします。既にフォロー済みの場合も成功します
// @Tags         profiles
// @Security     BearerAuth
// @Produce      json
// @Param        username path string true "ユーザー名"
// @Success      200 {object} Response "フォロー後のプロフィール"
// @Failure      401 {object} respond.ErrorEnvelope "Authentication required"
// @Failure      404 {object} respond.ErrorEnvelope "Profile not found"
// @Failure      422 {object} respond.ErrorEnvelope "Cannot follow yourself"
// @Router       /api/profiles/{username}/follow [post]
func (h FollowHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p, err := h.Svc.Follow(r.Context(), auth.ViewerID(r.Context()), r.PathValue("username"))
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, newResponse(p))
}

type UnfollowHandler struct{ Svc *profUC.Service }

// ServeHTTP フォロー解除
// @Summary      フォロー解除
// @Description  指定されたユーザーのフォローを解除します。フォローしていない場合も成功します
// @Tags         profiles
// @Security     BearerAuth
// @Produce      json
// @Param        username path string true "ユーザー名"
// @Success      200 {object} Response "解除後のプロフィール"
// @Failure      401 {object} respond.ErrorEnvelope "Authentication required"
// @Failure      404 {object} respond.ErrorEnvelope "Profile not found"
// @Router       /api/profiles/{username}/follow [delete]
func (h UnfollowHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p, err := h.Svc.Unfollow(r.Context(), auth.ViewerID(r.Context()), r.PathValue("username"))
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, newResponse(p))
}

func statusFor(err error) int {
	if errors.Is(err, profUC.ErrProfileNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
