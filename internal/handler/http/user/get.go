package user

import (
	"errors"
	"net/http"

	"conduit/internal/handler/http/auth"
	"conduit/internal/handler/http/respond"
	userUC "conduit/internal/usecase/user"
)

type GetHandler struct {
	Svc    *userUC.Service
	Tokens *auth.TokenManager
}

// ServeHTTP 現在のユーザー取得
// @Summary      現在のユーザー取得
// @Description  認証済みアカウントの情報を取得します
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} Response "アカウント情報"
// @Failure      401 {object} respond.ErrorEnvelope "Authentication required"
// @Router       /api/user [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFromContext(r.Context())

	account, err := h.Svc.Get(r.Context(), identity.UserID)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, userUC.ErrUserNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	// Reissue a token so clients can refresh their session on this call.
	token, err := h.Tokens.Issue(account.ID, account.Username)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, newResponse(account, token))
}
