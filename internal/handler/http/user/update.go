package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"conduit/internal/handler/http/auth"
	"conduit/internal/handler/http/respond"
	userUC "conduit/internal/usecase/user"
)

type UpdateHandler struct {
	Svc    *userUC.Service
	Tokens *auth.TokenManager
}

// ServeHTTP アカウント更新
// @Summary      アカウント更新
// @Description  認証済みアカウントの情報を部分更新します。省略されたフィールドは変更されません
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        user body object true "更新内容"
// @Success      200 {object} Response "更新後のアカウント"
// @Failure      400 {string} string "Bad request - malformed JSON"
// @Failure      401 {object} respond.ErrorEnvelope "Authentication required"
// @Failure      422 {object} respond.ErrorEnvelope "Validation failed"
// @Router       /api/user [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFromContext(r.Context())

	var req struct {
		User struct {
			Email    *string `json:"email"`
			Username *string `json:"username"`
			Password *string `json:"password"`
			Bio      *string `json:"bio"`
			Image    *string `json:"image"`
		} `json:"user"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	account, err := h.Svc.Update(r.Context(), userUC.UpdateInput{
		ID:       identity.UserID,
		Email:    req.User.Email,
		Username: req.User.Username,
		Password: req.User.Password,
		Bio:      req.User.Bio,
		Image:    req.User.Image,
	})
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, userUC.ErrUserNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	// The username may have changed, so the token is reissued with the
	// current claims.
	token, err := h.Tokens.Issue(account.ID, account.Username)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, newResponse(account, token))
}
