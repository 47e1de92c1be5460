package user

import (
	"encoding/json"
	"net/http"

	"conduit/internal/handler/http/auth"
	"conduit/internal/handler/http/respond"
	userUC "conduit/internal/usecase/user"
)

type RegisterHandler struct {
	Svc    *userUC.Service
	Tokens *auth.TokenManager
}

// ServeHTTP アカウント登録
// @Summary      アカウント登録
// @Description  新しいアカウントを作成し、JWTトークンを発行します
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user body object true "ユーザー情報"
// @Success      201 {object} Response "作成されたアカウント"
// @Failure      400 {string} string "Bad request - malformed JSON"
// @Failure      422 {object} respond.ErrorEnvelope "Validation failed"
// @Router       /api/users [post]
func (h RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		User struct {
			Username string `json:"username"`
			Email    string `json:"email"`
			Password string `json:"password"`
		} `json:"user"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	account, err := h.Svc.Register(r.Context(), userUC.RegisterInput{
		Username: req.User.Username,
		Email:    req.User.Email,
		Password: req.User.Password,
	})
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	token, err := h.Tokens.Issue(account.ID, account.Username)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusCreated, newResponse(account, token))
}
