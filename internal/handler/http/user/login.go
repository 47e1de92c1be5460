package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"conduit/internal/handler/http/auth"
	handlerhttp "conduit/internal/handler/http"
	"conduit/internal/handler/http/respond"
	userUC "conduit/internal/usecase/user"
)

type LoginHandler struct {
	Svc    *userUC.Service
	Tokens *auth.TokenManager
}

// ServeHTTP ログイン
// @Summary      ログイン
// @Description  メールアドレスとパスワードで認証し、JWTトークンを発行します
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user body object true "認証情報"
// @Success      200 {object} Response "認証されたアカウント"
// @Failure      400 {string} string "Bad request - malformed JSON"
// @Failure      401 {object} respond.ErrorEnvelope "Invalid credentials"
// @Failure      429 {string} string "Too many requests - rate limit exceeded"
// @Router       /api/users/login [post]
func (h LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		User struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		} `json:"user"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	account, err := h.Svc.Login(r.Context(), userUC.LoginInput{
		Email:    req.User.Email,
		Password: req.User.Password,
	})
	if err != nil {
		handlerhttp.RecordAuthAttempt(false)
		if errors.Is(err, userUC.ErrInvalidCredentials) {
			// Deliberately the same response for unknown email and wrong
			// password.
			respond.FieldError(w, http.StatusUnauthorized, "email or password", "is invalid")
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	token, err := h.Tokens.Issue(account.ID, account.Username)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	handlerhttp.RecordAuthAttempt(true)
	respond.JSON(w, http.StatusOK, newResponse(account, token))
}
