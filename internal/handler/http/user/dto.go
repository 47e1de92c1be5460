// Package user provides HTTP handlers for account endpoints.
// It includes registration, login and the current-user read/update handlers.
package user

import (
	"conduit/internal/domain/entity"
)

// DTO represents the JSON structure for the authenticated account.
// The token travels inside the user object.
type DTO struct {
	Email    string `json:"email" example:"alice@example.com"`
	Token    string `json:"token" example:"eyJhbGciOiJIUzI1NiJ9..."`
	Username string `json:"username" example:"alice"`
	Bio      string `json:"bio" example:"I like turtles"`
	Image    string `json:"image" example:"https://example.com/alice.png"`
}

// Response wraps the account DTO in the "user" envelope.
type Response struct {
	User DTO `json:"user"`
}

func newResponse(account *entity.User, token string) Response {
	return Response{User: DTO{
		Email:    account.Email,
		Token:    token,
		Username: account.Username,
		Bio:      account.Bio,
		Image:    account.Image,
	}}
}
