// Package profile provides HTTP handlers for public profile and follow endpoints.
package profile

import (
	profUC "conduit/internal/usecase/profile"
)

// DTO represents the JSON structure for a public profile.
type DTO struct {
	Username  string `json:"username" example:"alice"`
	Bio       string `json:"bio" example:"I like turtles"`
	Image     string `json:"image" example:"https://example.com/alice.png"`
	Following bool   `json:"following" example:"false"`
}

// Response wraps the profile DTO in the "profile" envelope.
type Response struct {
	Profile DTO `json:"profile"`
}

func newResponse(p *profUC.Profile) Response {
	return Response{Profile: DTO{
		Username:  p.Username,
		Bio:       p.Bio,
		Image:     p.Image,
		Following: p.Following,
	}}
}
