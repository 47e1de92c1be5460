// Package comment provides HTTP handlers for article comment endpoints.
package comment

import (
	"time"

	"conduit/internal/repository"
)

// AuthorDTO represents the JSON structure for a comment author's profile.
type AuthorDTO struct {
	Username  string `json:"username" example:"bob"`
	Bio       string `json:"bio" example:""`
	Image     string `json:"image" example:""`
	Following bool   `json:"following" example:"false"`
}

// DTO represents the JSON structure for comment data transfer.
type DTO struct {
	ID        int64     `json:"id" example:"1"`
	CreatedAt time.Time `json:"createdAt" example:"2025-10-26T10:00:00Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2025-10-26T10:00:00Z"`
	Body      string    `json:"body" example:"Great article!"`
	Author    AuthorDTO `json:"author"`
}

// Response wraps a single comment in the "comment" envelope.
type Response struct {
	Comment DTO `json:"comment"`
}

// ListResponse wraps an article's comments in the "comments" envelope.
type ListResponse struct {
	Comments []DTO `json:"comments"`
}

func fromAuthored(c *repository.CommentWithAuthor) DTO {
	return DTO{
		ID:        c.Comment.ID,
		CreatedAt: c.Comment.CreatedAt,
		UpdatedAt: c.Comment.UpdatedAt,
		Body:      c.Comment.Body,
		Author: AuthorDTO{
			Username:  c.Author.Username,
			Bio:       c.Author.Bio,
			Image:     c.Author.Image,
			Following: c.AuthorFollowed,
		},
	}
}

func newListResponse(comments []repository.CommentWithAuthor) ListResponse {
	dtos := make([]DTO, 0, len(comments))
	for i := range comments {
		dtos = append(dtos, fromAuthored(&comments[i]))
	}
	return ListResponse{Comments: dtos}
}
