// Package article provides HTTP handlers for article endpoints.
// It includes the global listing, the personal feed, CRUD on single
// articles and the favorite toggle.
package article

import (
	"time"

	"conduit/internal/repository"
)

// AuthorDTO represents the JSON structure for an article's author profile.
type AuthorDTO struct {
	Username  string `json:"username" example:"alice"`
	Bio       string `json:"bio" example:"I like turtles"`
	Image     string `json:"image" example:"https://example.com/alice.png"`
	Following bool   `json:"following" example:"false"`
}

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	Slug           string    `json:"slug" example:"how-to-train-your-dragon"`
	Title          string    `json:"title" example:"How to train your dragon"`
	Description    string    `json:"description" example:"Ever wonder how?"`
	Body           string    `json:"body" example:"You have to believe"`
	TagList        []string  `json:"tagList" example:"dragons,training"`
	CreatedAt      time.Time `json:"createdAt" example:"2025-10-26T10:00:00Z"`
	UpdatedAt      time.Time `json:"updatedAt" example:"2025-10-26T12:00:00Z"`
	Favorited      bool      `json:"favorited" example:"false"`
	FavoritesCount int64     `json:"favoritesCount" example:"3"`
	Author         AuthorDTO `json:"author"`
}

// Response wraps a single article in the "article" envelope.
type Response struct {
	Article DTO `json:"article"`
}

// ListResponse wraps a page of articles together with the total match count.
type ListResponse struct {
	Articles      []DTO `json:"articles"`
	ArticlesCount int64 `json:"articlesCount"`
}

func fromMeta(m *repository.ArticleWithMeta) DTO {
	tags := m.Tags
	if tags == nil {
		tags = []string{}
	}
	return DTO{
		Slug:           m.Article.Slug,
		Title:          m.Article.Title,
		Description:    m.Article.Description,
		Body:           m.Article.Body,
		TagList:        tags,
		CreatedAt:      m.Article.CreatedAt,
		UpdatedAt:      m.Article.UpdatedAt,
		Favorited:      m.Favorited,
		FavoritesCount: m.FavoritesCount,
		Author: AuthorDTO{
			Username:  m.Author.Username,
			Bio:       m.Author.Bio,
			Image:     m.Author.Image,
			Following: m.AuthorFollowed,
		},
	}
}

func newListResponse(metas []repository.ArticleWithMeta, total int64) ListResponse {
	dtos := make([]DTO, 0, len(metas))
	for i := range metas {
		dtos = append(dtos, fromMeta(&metas[i]))
	}
	return ListResponse{Articles: dtos, ArticlesCount: total}
}
