package db

import (
	"database/sql"
	"log"
)

// Migrate creates the schema if it does not exist. Every statement is
// idempotent so the migration can run on each startup.
func Migrate(database *sql.DB) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			email TEXT NOT NULL,
			username TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			bio TEXT NOT NULL DEFAULT '',
			image TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			CONSTRAINT users_email_key UNIQUE (email),
			CONSTRAINT users_username_key UNIQUE (username)
		)`,
		`CREATE TABLE IF NOT EXISTS articles (
			id BIGSERIAL PRIMARY KEY,
			author_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			slug TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			body TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			CONSTRAINT articles_slug_key UNIQUE (slug)
		)`,
		`CREATE TABLE IF NOT EXISTS comments (
			id BIGSERIAL PRIMARY KEY,
			article_id BIGINT NOT NULL REFERENCES articles(id) ON DELETE CASCADE,
			author_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			body TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS tags (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			CONSTRAINT tags_name_key UNIQUE (name)
		)`,
		`CREATE TABLE IF NOT EXISTS article_tags (
			article_id BIGINT NOT NULL REFERENCES articles(id) ON DELETE CASCADE,
			tag_id BIGINT NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
			PRIMARY KEY (article_id, tag_id)
		)`,
		`CREATE TABLE IF NOT EXISTS favorites (
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			article_id BIGINT NOT NULL REFERENCES articles(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (user_id, article_id)
		)`,
		`CREATE TABLE IF NOT EXISTS follows (
			follower_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			followed_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (follower_id, followed_id),
			CONSTRAINT follows_no_self CHECK (follower_id <> followed_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_author_id ON articles(author_id)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_comments_article_id ON comments(article_id)`,
		`CREATE INDEX IF NOT EXISTS idx_article_tags_tag_id ON article_tags(tag_id)`,
		`CREATE INDEX IF NOT EXISTS idx_favorites_article_id ON favorites(article_id)`,
		`CREATE INDEX IF NOT EXISTS idx_follows_followed_id ON follows(followed_id)`,
	}
	for _, stmt := range stmts {
		if _, err := database.Exec(stmt); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
	}
}
