package article_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"conduit/internal/common/pagination"
	"conduit/internal/domain/entity"
	"conduit/internal/handler/http/auth"
	"conduit/internal/repository"
	artUC "conduit/internal/usecase/article"
)

// ──────────────────────────────────────────────
// テスト用スタブ
// ──────────────────────────────────────────────

type storedArticle struct {
	article entity.Article
	tags    []string
}

type stubRepo struct {
	articles  map[int64]*storedArticle
	favorites map[[2]int64]bool // userID, articleID
	follows   map[[2]int64]bool // followerID, followedID
	users     map[int64]*entity.User
	nextID    int64
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		articles:  map[int64]*storedArticle{},
		favorites: map[[2]int64]bool{},
		follows:   map[[2]int64]bool{},
		users:     map[int64]*entity.User{},
		nextID:    1,
	}
}

func (s *stubRepo) addUser(u entity.User) *entity.User {
	s.users[u.ID] = &u
	return s.users[u.ID]
}

func (s *stubRepo) addArticle(a entity.Article, tags ...string) *entity.Article {
	if a.ID == 0 {
		a.ID = s.nextID
	}
	if a.ID >= s.nextID {
		s.nextID = a.ID + 1
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		a.UpdatedAt = a.CreatedAt
	}
	s.articles[a.ID] = &storedArticle{article: a, tags: tags}
	return &s.articles[a.ID].article
}

func (s *stubRepo) meta(stored *storedArticle, viewerID int64) repository.ArticleWithMeta {
	art := stored.article
	tags := append([]string(nil), stored.tags...)
	if tags == nil {
		tags = []string{}
	}
	var count int64
	for key := range s.favorites {
		if key[1] == art.ID {
			count++
		}
	}
	return repository.ArticleWithMeta{
		Article:        &art,
		Author:         s.users[art.AuthorID],
		Tags:           tags,
		Favorited:      viewerID != 0 && s.favorites[[2]int64{viewerID, art.ID}],
		FavoritesCount: count,
		AuthorFollowed: viewerID != 0 && s.follows[[2]int64{viewerID, art.AuthorID}],
	}
}

func (s *stubRepo) sorted() []*storedArticle {
	out := make([]*storedArticle, 0, len(s.articles))
	for _, stored := range s.articles {
		out = append(out, stored)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].article.ID > out[j].article.ID
	})
	return out
}

func (s *stubRepo) matches(stored *storedArticle, f repository.ArticleListFilters) bool {
	if f.Tag != "" {
		found := false
		for _, tag := range stored.tags {
			if tag == f.Tag {
				found = true
			}
		}
		if !found {
			return false
		}
	}
	if f.Author != "" {
		author := s.users[stored.article.AuthorID]
		if author == nil || author.Username != f.Author {
			return false
		}
	}
	if f.FavoritedBy != "" {
		var favUser *entity.User
		for _, u := range s.users {
			if u.Username == f.FavoritedBy {
				favUser = u
			}
		}
		if favUser == nil || !s.favorites[[2]int64{favUser.ID, stored.article.ID}] {
			return false
		}
	}
	return true
}

func (s *stubRepo) List(_ context.Context, f repository.ArticleListFilters, viewerID int64) ([]repository.ArticleWithMeta, error) {
	var out []repository.ArticleWithMeta
	skipped := 0
	for _, stored := range s.sorted() {
		if !s.matches(stored, f) {
			continue
		}
		if skipped < f.Offset {
			skipped++
			continue
		}
		if len(out) == f.Limit {
			break
		}
		out = append(out, s.meta(stored, viewerID))
	}
	return out, nil
}

func (s *stubRepo) Count(_ context.Context, f repository.ArticleListFilters) (int64, error) {
	var n int64
	for _, stored := range s.articles {
		if s.matches(stored, f) {
			n++
		}
	}
	return n, nil
}

func (s *stubRepo) Feed(_ context.Context, viewerID int64, limit, offset int) ([]repository.ArticleWithMeta, error) {
	var out []repository.ArticleWithMeta
	skipped := 0
	for _, stored := range s.sorted() {
		if !s.follows[[2]int64{viewerID, stored.article.AuthorID}] {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, s.meta(stored, viewerID))
	}
	return out, nil
}

func (s *stubRepo) CountFeed(_ context.Context, viewerID int64) (int64, error) {
	var n int64
	for _, stored := range s.articles {
		if s.follows[[2]int64{viewerID, stored.article.AuthorID}] {
			n++
		}
	}
	return n, nil
}

func (s *stubRepo) GetBySlug(_ context.Context, slug string, viewerID int64) (*repository.ArticleWithMeta, error) {
	for _, stored := range s.articles {
		if stored.article.Slug == slug {
			m := s.meta(stored, viewerID)
			return &m, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) Create(_ context.Context, a *entity.Article, tags []string) error {
	for _, stored := range s.articles {
		if stored.article.Slug == a.Slug {
			return repository.ErrDuplicateSlug
		}
	}
	created := s.addArticle(*a, tags...)
	*a = *created
	return nil
}

func (s *stubRepo) Update(_ context.Context, a *entity.Article) error {
	for id, stored := range s.articles {
		if id != a.ID && stored.article.Slug == a.Slug {
			return repository.ErrDuplicateSlug
		}
	}
	a.UpdatedAt = a.UpdatedAt.Add(time.Minute)
	s.articles[a.ID].article = *a
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id int64) error {
	delete(s.articles, id)
	return nil
}

func (s *stubRepo) Favorite(_ context.Context, userID, articleID int64) error {
	s.favorites[[2]int64{userID, articleID}] = true
	return nil
}

func (s *stubRepo) Unfavorite(_ context.Context, userID, articleID int64) error {
	delete(s.favorites, [2]int64{userID, articleID})
	return nil
}

func (s *stubRepo) CountArticles(_ context.Context) (int64, error) {
	return int64(len(s.articles)), nil
}

// stubUsers exposes the same user map through the user repository interface.
type stubUsers struct{ repo *stubRepo }

func (s stubUsers) GetByID(_ context.Context, id int64) (*entity.User, error) {
	return s.repo.users[id], nil
}

func (s stubUsers) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range s.repo.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

// 以下は未使用だが、インターフェース満たすために実装
func (s stubUsers) Create(_ context.Context, _ *entity.User) error { return nil }
func (s stubUsers) GetByEmail(_ context.Context, _ string) (*entity.User, error) {
	return nil, nil
}
func (s stubUsers) Update(_ context.Context, _ *entity.User) error   { return nil }
func (s stubUsers) Follow(_ context.Context, _, _ int64) error       { return nil }
func (s stubUsers) Unfollow(_ context.Context, _, _ int64) error     { return nil }
func (s stubUsers) IsFollowing(_ context.Context, _, _ int64) (bool, error) {
	return false, nil
}
func (s stubUsers) CountUsers(_ context.Context) (int64, error) { return 0, nil }

func newService(repo *stubRepo) *artUC.Service {
	return &artUC.Service{Repo: repo, Users: stubUsers{repo: repo}}
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func paginationCfg() pagination.Config {
	return pagination.Config{DefaultLimit: 20, MaxLimit: 100}
}

func viewer(id int64, username string) *auth.Identity {
	return &auth.Identity{UserID: id, Username: username}
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}
