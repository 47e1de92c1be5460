package profile_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"conduit/internal/domain/entity"
	"conduit/internal/handler/http/auth"
	"conduit/internal/handler/http/profile"
	"conduit/internal/handler/http/respond"
	profUC "conduit/internal/usecase/profile"
)

// ──────────────────────────────────────────────
// テスト用スタブ
// ──────────────────────────────────────────────

type stubUserRepo struct {
	users   map[string]*entity.User
	follows map[[2]int64]bool
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[string]*entity.User{}, follows: map[[2]int64]bool{}}
}

func (s *stubUserRepo) add(u entity.User) *entity.User {
	s.users[u.Username] = &u
	return s.users[u.Username]
}

func (s *stubUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	return s.users[username], nil
}

func (s *stubUserRepo) Follow(_ context.Context, followerID, followedID int64) error {
	s.follows[[2]int64{followerID, followedID}] = true
	return nil
}

func (s *stubUserRepo) Unfollow(_ context.Context, followerID, followedID int64) error {
	delete(s.follows, [2]int64{followerID, followedID})
	return nil
}

func (s *stubUserRepo) IsFollowing(_ context.Context, followerID, followedID int64) (bool, error) {
	return s.follows[[2]int64{followerID, followedID}], nil
}

// 以下は未使用だが、インターフェース満たすために実装
func (s *stubUserRepo) Create(_ context.Context, _ *entity.User) error { return nil }
func (s *stubUserRepo) GetByID(_ context.Context, _ int64) (*entity.User, error) {
	return nil, nil
}
func (s *stubUserRepo) GetByEmail(_ context.Context, _ string) (*entity.User, error) {
	return nil, nil
}
func (s *stubUserRepo) Update(_ context.Context, _ *entity.User) error { return nil }
func (s *stubUserRepo) CountUsers(_ context.Context) (int64, error)    { return 0, nil }

func profileRequest(method, username string, viewer *auth.Identity) *http.Request {
	req := httptest.NewRequest(method, "/api/profiles/"+username, nil)
	req.SetPathValue("username", username)
	if viewer != nil {
		req = req.WithContext(auth.WithIdentity(req.Context(), viewer))
	}
	return req
}

func decodeProfile(t *testing.T, rec *httptest.ResponseRecorder) profile.Response {
	t.Helper()
	var resp profile.Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

// ──────────────────────────────────────────────
// テストケース
// ──────────────────────────────────────────────

func TestGetHandler_Anonymous(t *testing.T) {
	repo := newStubUserRepo()
	repo.add(entity.User{ID: 1, Username: "alice", Bio: "I like turtles"})
	h := profile.GetHandler{Svc: &profUC.Service{Repo: repo}}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, profileRequest(http.MethodGet, "alice", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeProfile(t, rec)
	if resp.Profile.Username != "alice" || resp.Profile.Bio != "I like turtles" {
		t.Errorf("unexpected profile payload: %+v", resp.Profile)
	}
	if resp.Profile.Following {
		t.Error("anonymous viewer must never see following=true")
	}
}

func TestGetHandler_FollowedByViewer(t *testing.T) {
	repo := newStubUserRepo()
	repo.add(entity.User{ID: 1, Username: "alice"})
	repo.add(entity.User{ID: 2, Username: "bob"})
	repo.follows[[2]int64{2, 1}] = true
	h := profile.GetHandler{Svc: &profUC.Service{Repo: repo}}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, profileRequest(http.MethodGet, "alice", &auth.Identity{UserID: 2, Username: "bob"}))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resp := decodeProfile(t, rec); !resp.Profile.Following {
		t.Error("expected following=true for a followed profile")
	}
}

func TestGetHandler_NotFound(t *testing.T) {
	h := profile.GetHandler{Svc: &profUC.Service{Repo: newStubUserRepo()}}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, profileRequest(http.MethodGet, "ghost", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestFollowHandler(t *testing.T) {
	repo := newStubUserRepo()
	repo.add(entity.User{ID: 1, Username: "alice"})
	repo.add(entity.User{ID: 2, Username: "bob"})
	h := profile.FollowHandler{Svc: &profUC.Service{Repo: repo}}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, profileRequest(http.MethodPost, "alice", &auth.Identity{UserID: 2, Username: "bob"}))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if resp := decodeProfile(t, rec); !resp.Profile.Following {
		t.Error("expected following=true after follow")
	}
	if !repo.follows[[2]int64{2, 1}] {
		t.Error("expected follow relation persisted")
	}
}

func TestFollowHandler_Self(t *testing.T) {
	repo := newStubUserRepo()
	repo.add(entity.User{ID: 1, Username: "alice"})
	h := profile.FollowHandler{Svc: &profUC.Service{Repo: repo}}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, profileRequest(http.MethodPost, "alice", &auth.Identity{UserID: 1, Username: "alice"}))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	var envelope respond.ErrorEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if len(envelope.Errors["username"]) == 0 {
		t.Errorf("expected error keyed by username, got %v", envelope.Errors)
	}
}

func TestUnfollowHandler_Idempotent(t *testing.T) {
	repo := newStubUserRepo()
	repo.add(entity.User{ID: 1, Username: "alice"})
	repo.add(entity.User{ID: 2, Username: "bob"})
	h := profile.UnfollowHandler{Svc: &profUC.Service{Repo: repo}}

	// Unfollow without a prior follow still succeeds
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, profileRequest(http.MethodDelete, "alice", &auth.Identity{UserID: 2, Username: "bob"}))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resp := decodeProfile(t, rec); resp.Profile.Following {
		t.Error("expected following=false after unfollow")
	}
}
