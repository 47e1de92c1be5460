package tag_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"conduit/internal/handler/http/tag"
	tagUC "conduit/internal/usecase/tag"
)

type stubTagRepo struct {
	tags []string
	err  error
}

func (s stubTagRepo) ListInUse(_ context.Context) ([]string, error) {
	return s.tags, s.err
}

func (s stubTagRepo) CountTags(_ context.Context) (int64, error) {
	return int64(len(s.tags)), nil
}

func TestListHandler(t *testing.T) {
	h := tag.ListHandler{Svc: &tagUC.Service{Repo: stubTagRepo{tags: []string{"dragons", "go", "training"}}}}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tags", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp tag.Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Tags) != 3 || resp.Tags[0] != "dragons" {
		t.Errorf("unexpected tags: %v", resp.Tags)
	}
}

func TestListHandler_Empty(t *testing.T) {
	h := tag.ListHandler{Svc: &tagUC.Service{Repo: stubTagRepo{}}}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tags", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	// "tags":[] であって "tags":null ではない
	if got := rec.Body.String(); !json.Valid([]byte(got)) || !containsEmptyArray(got) {
		t.Errorf("expected empty array in response, got %s", got)
	}
}

func containsEmptyArray(body string) bool {
	var resp struct {
		Tags []string `json:"tags"`
	}
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return false
	}
	return resp.Tags != nil && len(resp.Tags) == 0
}

func TestListHandler_RepositoryError(t *testing.T) {
	h := tag.ListHandler{Svc: &tagUC.Service{Repo: stubTagRepo{err: errors.New("db down")}}}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tags", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
