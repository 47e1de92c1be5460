package article_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"conduit/internal/domain/entity"
	"conduit/internal/handler/http/article"
	"conduit/internal/handler/http/auth"
)

func TestDeleteHandler(t *testing.T) {
	repo := newStubRepo()
	repo.addUser(entity.User{ID: 1, Username: "alice"})
	repo.addArticle(entity.Article{ID: 1, AuthorID: 1, Slug: "doomed-post", Title: "Doomed", Body: "x"})
	h := article.DeleteHandler{Svc: newService(repo)}

	req := slugRequest(http.MethodDelete, "doomed-post", "")
	req = req.WithContext(auth.WithIdentity(req.Context(), viewer(1, "alice")))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(repo.articles) != 0 {
		t.Error("expected article removed from the repository")
	}
}

func TestDeleteHandler_NotAuthor(t *testing.T) {
	repo := newStubRepo()
	repo.addUser(entity.User{ID: 1, Username: "alice"})
	repo.addUser(entity.User{ID: 2, Username: "bob"})
	repo.addArticle(entity.Article{ID: 1, AuthorID: 1, Slug: "alices-post", Title: "Alices Post", Body: "x"})
	h := article.DeleteHandler{Svc: newService(repo)}

	req := slugRequest(http.MethodDelete, "alices-post", "")
	req = req.WithContext(auth.WithIdentity(req.Context(), viewer(2, "bob")))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if len(repo.articles) != 1 {
		t.Error("article must survive a forbidden delete")
	}
}

func TestDeleteHandler_NotFound(t *testing.T) {
	h := article.DeleteHandler{Svc: newService(newStubRepo())}

	req := slugRequest(http.MethodDelete, "ghost", "")
	req = req.WithContext(auth.WithIdentity(req.Context(), viewer(1, "alice")))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
