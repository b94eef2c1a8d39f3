package router_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/shashiranjanraj/meera/pkg/router"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestNamedRouteURL(t *testing.T) {
	r := router.New()
	r.Get("/api/posts/{id}", "posts.get", ok)

	url, err := r.URL("posts.get", map[string]string{"id": "abc123"})
	if err != nil {
		t.Fatalf("url: %v", err)
	}
	if url != "/api/posts/abc123" {
		t.Errorf("expected /api/posts/abc123, got %q", url)
	}

	if _, err := r.URL("posts.get", nil); err == nil {
		t.Error("expected error for missing params")
	}
	if _, err := r.URL("nope", nil); err == nil {
		t.Error("expected error for unknown route name")
	}
}

func TestGroupPrefixAndMiddleware(t *testing.T) {
	var sawMiddleware bool
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sawMiddleware = true
			next.ServeHTTP(w, r)
		})
	}

	r := router.New()
	api := r.Group("/api", mw)
	api.Post("/product/add", "product.add", ok)

	req := httptest.NewRequest("POST", "/api/product/add", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !sawMiddleware {
		t.Error("expected group middleware to run")
	}
}

func TestRoutesListing(t *testing.T) {
	r := router.New()
	r.Get("/b", "b", ok)
	r.Get("/a", "a", ok)
	r.Post("/a", "a.post", ok)

	infos := r.Routes()
	if len(infos) != 3 {
		t.Fatalf("expected 3 routes, got %d", len(infos))
	}
	if infos[0].Path != "/a" || infos[2].Path != "/b" {
		t.Errorf("expected routes sorted by path, got %+v", infos)
	}
}

func TestStaticServesFiles(t *testing.T) {
	dir := t.TempDir()
	if err := writeFile(dir+"/hello.txt", "hi"); err != nil {
		t.Fatal(err)
	}

	r := router.New()
	r.Static("/uploads", dir)

	req := httptest.NewRequest("GET", "/uploads/hello.txt", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "hi" {
		t.Errorf("expected file body, got %q", rec.Body.String())
	}
}
