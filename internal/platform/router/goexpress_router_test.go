package router_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/usersvc/internal/platform/router"
)

func TestGoexpressRouter_PathValues(t *testing.T) {
	t.Parallel()

	r := router.NewGoexpressRouter()
	echo := func(prefix string) http.HandlerFunc {
		return func(w http.ResponseWriter, req *http.Request) {
			_, _ = io.WriteString(w, prefix+req.PathValue("id"))
		}
	}

	r.Get("/items/{id}", echo("get:"))
	r.Put("/items/{id}", echo("put:"))
	r.Patch("/items/{id}", echo("patch:"))
	r.Delete("/items/{id}", echo("delete:"))
	r.Post("/items", echo("post"))

	tests := []struct {
		method, path, want string
	}{
		{http.MethodGet, "/items/7", "get:7"},
		{http.MethodPut, "/items/7", "put:7"},
		{http.MethodPatch, "/items/7", "patch:7"},
		{http.MethodDelete, "/items/7", "delete:7"},
		{http.MethodPost, "/items", "post"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if got := rec.Body.String(); got != tt.want {
			t.Errorf("%s %s body = %q, want: %q", tt.method, tt.path, got, tt.want)
		}
	}
}

func TestGoexpressRouter_Use(t *testing.T) {
	t.Parallel()

	const header = "X-Middleware"

	r := router.NewGoexpressRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set(header, "true")
			next.ServeHTTP(w, req)
		})
	})
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", http.NoBody))

	if rec.Code != http.StatusNoContent {
		t.Errorf("rec.Code = %d, want: %d", rec.Code, http.StatusNoContent)
	}
	if rec.Header().Get(header) != "true" {
		t.Errorf("rec.Header().Get(%q) = %q, want: %q", header, rec.Header().Get(header), "true")
	}
}
