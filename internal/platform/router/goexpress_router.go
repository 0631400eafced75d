package router

import (
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/goexpress"
)

type middlewareFunc = func(next http.Handler) http.Handler

type goexpressRouter struct {
	handler *goexpress.Router
}

var _ Router = (*goexpressRouter)(nil)

// NewGoexpressRouter returns a Router backed by goexpress.
func NewGoexpressRouter() Router {
	return &goexpressRouter{
		handler: goexpress.New(),
	}
}

func (r *goexpressRouter) Get(pattern string, handler http.HandlerFunc, middlewares ...middlewareFunc) {
	logRoute(http.MethodGet, pattern)
	r.handler.Get(pattern, handler, middlewares...)
}

func (r *goexpressRouter) Post(pattern string, handler http.HandlerFunc, middlewares ...middlewareFunc) {
	logRoute(http.MethodPost, pattern)
	r.handler.Post(pattern, handler, middlewares...)
}

func (r *goexpressRouter) Put(pattern string, handler http.HandlerFunc, middlewares ...middlewareFunc) {
	logRoute(http.MethodPut, pattern)
	r.handler.Put(pattern, handler, middlewares...)
}

func (r *goexpressRouter) Patch(pattern string, handler http.HandlerFunc, middlewares ...middlewareFunc) {
	logRoute(http.MethodPatch, pattern)
	r.handler.Patch(pattern, handler, middlewares...)
}

func (r *goexpressRouter) Delete(pattern string, handler http.HandlerFunc, middlewares ...middlewareFunc) {
	logRoute(http.MethodDelete, pattern)
	r.handler.Delete(pattern, handler, middlewares...)
}

func (r *goexpressRouter) Use(middleware middlewareFunc) {
	r.handler.Use(middleware)
}

func (r *goexpressRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

func logRoute(method, pattern string) {
	slog.Debug("Route registered.", "method", method, "pattern", pattern)
}
