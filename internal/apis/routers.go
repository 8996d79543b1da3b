package apis

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mugiliam/contentsrv/internal/httpx"
	"github.com/mugiliam/contentsrv/internal/server/middleware"
)

type handlerParam struct {
	Method  string
	Path    string
	Handler func(r *http.Request) (*httpx.Response, error)
}

var publicHandlers = []handlerParam{
	{http.MethodPost, "/register", registerUser},
	{http.MethodPost, "/login", loginUser},
	{http.MethodGet, "/namespaces/{namespaceRef}", getNamespace},
	{http.MethodGet, "/namespaces/{namespaceRef}/pages", listPages},
	{http.MethodGet, "/pages/{pageRef}", getPage},
	{http.MethodGet, "/pages/{pageRef}/sections", listSections},
	{http.MethodGet, "/sections/{sectionId}", getSection},
	{http.MethodGet, "/books", listBooks},
	{http.MethodGet, "/books/{bookId}", getBook},
	{http.MethodGet, "/tags", listTags},
}

// listNamespaces is public but honors ?mine=true for authenticated callers.
var optionalAuthHandlers = []handlerParam{
	{http.MethodGet, "/namespaces", listNamespaces},
}

var authedHandlers = []handlerParam{
	{http.MethodGet, "/users", listUsers},
	{http.MethodGet, "/users/me", getCurrentUser},
	{http.MethodGet, "/users/{userId}", getUser},
	{http.MethodPut, "/users/{userId}", updateUser},
	{http.MethodPost, "/namespaces", createNamespace},
	{http.MethodPut, "/namespaces/{namespaceRef}", updateNamespace},
	{http.MethodPost, "/namespaces/{namespaceRef}/pages", createPage},
	{http.MethodPut, "/pages/{pageRef}", updatePage},
	{http.MethodPost, "/pages/{pageRef}/sections", createSection},
	{http.MethodPut, "/sections/{sectionId}", updateSection},
	{http.MethodPost, "/books", createBook},
}

// Router mounts the /api/v1 handlers on r. The caller is expected to have
// installed the scoped db middleware already.
func Router(r chi.Router) {
	r.Group(func(r chi.Router) {
		for _, h := range publicHandlers {
			r.Method(h.Method, h.Path, httpx.WrapHttpRsp(h.Handler))
		}
	})
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthenticateOptional)
		for _, h := range optionalAuthHandlers {
			r.Method(h.Method, h.Path, httpx.WrapHttpRsp(h.Handler))
		}
	})
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate)
		for _, h := range authedHandlers {
			r.Method(h.Method, h.Path, httpx.WrapHttpRsp(h.Handler))
		}
	})
}
