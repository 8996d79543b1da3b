package apis

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mugiliam/contentsrv/internal/contentmanager"
	"github.com/mugiliam/contentsrv/internal/db/models"
	"github.com/mugiliam/contentsrv/internal/httpx"
)

type namespaceRsp struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	MDContent string    `json:"md_content"`
	Status    int       `json:"status"`
	Active    bool      `json:"active"`
	UserID    uuid.UUID `json:"user_id"`
	BookID    string    `json:"book_id,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	Created   time.Time `json:"created"`
	Updated   time.Time `json:"updated"`
}

func namespaceToRsp(ns *models.Namespace, tags []*models.Tag) namespaceRsp {
	rsp := namespaceRsp{
		ID:        ns.ID,
		Name:      ns.Name,
		Slug:      ns.Slug,
		MDContent: ns.MDContent,
		Status:    int(ns.Status),
		Active:    ns.Active,
		UserID:    ns.UserID,
		Created:   ns.Created,
		Updated:   ns.Updated,
	}
	if ns.BookID != uuid.Nil {
		rsp.BookID = ns.BookID.String()
	}
	for _, t := range tags {
		rsp.Tags = append(rsp.Tags, t.Name)
	}
	return rsp
}

func createNamespace(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	req := &contentmanager.NamespaceRequest{}
	if err := readRequest(r, req); err != nil {
		return nil, err
	}

	ns, err := contentmanager.CreateNamespace(ctx, req)
	if err != nil {
		return nil, err
	}

	tags, err := contentmanager.ListNamespaceTags(ctx, ns.ID.String())
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Location:   "/api/v1/namespaces/" + ns.Slug,
		Response:   namespaceToRsp(ns, tags),
	}, nil
}

func listNamespaces(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	mine := r.URL.Query().Get("mine") == "true"

	namespaces, err := contentmanager.ListNamespaces(ctx, mine)
	if err != nil {
		return nil, err
	}

	rsp := make([]namespaceRsp, 0, len(namespaces))
	for _, ns := range namespaces {
		rsp = append(rsp, namespaceToRsp(ns, nil))
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: rsp}, nil
}

func getNamespace(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	ref := chi.URLParam(r, "namespaceRef")

	ns, err := contentmanager.GetNamespace(ctx, ref)
	if err != nil {
		return nil, err
	}
	tags, err := contentmanager.ListNamespaceTags(ctx, ns.ID.String())
	if err != nil {
		return nil, err
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: namespaceToRsp(ns, tags)}, nil
}

func updateNamespace(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	ref := chi.URLParam(r, "namespaceRef")

	req := &contentmanager.NamespaceUpdateRequest{}
	if err := readRequest(r, req); err != nil {
		return nil, err
	}

	ns, err := contentmanager.UpdateNamespace(ctx, ref, req)
	if err != nil {
		return noChangesOr(err)
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: namespaceToRsp(ns, nil)}, nil
}
