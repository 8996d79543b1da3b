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

type pageRsp struct {
	ID            uuid.UUID `json:"id"`
	NamespaceID   uuid.UUID `json:"namespace_id"`
	UserID        uuid.UUID `json:"user_id"`
	Title         string    `json:"title"`
	URLIdentifier string    `json:"url_identifier"`
	MDContent     string    `json:"md_content"`
	Status        int       `json:"status"`
	Created       time.Time `json:"created"`
	Updated       time.Time `json:"updated"`
}

func pageToRsp(p *models.Page) pageRsp {
	return pageRsp{
		ID:            p.ID,
		NamespaceID:   p.NamespaceID,
		UserID:        p.UserID,
		Title:         p.Title,
		URLIdentifier: p.URLIdentifier,
		MDContent:     p.MDContent,
		Status:        int(p.Status),
		Created:       p.Created,
		Updated:       p.Updated,
	}
}

func createPage(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	nsRef := chi.URLParam(r, "namespaceRef")

	req := &contentmanager.PageRequest{}
	if err := readRequest(r, req); err != nil {
		return nil, err
	}

	p, err := contentmanager.CreatePage(ctx, nsRef, req)
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Location:   "/api/v1/pages/" + p.URLIdentifier,
		Response:   pageToRsp(p),
	}, nil
}

func listPages(r *http.Request) (*httpx.Response, error) {
	nsRef := chi.URLParam(r, "namespaceRef")

	pages, err := contentmanager.ListPages(r.Context(), nsRef)
	if err != nil {
		return nil, err
	}

	rsp := make([]pageRsp, 0, len(pages))
	for _, p := range pages {
		rsp = append(rsp, pageToRsp(p))
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: rsp}, nil
}

func getPage(r *http.Request) (*httpx.Response, error) {
	ref := chi.URLParam(r, "pageRef")

	p, err := contentmanager.GetPage(r.Context(), ref)
	if err != nil {
		return nil, err
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: pageToRsp(p)}, nil
}

func updatePage(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	ref := chi.URLParam(r, "pageRef")

	req := &contentmanager.PageUpdateRequest{}
	if err := readRequest(r, req); err != nil {
		return nil, err
	}

	p, err := contentmanager.UpdatePage(ctx, ref, req)
	if err != nil {
		return noChangesOr(err)
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: pageToRsp(p)}, nil
}
