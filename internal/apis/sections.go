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

type sectionRsp struct {
	ID        uuid.UUID `json:"id"`
	PageID    uuid.UUID `json:"page_id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	MDContent string    `json:"md_content"`
	Status    int       `json:"status"`
	Created   time.Time `json:"created"`
	Updated   time.Time `json:"updated"`
}

func sectionToRsp(s *models.Section) sectionRsp {
	return sectionRsp{
		ID:        s.ID,
		PageID:    s.PageID,
		UserID:    s.UserID,
		Title:     s.Title,
		MDContent: s.MDContent,
		Status:    int(s.Status),
		Created:   s.Created,
		Updated:   s.Updated,
	}
}

func createSection(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	pageRef := chi.URLParam(r, "pageRef")

	req := &contentmanager.SectionRequest{}
	if err := readRequest(r, req); err != nil {
		return nil, err
	}

	s, err := contentmanager.CreateSection(ctx, pageRef, req)
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Location:   "/api/v1/sections/" + s.ID.String(),
		Response:   sectionToRsp(s),
	}, nil
}

func listSections(r *http.Request) (*httpx.Response, error) {
	pageRef := chi.URLParam(r, "pageRef")

	sections, err := contentmanager.ListSections(r.Context(), pageRef)
	if err != nil {
		return nil, err
	}

	rsp := make([]sectionRsp, 0, len(sections))
	for _, s := range sections {
		rsp = append(rsp, sectionToRsp(s))
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: rsp}, nil
}

func getSection(r *http.Request) (*httpx.Response, error) {
	id, err := uuidParam(r, "sectionId")
	if err != nil {
		return nil, err
	}

	s, mgrErr := contentmanager.GetSection(r.Context(), id)
	if mgrErr != nil {
		return nil, mgrErr
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: sectionToRsp(s)}, nil
}

func updateSection(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	id, err := uuidParam(r, "sectionId")
	if err != nil {
		return nil, err
	}

	req := &contentmanager.SectionUpdateRequest{}
	if err := readRequest(r, req); err != nil {
		return nil, err
	}

	s, mgrErr := contentmanager.UpdateSection(ctx, id, req)
	if mgrErr != nil {
		return noChangesOr(mgrErr)
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: sectionToRsp(s)}, nil
}
