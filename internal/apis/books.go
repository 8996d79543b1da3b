package apis

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/mugiliam/contentsrv/internal/contentmanager"
	"github.com/mugiliam/contentsrv/internal/db/models"
	"github.com/mugiliam/contentsrv/internal/httpx"
)

type bookRsp struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Created     time.Time `json:"created"`
	Updated     time.Time `json:"updated"`
}

func bookToRsp(b *models.Book) bookRsp {
	return bookRsp{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Created:     b.Created,
		Updated:     b.Updated,
	}
}

func createBook(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	req := &contentmanager.BookRequest{}
	if err := readRequest(r, req); err != nil {
		return nil, err
	}

	b, err := contentmanager.CreateBook(ctx, req)
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Location:   "/api/v1/books/" + b.ID.String(),
		Response:   bookToRsp(b),
	}, nil
}

func getBook(r *http.Request) (*httpx.Response, error) {
	id, err := uuidParam(r, "bookId")
	if err != nil {
		return nil, err
	}

	b, mgrErr := contentmanager.GetBook(r.Context(), id)
	if mgrErr != nil {
		return nil, mgrErr
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: bookToRsp(b)}, nil
}

func listBooks(r *http.Request) (*httpx.Response, error) {
	books, err := contentmanager.ListBooks(r.Context())
	if err != nil {
		return nil, err
	}

	rsp := make([]bookRsp, 0, len(books))
	for _, b := range books {
		rsp = append(rsp, bookToRsp(b))
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: rsp}, nil
}

type tagRsp struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func listTags(r *http.Request) (*httpx.Response, error) {
	tags, err := contentmanager.ListTags(r.Context())
	if err != nil {
		return nil, err
	}

	rsp := make([]tagRsp, 0, len(tags))
	for _, t := range tags {
		rsp = append(rsp, tagRsp{ID: t.ID, Name: t.Name})
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: rsp}, nil
}
