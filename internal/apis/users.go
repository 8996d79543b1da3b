package apis

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mugiliam/contentsrv/internal/common"
	"github.com/mugiliam/contentsrv/internal/contentmanager"
	"github.com/mugiliam/contentsrv/internal/db/models"
	"github.com/mugiliam/contentsrv/internal/httpx"
)

type userRsp struct {
	ID            uuid.UUID `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Bio           string    `json:"bio,omitempty"`
	Status        int       `json:"status"`
	URLIdentifier string    `json:"url_identifier"`
	Created       time.Time `json:"created"`
	Updated       time.Time `json:"updated"`
}

type userSummaryRsp struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

func userProfileRsp(u *models.User) userRsp {
	return userRsp{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		Bio:           u.Bio,
		Status:        int(u.Status),
		URLIdentifier: u.URLIdentifier,
		Created:       u.Created,
		Updated:       u.Updated,
	}
}

func listUsers(r *http.Request) (*httpx.Response, error) {
	users, err := contentmanager.ListUsers(r.Context())
	if err != nil {
		return nil, err
	}

	rsp := make([]userRsp, 0, len(users))
	for _, u := range users {
		rsp = append(rsp, userProfileRsp(u))
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: rsp}, nil
}

func getUser(r *http.Request) (*httpx.Response, error) {
	id, err := uuidParam(r, "userId")
	if err != nil {
		return nil, err
	}

	u, mgrErr := contentmanager.GetUser(r.Context(), id)
	if mgrErr != nil {
		return nil, mgrErr
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   userSummaryRsp{ID: u.ID, Username: u.Username, Email: u.Email},
	}, nil
}

func getCurrentUser(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	u, err := contentmanager.GetUser(ctx, common.UserIdFromContext(ctx))
	if err != nil {
		return nil, err
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: userProfileRsp(u)}, nil
}

type profileRsp struct {
	Username      string `json:"username"`
	Bio           string `json:"bio,omitempty"`
	URLIdentifier string `json:"url_identifier"`
}

// GetUserProfile serves the public profile page at /u/{username}.
func GetUserProfile(r *http.Request) (*httpx.Response, error) {
	username := chi.URLParam(r, "username")

	u, err := contentmanager.GetUserByURL(r.Context(), "/u/"+username)
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   profileRsp{Username: u.Username, Bio: u.Bio, URLIdentifier: u.URLIdentifier},
	}, nil
}

func updateUser(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	id, err := uuidParam(r, "userId")
	if err != nil {
		return nil, err
	}

	req := &contentmanager.UserUpdateRequest{}
	if err := readRequest(r, req); err != nil {
		return nil, err
	}

	u, mgrErr := contentmanager.UpdateUser(ctx, id, req)
	if mgrErr != nil {
		return noChangesOr(mgrErr)
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: userProfileRsp(u)}, nil
}
