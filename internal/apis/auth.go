// Package apis implements the /api/v1 HTTP handlers. Handlers decode the
// request, call into the auth service or a content manager and shape the
// JSON reply; all policy lives below this layer.
package apis

import (
	"net/http"

	"github.com/mugiliam/contentsrv/internal/auth"
	"github.com/mugiliam/contentsrv/internal/httpx"
)

type loginRsp struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func registerUser(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	req := &auth.RegisterRequest{}
	if err := readRequest(r, req); err != nil {
		return nil, err
	}

	user, err := auth.Register(ctx, req)
	if err != nil {
		return nil, err
	}

	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Location:   "/api/v1/users/" + user.ID.String(),
		Response:   userProfileRsp(user),
	}, nil
}

func loginUser(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	req := &auth.LoginRequest{}
	if err := readRequest(r, req); err != nil {
		return nil, err
	}

	token, _, err := auth.Login(ctx, req)
	if err != nil {
		return nil, err
	}

	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   loginRsp{AccessToken: token, TokenType: "Bearer"},
	}, nil
}
