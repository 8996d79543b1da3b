package apis

import (
	"errors"
	"net/http"

	"github.com/mugiliam/contentsrv/internal/contentmanager"
	"github.com/mugiliam/contentsrv/internal/httpx"
)

type messageRsp struct {
	Message string `json:"message"`
}

// noChangesOr turns an empty-payload update into a 200 no-op reply and
// passes every other error through.
func noChangesOr(err error) (*httpx.Response, error) {
	if errors.Is(err, contentmanager.ErrNoChanges) {
		return &httpx.Response{
			StatusCode: http.StatusOK,
			Response:   messageRsp{Message: "no changes requested"},
		}, nil
	}
	return nil, err
}
