package contentmanager

import (
	"net/http"

	"github.com/mugiliam/contentsrv/pkg/apperrors"
)

var (
	ErrContentManager apperrors.Error = apperrors.New("content error").SetStatusCode(http.StatusInternalServerError)

	ErrValidationFailed apperrors.Error = ErrContentManager.New("validation failed").SetStatusCode(http.StatusBadRequest).SetExpandError(true)
	ErrInvalidReference apperrors.Error = ErrContentManager.New("invalid reference").SetStatusCode(http.StatusBadRequest)

	ErrUserNotFound      apperrors.Error = ErrContentManager.New("user not found").SetStatusCode(http.StatusNotFound)
	ErrNamespaceNotFound apperrors.Error = ErrContentManager.New("namespace not found").SetStatusCode(http.StatusNotFound)
	ErrPageNotFound      apperrors.Error = ErrContentManager.New("page not found").SetStatusCode(http.StatusNotFound)
	ErrSectionNotFound   apperrors.Error = ErrContentManager.New("section not found").SetStatusCode(http.StatusNotFound)
	ErrBookNotFound      apperrors.Error = ErrContentManager.New("book not found").SetStatusCode(http.StatusNotFound)

	ErrAlreadyExists apperrors.Error = ErrContentManager.New("already exists").SetStatusCode(http.StatusConflict)
	ErrNotAuthorized apperrors.Error = ErrContentManager.New("not authorized").SetStatusCode(http.StatusForbidden)

	// ErrNoChanges reports an update payload that named no updatable
	// fields. The API layer turns it into a no-op success.
	ErrNoChanges apperrors.Error = ErrContentManager.New("no changes requested").SetStatusCode(http.StatusOK)
)
