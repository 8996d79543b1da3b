package contentmanager

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mugiliam/contentsrv/pkg/apperrors"
)

var validate = validator.New()

// validateStruct runs the validator tags on req and folds the first failure
// into ErrValidationFailed.
func validateStruct(req any) apperrors.Error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return ErrValidationFailed.Msg(strings.ToLower(ve[0].Field()) + " failed validation on '" + ve[0].Tag() + "'")
	}
	return ErrValidationFailed.Err(err)
}
