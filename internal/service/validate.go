package service

import (
	"errors"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/noah-isme/campusai-api/pkg/errors"
)

// validationError converts validator output into a typed error carrying
// one entry per violated field, so the client sees every problem at once.
func validationError(err error) *appErrors.Error {
	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, appErrors.ErrValidation.Message)
	}

	fields := make([]appErrors.FieldError, 0, len(violations))
	for _, v := range violations {
		fields = append(fields, appErrors.FieldError{
			Field:  v.Field(),
			Reason: "failed " + v.Tag() + " validation",
		})
	}
	return appErrors.WithFields(appErrors.ErrValidation, fields)
}
