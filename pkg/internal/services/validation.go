package services

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	ErrSlugTaken     = errors.New("slug is already in use")
	ErrSiteImmutable = errors.New("post site cannot be changed")
)

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

var validation = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	return v
}()

func ValidateStruct(data any) error {
	return validation.Struct(data)
}
