package middleware

import (
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/contact"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding rules used by request DTOs:
//
//	phone  a Russian mobile number in any common notation
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return contact.IsValidPhone(fl.Field().String())
	})
}
