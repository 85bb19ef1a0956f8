package service

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	apiErrors "github.com/dtroode/notes-server/internal/api/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	// bcrypt rejects inputs longer than 72 bytes, whatever their rune count.
	_ = v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= limit
	})
	return v
}

// validateStruct runs tag validation on s and converts the first failure
// into a client-facing validation error.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("failed to validate input: %w", err)
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return apiErrors.NewErrValidation("%s is required", fe.Field())
	case "email":
		return apiErrors.NewErrValidation("%s must be a valid email address", fe.Field())
	case "min":
		return apiErrors.NewErrValidation("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return apiErrors.NewErrValidation("%s must be at most %s characters", fe.Field(), fe.Param())
	case "maxbytes":
		return apiErrors.NewErrValidation("%s must be at most %s bytes", fe.Field(), fe.Param())
	default:
		return apiErrors.NewErrValidation("%s is invalid", fe.Field())
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
