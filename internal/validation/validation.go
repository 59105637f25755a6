// Package validation wraps go-playground/validator so every form in the
// application reports a single human readable message.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var engine = newEngine()

func newEngine() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if l := fld.Tag.Get("label"); l != "" {
			return l
		}
		return fld.Name
	})
	return v
}

// Engine exposes the shared validator, e.g. for echo's Validator hook.
func Engine() *validator.Validate { return engine }

// Error is the first failed rule of a struct.
type Error struct {
	Field   string
	Rule    string
	Message string
}

func (e *Error) Error() string { return e.Message }

// Struct validates s and returns an *Error describing the first failure.
func Struct(s interface{}) error {
	err := engine.Struct(s)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return err
	}
	fe := ves[0]
	return &Error{Field: fe.Field(), Rule: fe.Tag(), Message: message(fe)}
}

// Invalid builds an Error for checks that struct tags cannot express.
func Invalid(field, format string, args ...interface{}) error {
	return &Error{Field: field, Rule: "custom", Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err came from this package.
func IsValidation(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return "Please enter a valid email address"
	case "numeric":
		return field + " must be a number"
	case "number":
		return field + " must be a whole number"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	}
	return field + " is invalid"
}
