// Package validator wraps go-playground/validator for declarative struct
// validation with uniformly formatted errors.
//
// Besides the stock tags it registers:
//
//	wsurl    a ws:// or wss:// URL with a host
//	httpurl  an http:// or https:// URL with a host
//
// Field names in errors come from the `envconfig` tag when present, so a
// failure points at the setting the operator has to fix.
package validator

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error in the chain returned by Validate.
var ErrValidationFailed = errors.New("struct validation failed")

var validator *gvalidator.Validate

// Example: "'LOG_LEVEL': value 'loud' does not meet the requirements for the 'oneof' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
	validator.RegisterTagNameFunc(fieldName)

	_ = validator.RegisterValidation("wsurl", schemeURL("ws", "wss"))
	_ = validator.RegisterValidation("httpurl", schemeURL("http", "https"))
}

// fieldName prefers the envconfig key over the Go field name.
func fieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("envconfig"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

// schemeURL accepts absolute URLs with a host and one of schemes.
func schemeURL(schemes ...string) gvalidator.Func {
	return func(fl gvalidator.FieldLevel) bool {
		u, err := url.Parse(fl.Field().String())
		if err != nil || u.Host == "" {
			return false
		}

		for _, s := range schemes {
			if strings.EqualFold(u.Scheme, s) {
				return true
			}
		}
		return false
	}
}

func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` tags. On failure the returned
// error matches ErrValidationFailed and carries one line per field.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
