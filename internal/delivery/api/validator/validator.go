// Package validator adapts go-playground/validator to echo and to the
// field error shape returned by the API.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Custom rule tags.
const (
	TagOrderStatus = "order_status"
	TagUserRole    = "user_role"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator reporting JSON field names and knowing the store's enums.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			name, _, _ = strings.Cut(field.Tag.Get("query"), ",")
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	// registration only fails for empty tags or nil functions
	_ = v.RegisterValidation(TagOrderStatus, func(fl validator.FieldLevel) bool {
		return entity.OrderStatus(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation(TagUserRole, func(fl validator.FieldLevel) bool {
		return entity.Role(fl.Field().String()).IsValid()
	})

	return &Validator{validate: v}
}

// Validate runs the struct rules of i.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}

// FieldErrors converts a validation failure into API field errors. It returns
// nil when err carries no field level failures.
func FieldErrors(err error) []domainerrors.FieldError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fields := make([]domainerrors.FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, domainerrors.FieldError{
			Field:   fieldPath(fe),
			Rule:    fe.Tag(),
			Message: message(fe),
		})
	}

	return fields
}

// fieldPath drops the request struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}

	return fe.Field()
}

func message(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required", "required_without":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if isText(fe.Kind()) {
			return fmt.Sprintf("%s must have at least %s characters", field, fe.Param())
		}
		if isList(fe.Kind()) {
			return fmt.Sprintf("%s must have at least %s entries", field, fe.Param())
		}

		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if isText(fe.Kind()) {
			return fmt.Sprintf("%s must have at most %s characters", field, fe.Param())
		}
		if isList(fe.Kind()) {
			return fmt.Sprintf("%s must have at most %s entries", field, fe.Param())
		}

		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "url", "http_url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case TagOrderStatus:
		return fmt.Sprintf("%s must be a known order status", field)
	case TagUserRole:
		return fmt.Sprintf("%s must be ADMIN or USER", field)
	default:
		return fmt.Sprintf("%s failed the %s rule", field, fe.Tag())
	}
}

func isText(kind reflect.Kind) bool {
	return kind == reflect.String
}

func isList(kind reflect.Kind) bool {
	return kind == reflect.Slice || kind == reflect.Map || kind == reflect.Array
}
