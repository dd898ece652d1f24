package impl

import domainerrors "tienda/internal/domain/errors"

// fieldError builds the single-entry details list of a validation failure.
func fieldError(field, rule, message string) []domainerrors.FieldError {
	return []domainerrors.FieldError{{Field: field, Rule: rule, Message: message}}
}
