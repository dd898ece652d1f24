// Package response renders the API's JSON envelope.
package response

import (
	"net/http"

	deliverycontext "tienda/internal/delivery/context"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Message string    `json:"message"`
	Data    any       `json:"data"`
	Meta    *MetaInfo `json:"meta"`
}

// ListResponse defines the structure for paginated list responses
type ListResponse struct {
	Message    string             `json:"message"`
	Data       any                `json:"data"`
	Pagination *entity.Pagination `json:"pagination"`
	Meta       *MetaInfo          `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, SuccessResponse{
		Message: message,
		Data:    data,
		Meta:    meta(c),
	})
}

// List returns one page of a list together with its pagination
func List[T any](c echo.Context, page *entity.Page[T], message string) error {
	return c.JSON(http.StatusOK, ListResponse{
		Message:    message,
		Data:       page.Items,
		Pagination: &page.Pagination,
		Meta:       meta(c),
	})
}

// ListWithTotals returns a list page that also carries aggregate totals
func ListWithTotals(c echo.Context, data any, pagination entity.Pagination, totals any, message string) error {
	return c.JSON(http.StatusOK, struct {
		ListResponse
		Totals any `json:"totals"`
	}{
		ListResponse: ListResponse{
			Message:    message,
			Data:       data,
			Pagination: &pagination,
			Meta:       meta(c),
		},
		Totals: totals,
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// BindingError returns a binding error response
func BindingError(c echo.Context) error {
	return AppError(c, domainerrors.ErrInvalidInput)
}

// ValidationFailed returns a 400 listing every rejected field
func ValidationFailed(c echo.Context, fields []domainerrors.FieldError) error {
	return AppError(c, domainerrors.ErrValidationFailed.WithDetails(fields))
}

// InvalidID returns the 400 sent for malformed path identifiers
func InvalidID(c echo.Context, param string) error {
	return AppError(c, domainerrors.ErrInvalidID.WithDetails(map[string]string{"param": param}))
}

// AppError renders an application error with its details
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
}

// HandleAppError handles application errors, converting domain errors to appropriate HTTP responses.
// Anything else is returned for the central error handler to log and hide.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return AppError(c, appErr)
	}

	return errors.WithStack(err)
}
