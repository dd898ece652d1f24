package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() any      // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string, details any) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() any {
	return e.details
}

// WithDetails returns a copy of the error carrying the given details
func (e *BaseError) WithDetails(details any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches errors sharing the same business code, so copies made by
// WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// FieldError describes one rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Predefined error types
var (
	// Request-level errors
	ErrInvalidID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ID",
		"El identificador no es válido",
		nil,
	)

	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"El cuerpo de la solicitud no es un JSON válido",
		nil,
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Los datos enviados no son válidos",
		nil,
	)

	// Identity-related errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Sesión inválida o expirada",
		nil,
	)

	ErrUserNotRegistered = NewBaseError(
		http.StatusUnauthorized,
		"USER_NOT_REGISTERED",
		"El usuario no ha iniciado sesión en la tienda",
		nil,
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Usuario no encontrado",
		nil,
	)

	ErrEmailAlreadyUsed = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_USED",
		"El correo ya está registrado con otra cuenta",
		nil,
	)

	// Catalog errors
	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Categoría no encontrada",
		nil,
	)

	ErrCategoryAlreadyExists = NewBaseError(
		http.StatusConflict,
		"CATEGORY_ALREADY_EXISTS",
		"Ya existe una categoría con ese nombre",
		nil,
	)

	ErrColeccionNotFound = NewBaseError(
		http.StatusNotFound,
		"COLECCION_NOT_FOUND",
		"Colección no encontrada",
		nil,
	)

	ErrColeccionAlreadyExists = NewBaseError(
		http.StatusConflict,
		"COLECCION_ALREADY_EXISTS",
		"Ya existe una colección con ese nombre",
		nil,
	)

	ErrColeccionLimitReached = NewBaseError(
		http.StatusForbidden,
		"COLECCION_LIMIT_REACHED",
		"Se alcanzó el máximo de colecciones permitidas",
		nil,
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Producto no encontrado",
		nil,
	)

	ErrFeaturedNotFound = NewBaseError(
		http.StatusNotFound,
		"FEATURED_NOT_FOUND",
		"Producto destacado no encontrado",
		nil,
	)

	ErrFeaturedAlreadyExists = NewBaseError(
		http.StatusConflict,
		"FEATURED_ALREADY_EXISTS",
		"El producto ya está destacado",
		nil,
	)

	// Coupon errors
	ErrCuponNotFound = NewBaseError(
		http.StatusNotFound,
		"CUPON_NOT_FOUND",
		"Cupón no encontrado",
		nil,
	)

	ErrCuponAlreadyExists = NewBaseError(
		http.StatusConflict,
		"CUPON_ALREADY_EXISTS",
		"Ya existe un cupón con ese código",
		nil,
	)

	ErrInvalidCoupon = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COUPON",
		"El cupón no es válido",
		nil,
	)

	// Config resources
	ErrDeliveryRangeInvalid = NewBaseError(
		http.StatusBadRequest,
		"DELIVERY_RANGE_INVALID",
		"El máximo de entrega no puede ser menor que el mínimo",
		nil,
	)

	// Order errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Pedido no encontrado",
		nil,
	)

	ErrInsufficientStock = NewBaseError(
		http.StatusBadRequest,
		"INSUFFICIENT_STOCK",
		"No hay stock suficiente para uno de los productos",
		nil,
	)

	// Media errors
	ErrMediaNotFound = NewBaseError(
		http.StatusNotFound,
		"MEDIA_NOT_FOUND",
		"Imagen no encontrada",
		nil,
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Falló la transacción en la base de datos",
		nil,
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del sistema",
		nil,
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Acceso denegado",
		nil,
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso no encontrado",
		nil,
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Conflicto con un recurso existente",
		nil,
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Falló la ejecución en la base de datos"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() any {
	return e.details
}
