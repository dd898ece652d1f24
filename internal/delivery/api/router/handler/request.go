package handler

import (
	"strconv"

	"tienda/internal/delivery/api/response"
	"tienda/internal/delivery/api/validator"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// parseID reads a positive numeric path parameter. Ids must fit a signed
// bigint column.
func parseID(c echo.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 63)
	if err != nil || id == 0 {
		return 0, false
	}

	return uint(id), true
}

// bindAndValidate decodes the body into req and runs its rules. The returned
// error is an AppError ready for response.HandleAppError.
func bindAndValidate(c echo.Context, req any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, req); err != nil {
		return domainerrors.ErrInvalidInput
	}

	return validate(c, req)
}

func validate(c echo.Context, req any) error {
	if err := c.Validate(req); err != nil {
		if fields := validator.FieldErrors(err); len(fields) > 0 {
			return domainerrors.ErrValidationFailed.WithDetails(fields)
		}

		return errors.Wrap(err, "failed to validate request")
	}

	return nil
}

// bindListParams reads the paging, search and sort query parameters shared by list endpoints.
func bindListParams(c echo.Context, params *repository.ListParams) error {
	err := echo.QueryParamsBinder(c).
		Int("page", &params.Page).
		Int("limit", &params.Limit).
		String("search", &params.Search).
		String("sortBy", &params.SortBy).
		String("order", &params.Order).
		BindError()
	if err != nil {
		return queryError(err)
	}

	switch params.Order {
	case "", repository.SortAsc, repository.SortDesc:
		return nil
	default:
		return domainerrors.ErrValidationFailed.WithDetails([]domainerrors.FieldError{
			{Field: "order", Rule: "oneof", Message: "order must be one of [asc desc]"},
		})
	}
}

// queryError turns a query binding failure into a field error.
func queryError(err error) error {
	var bindErr *echo.BindingError
	if errors.As(err, &bindErr) && bindErr.Field != "" {
		return domainerrors.ErrValidationFailed.WithDetails([]domainerrors.FieldError{
			{Field: bindErr.Field, Rule: "type", Message: bindErr.Field + " has an invalid value"},
		})
	}

	return domainerrors.ErrValidationFailed
}

func invalidID(c echo.Context) error {
	return response.InvalidID(c, "id")
}
