package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "tienda/internal/delivery/context"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestSuccess_Envelope(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]int{"id": 7}, "Creado"))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Creado", body["message"])
	assert.Equal(t, map[string]any{"id": float64(7)}, body["data"])
	assert.Equal(t, map[string]any{"request_id": "req-1"}, body["meta"])
}

func TestList_Pagination(t *testing.T) {
	c, rec := newContext()
	page := &entity.Page[string]{
		Items:      []string{"a", "b"},
		Pagination: entity.NewPagination(12, 2, 10),
	}

	require.NoError(t, List(c, page, "ok"))

	body := decode(t, rec)
	assert.Equal(t, []any{"a", "b"}, body["data"])
	assert.Equal(t, map[string]any{
		"total":      float64(12),
		"page":       float64(2),
		"limit":      float64(10),
		"totalPages": float64(2),
	}, body["pagination"])
}

func TestHandleAppError_WrappedWithDetails(t *testing.T) {
	c, rec := newContext()
	err := errors.Wrap(domainerrors.ErrValidationFailed.WithDetails([]domainerrors.FieldError{
		{Field: "name", Rule: "required", Message: "name is required"},
	}), "create category")

	require.NoError(t, HandleAppError(c, err))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	errBody := body["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_FAILED", errBody["code"])
	assert.Len(t, errBody["details"], 1)
}

func TestError_HidesDetailsForAuthAndServerErrors(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusInternalServerError} {
		c, rec := newContext()

		require.NoError(t, Error(c, status, "X", "msg", map[string]string{"secret": "value"}))

		errBody := decode(t, rec)["error"].(map[string]any)
		assert.NotContains(t, errBody, "details", "status %d", status)
	}
}

func TestHandleAppError_PassesThroughUnknownErrors(t *testing.T) {
	c, rec := newContext()

	err := HandleAppError(c, errors.New("boom"))

	require.Error(t, err)
	assert.Equal(t, 0, rec.Body.Len())
}
