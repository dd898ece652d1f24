package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"testing"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/infra/qrcode"
	"tienda/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryCuponRepository keeps coupons in a map, matching codes case-insensitively.
type memoryCuponRepository struct {
	mu      sync.Mutex
	nextID  uint
	cupones map[uint]*entity.Cupon
}

func newMemoryCuponRepository() *memoryCuponRepository {
	return &memoryCuponRepository{cupones: map[uint]*entity.Cupon{}}
}

func (r *memoryCuponRepository) Create(_ context.Context, cupon *entity.Cupon) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.cupones {
		if strings.EqualFold(existing.CodigoCupon, cupon.CodigoCupon) {
			return domainerrors.ErrCuponAlreadyExists
		}
	}
	r.nextID++
	cupon.ID = r.nextID
	stored := *cupon
	r.cupones[cupon.ID] = &stored

	return nil
}

func (r *memoryCuponRepository) FindByID(_ context.Context, id uint) (*entity.Cupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cupon, ok := r.cupones[id]
	if !ok {
		return nil, domainerrors.ErrCuponNotFound
	}
	found := *cupon

	return &found, nil
}

func (r *memoryCuponRepository) FindByCode(_ context.Context, code string) (*entity.Cupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, cupon := range r.cupones {
		if strings.EqualFold(cupon.CodigoCupon, code) {
			found := *cupon

			return &found, nil
		}
	}

	return nil, domainerrors.ErrCuponNotFound
}

func (r *memoryCuponRepository) List(_ context.Context, _ repository.CuponFilter) ([]*entity.Cupon, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cupones := make([]*entity.Cupon, 0, len(r.cupones))
	for _, cupon := range r.cupones {
		cupones = append(cupones, cupon)
	}

	return cupones, int64(len(cupones)), nil
}

func (r *memoryCuponRepository) Update(_ context.Context, cupon *entity.Cupon) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *cupon
	r.cupones[cupon.ID] = &stored

	return nil
}

func (r *memoryCuponRepository) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cupones[id]; !ok {
		return domainerrors.ErrCuponNotFound
	}
	delete(r.cupones, id)

	return nil
}

func newCuponTestEcho() *echo.Echo {
	cuponUC := impl.NewCuponService(impl.CuponServiceParams{
		CuponRepo:     newMemoryCuponRepository(),
		QRCodeService: qrcode.NewQRCodeService(nil),
		Logger:        newDiscardLogger(),
	})
	h := NewCuponHandler(CuponHandlerParams{CuponUC: cuponUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.GET("/api/cupones/codigo/:codigo", h.GetCuponByCode)
	e.POST("/api/cupones/validate", h.ValidateCupon)
	e.POST("/api/cupones", h.CreateCupon)
	e.DELETE("/api/cupones/:id", h.DeleteCupon)
	e.GET("/api/cupones/:id/qr", h.GetCuponQR)

	return e
}

func TestCuponHandler_CreateLookupAndDuplicate(t *testing.T) {
	e := newCuponTestEcho()

	rec := doRequest(e, http.MethodPost, "/api/cupones", `{"codigoCupon":"SAVE10","descuento":10}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created entity.Cupon
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &created))
	assert.Equal(t, "SAVE10", created.CodigoCupon)
	assert.True(t, created.Activo)

	rec = doRequest(e, http.MethodGet, "/api/cupones/codigo/save10", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var found entity.Cupon
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &found))
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, 10, found.Descuento)

	rec = doRequest(e, http.MethodPost, "/api/cupones", `{"codigoCupon":"save10","descuento":20}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, domainerrors.ErrCuponAlreadyExists.ErrorCode(), decodeEnvelope(t, rec).Error.Code)
}

func TestCuponHandler_GetCuponByCode_Unknown(t *testing.T) {
	e := newCuponTestEcho()

	rec := doRequest(e, http.MethodGet, "/api/cupones/codigo/NOPE", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCuponHandler_ValidateCupon(t *testing.T) {
	e := newCuponTestEcho()

	rec := doRequest(e, http.MethodPost, "/api/cupones", `{"codigoCupon":"SAVE10","descuento":10}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantValid  bool
		wantReason string
	}{
		{
			name:       "known code",
			body:       `{"codigoCupon":"save10","subtotal":80}`,
			wantStatus: http.StatusOK,
			wantValid:  true,
		},
		{
			name:       "unknown code",
			body:       `{"codigoCupon":"OTHER","subtotal":80}`,
			wantStatus: http.StatusOK,
			wantReason: entity.CuponReasonNotFound,
		},
		{
			name:       "scanned QR payload",
			body:       `{"qrData":"{\"type\":\"coupon\",\"code\":\"SAVE10\"}","subtotal":80}`,
			wantStatus: http.StatusOK,
			wantValid:  true,
		},
		{
			name:       "neither code nor QR",
			body:       `{"subtotal":80}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative subtotal",
			body:       `{"codigoCupon":"SAVE10","subtotal":-1}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(e, http.MethodPost, "/api/cupones/validate", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus != http.StatusOK {
				return
			}

			var result entity.CuponValidation
			require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &result))
			assert.Equal(t, tt.wantValid, result.Valid)
			assert.Equal(t, tt.wantReason, result.Reason)
			if tt.wantValid {
				assert.InDelta(t, 8.0, result.MontoDescuento, 0.001)
			}
		})
	}
}

func TestCuponHandler_GetCuponQR(t *testing.T) {
	e := newCuponTestEcho()

	rec := doRequest(e, http.MethodPost, "/api/cupones", `{"codigoCupon":"SAVE10","descuento":10}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(e, http.MethodGet, "/api/cupones/1/qr", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "cupon-SAVE10.png")
	assert.Equal(t, "\x89PNG", rec.Body.String()[:4])

	rec = doRequest(e, http.MethodGet, "/api/cupones/abc/qr", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
