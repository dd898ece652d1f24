package impl

import (
	"context"
	"testing"
	"time"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	mockRepo "tienda/internal/mocks/repository"
	mockSvc "tienda/internal/mocks/service"
	"tienda/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cuponServiceFixtures holds all test dependencies for cupon service tests.
type cuponServiceFixtures struct {
	service       usecase.CuponUsecase
	cuponRepo     *mockRepo.MockCuponRepository
	qrcodeService *mockSvc.MockQRCodeService
	now           time.Time
}

func createTestCuponService(t *testing.T) cuponServiceFixtures {
	cuponRepo := mockRepo.NewMockCuponRepository(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	service := NewCuponService(CuponServiceParams{
		CuponRepo:     cuponRepo,
		QRCodeService: qrcodeService,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})
	service.(*cuponService).now = func() time.Time { return now }

	return cuponServiceFixtures{
		service:       service,
		cuponRepo:     cuponRepo,
		qrcodeService: qrcodeService,
		now:           now,
	}
}

func TestCuponService_CreateCupon_NormalizesCode(t *testing.T) {
	fx := createTestCuponService(t)

	ctx := context.Background()

	fx.cuponRepo.EXPECT().
		FindByCode(ctx, "SAVE10").
		Return(nil, domainerrors.ErrCuponNotFound)

	fx.cuponRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Cupon")).
		Return(nil)

	cupon, err := fx.service.CreateCupon(ctx, &usecase.CuponInput{CodigoCupon: " save10 ", Descuento: 10})
	require.NoError(t, err)
	assert.Equal(t, "SAVE10", cupon.CodigoCupon)
	assert.True(t, cupon.Activo)
}

func TestCuponService_CreateCupon_Duplicate(t *testing.T) {
	fx := createTestCuponService(t)

	ctx := context.Background()

	fx.cuponRepo.EXPECT().
		FindByCode(ctx, "SAVE10").
		Return(&entity.Cupon{ID: 1, CodigoCupon: "SAVE10"}, nil)

	_, err := fx.service.CreateCupon(ctx, &usecase.CuponInput{CodigoCupon: "save10", Descuento: 10})
	require.ErrorIs(t, err, domainerrors.ErrCuponAlreadyExists)
	fx.cuponRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCuponService_CreateCupon_DescuentoOutOfRange(t *testing.T) {
	for _, descuento := range []int{0, 101} {
		fx := createTestCuponService(t)

		_, err := fx.service.CreateCupon(context.Background(), &usecase.CuponInput{CodigoCupon: "X", Descuento: descuento})
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}

func TestCuponService_ValidateCupon(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	tests := []struct {
		name       string
		stored     *entity.Cupon
		subtotal   float64
		wantValid  bool
		wantReason string
		wantMonto  float64
	}{
		{
			name:      "active without expiry",
			stored:    &entity.Cupon{CodigoCupon: "SAVE10", Descuento: 10, Activo: true},
			subtotal:  99.99,
			wantValid: true,
			wantMonto: 10,
		},
		{
			name:      "expires later",
			stored:    &entity.Cupon{CodigoCupon: "SAVE10", Descuento: 25, Activo: true, ExpiraEn: &tomorrow},
			subtotal:  200,
			wantValid: true,
			wantMonto: 50,
		},
		{
			name:       "expired",
			stored:     &entity.Cupon{CodigoCupon: "SAVE10", Descuento: 10, Activo: true, ExpiraEn: &yesterday},
			subtotal:   100,
			wantReason: entity.CuponReasonExpired,
		},
		{
			name:       "inactive",
			stored:     &entity.Cupon{CodigoCupon: "SAVE10", Descuento: 10},
			subtotal:   100,
			wantReason: entity.CuponReasonInactive,
		},
		{
			name:       "unknown",
			subtotal:   100,
			wantReason: entity.CuponReasonNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCuponService(t)

			ctx := context.Background()

			if tt.stored != nil {
				fx.cuponRepo.EXPECT().FindByCode(ctx, "SAVE10").Return(tt.stored, nil)
			} else {
				fx.cuponRepo.EXPECT().FindByCode(ctx, "SAVE10").Return(nil, domainerrors.ErrCuponNotFound)
			}

			result, err := fx.service.ValidateCupon(ctx, "save10", tt.subtotal)
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, result.Valid)
			assert.Equal(t, tt.wantReason, result.Reason)
			assert.InDelta(t, tt.wantMonto, result.MontoDescuento, 0.001)
		})
	}
}

func TestCuponService_ValidateCupon_RepositoryError(t *testing.T) {
	fx := createTestCuponService(t)

	ctx := context.Background()
	dbErr := errors.New("timeout")

	fx.cuponRepo.EXPECT().
		FindByCode(ctx, "SAVE10").
		Return(nil, dbErr)

	_, err := fx.service.ValidateCupon(ctx, "SAVE10", 10)
	require.ErrorIs(t, err, dbErr)
}

func TestCuponService_ValidateCuponQR(t *testing.T) {
	fx := createTestCuponService(t)

	ctx := context.Background()
	payload := `{"type":"coupon","code":"SAVE10"}`

	fx.qrcodeService.EXPECT().
		ParseCouponQR(payload).
		Return("SAVE10", nil)

	fx.cuponRepo.EXPECT().
		FindByCode(ctx, "SAVE10").
		Return(&entity.Cupon{CodigoCupon: "SAVE10", Descuento: 10, Activo: true}, nil)

	result, err := fx.service.ValidateCuponQR(ctx, payload, 50)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.InDelta(t, 5.0, result.MontoDescuento, 0.001)
}

func TestCuponService_ValidateCuponQR_Unreadable(t *testing.T) {
	fx := createTestCuponService(t)

	fx.qrcodeService.EXPECT().
		ParseCouponQR("garbage").
		Return("", errors.New("failed to unmarshal QR code data"))

	_, err := fx.service.ValidateCuponQR(context.Background(), "garbage", 50)
	require.ErrorIs(t, err, domainerrors.ErrInvalidCoupon)
}

func TestCuponService_GenerateCuponQR(t *testing.T) {
	fx := createTestCuponService(t)

	ctx := context.Background()
	cupon := &entity.Cupon{ID: 3, CodigoCupon: "SAVE10"}
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.cuponRepo.EXPECT().
		FindByID(ctx, uint(3)).
		Return(cupon, nil)

	fx.qrcodeService.EXPECT().
		GenerateCouponQR("SAVE10").
		Return(png, nil)

	data, got, err := fx.service.GenerateCuponQR(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, png, data)
	assert.Equal(t, cupon, got)
}
