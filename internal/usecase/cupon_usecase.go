package usecase

import (
	"context"
	"time"

	"tienda/internal/domain/entity"
	"tienda/internal/domain/repository"
)

// CuponInput carries the fields of a new coupon. A nil Activo means active.
type CuponInput struct {
	CodigoCupon string
	Descuento   int
	Activo      *bool
	ExpiraEn    *time.Time
	Descripcion string
}

// CuponUpdateInput carries the coupon fields to change; nil fields are kept.
type CuponUpdateInput struct {
	CodigoCupon *string
	Descuento   *int
	Activo      *bool
	ExpiraEn    *time.Time
	Descripcion *string
}

// CuponUsecase defines coupon management and checkout validation
type CuponUsecase interface {
	ListCupones(ctx context.Context, filter repository.CuponFilter) (*entity.Page[*entity.Cupon], error)

	// GetCuponByCode looks a coupon up ignoring case.
	GetCuponByCode(ctx context.Context, code string) (*entity.Cupon, error)

	CreateCupon(ctx context.Context, input *CuponInput) (*entity.Cupon, error)
	UpdateCupon(ctx context.Context, id uint, input *CuponUpdateInput) (*entity.Cupon, error)
	DeleteCupon(ctx context.Context, id uint) error

	// ValidateCupon reports whether code can be applied and the discount it grants on subtotal.
	ValidateCupon(ctx context.Context, code string, subtotal float64) (*entity.CuponValidation, error)

	// ValidateCuponQR validates the code carried by a scanned coupon QR payload.
	ValidateCuponQR(ctx context.Context, qrData string, subtotal float64) (*entity.CuponValidation, error)

	// GenerateCuponQR renders a PNG QR code for the coupon with the given ID.
	GenerateCuponQR(ctx context.Context, id uint) ([]byte, *entity.Cupon, error)
}
