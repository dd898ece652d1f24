package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"tienda/config"
	deliverycontext "tienda/internal/delivery/context"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/domain/service"
	"tienda/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cuponService struct {
	cuponRepo     repository.CuponRepository
	qrcodeService service.QRCodeService
	config        *config.Config
	logger        *slog.Logger
	now           func() time.Time
}

// CuponServiceParams holds dependencies for CuponService, injected by Fx.
type CuponServiceParams struct {
	fx.In

	CuponRepo     repository.CuponRepository
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewCuponService creates a new coupon service instance
func NewCuponService(params CuponServiceParams) usecase.CuponUsecase {
	return &cuponService{
		cuponRepo:     params.CuponRepo,
		qrcodeService: params.QRCodeService,
		config:        params.Config,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *cuponService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cuponService) ListCupones(ctx context.Context, filter repository.CuponFilter) (*entity.Page[*entity.Cupon], error) {
	normalizeListParams(srv.config, &filter.ListParams)

	cupones, total, err := srv.cuponRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cupones")
	}

	return newPage(cupones, total, filter.ListParams), nil
}

func (srv *cuponService) GetCuponByCode(ctx context.Context, code string) (*entity.Cupon, error) {
	code = entity.NormalizeCuponCode(code)
	if code == "" {
		return nil, domainerrors.ErrCuponNotFound
	}

	cupon, err := srv.cuponRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cupon by code")
	}

	return cupon, nil
}

// CreateCupon stores the code upper-cased. The duplicate check is a read
// before the insert; a race that slips past it hits the unique index.
func (srv *cuponService) CreateCupon(ctx context.Context, input *usecase.CuponInput) (*entity.Cupon, error) {
	activo := true
	if input.Activo != nil {
		activo = *input.Activo
	}

	cupon := &entity.Cupon{
		CodigoCupon: entity.NormalizeCuponCode(input.CodigoCupon),
		Descuento:   input.Descuento,
		Activo:      activo,
		ExpiraEn:    input.ExpiraEn,
		Descripcion: strings.TrimSpace(input.Descripcion),
	}
	if err := validateCupon(cupon); err != nil {
		return nil, err
	}

	if err := srv.ensureCodeAvailable(ctx, cupon.CodigoCupon, 0); err != nil {
		return nil, err
	}

	if err := srv.cuponRepo.Create(ctx, cupon); err != nil {
		return nil, errors.Wrap(err, "failed to create cupon")
	}

	srv.log(ctx).Info("Cupon created", slog.Any("cuponID", cupon.ID), slog.String("code", cupon.CodigoCupon))

	return cupon, nil
}

func (srv *cuponService) UpdateCupon(ctx context.Context, id uint, input *usecase.CuponUpdateInput) (*entity.Cupon, error) {
	cupon, err := srv.cuponRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cupon")
	}

	if input.CodigoCupon != nil {
		code := entity.NormalizeCuponCode(*input.CodigoCupon)
		if code != cupon.CodigoCupon {
			if err := srv.ensureCodeAvailable(ctx, code, cupon.ID); err != nil {
				return nil, err
			}
		}
		cupon.CodigoCupon = code
	}
	if input.Descuento != nil {
		cupon.Descuento = *input.Descuento
	}
	if input.Activo != nil {
		cupon.Activo = *input.Activo
	}
	if input.ExpiraEn != nil {
		cupon.ExpiraEn = input.ExpiraEn
	}
	cupon.Descripcion = trimmedOr(input.Descripcion, cupon.Descripcion)
	if err := validateCupon(cupon); err != nil {
		return nil, err
	}

	if err := srv.cuponRepo.Update(ctx, cupon); err != nil {
		return nil, errors.Wrap(err, "failed to update cupon")
	}

	return cupon, nil
}

func (srv *cuponService) DeleteCupon(ctx context.Context, id uint) error {
	if err := srv.cuponRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete cupon")
	}

	srv.log(ctx).Info("Cupon deleted", slog.Any("cuponID", id))

	return nil
}

// ValidateCupon never fails for unusable codes; the result carries the reason instead.
func (srv *cuponService) ValidateCupon(ctx context.Context, code string, subtotal float64) (*entity.CuponValidation, error) {
	code = entity.NormalizeCuponCode(code)
	if code == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fieldError("codigoCupon", "required", "codigoCupon is required"))
	}
	if subtotal < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fieldError("subtotal", "gte", "subtotal must not be negative"))
	}

	result := &entity.CuponValidation{CodigoCupon: code}

	cupon, err := srv.cuponRepo.FindByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrCuponNotFound) {
			return nil, errors.Wrap(err, "failed to find cupon by code")
		}
		cupon = nil
	}

	if reason := cupon.RejectReason(srv.now()); reason != "" {
		result.Reason = reason

		return result, nil
	}

	result.Valid = true
	result.CodigoCupon = cupon.CodigoCupon
	result.Descuento = cupon.Descuento
	result.MontoDescuento = cupon.DiscountFor(subtotal)

	return result, nil
}

func (srv *cuponService) ValidateCuponQR(ctx context.Context, qrData string, subtotal float64) (*entity.CuponValidation, error) {
	code, err := srv.qrcodeService.ParseCouponQR(qrData)
	if err != nil {
		srv.log(ctx).Warn("Unreadable cupon QR payload", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidCoupon.WithDetails(fieldError("qrData", "qr", "qrData is not a coupon QR code"))
	}

	return srv.ValidateCupon(ctx, code, subtotal)
}

func (srv *cuponService) GenerateCuponQR(ctx context.Context, id uint) ([]byte, *entity.Cupon, error) {
	cupon, err := srv.cuponRepo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to find cupon")
	}

	png, err := srv.qrcodeService.GenerateCouponQR(cupon.CodigoCupon)
	if err != nil {
		srv.log(ctx).Error("Failed to render cupon QR code", slog.Any("cuponID", id), slog.Any("error", err))

		return nil, nil, errors.Wrap(err, "failed to generate cupon QR code")
	}

	return png, cupon, nil
}

func (srv *cuponService) ensureCodeAvailable(ctx context.Context, code string, exceptID uint) error {
	existing, err := srv.cuponRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domainerrors.ErrCuponNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to check cupon code")
	}
	if existing.ID != exceptID {
		return domainerrors.ErrCuponAlreadyExists
	}

	return nil
}

func validateCupon(cupon *entity.Cupon) error {
	if cupon.CodigoCupon == "" {
		return domainerrors.ErrValidationFailed.WithDetails(fieldError("codigoCupon", "required", "codigoCupon is required"))
	}
	if cupon.Descuento < 1 || cupon.Descuento > 100 {
		return domainerrors.ErrValidationFailed.WithDetails(fieldError("descuento", "range", "descuento must be between 1 and 100"))
	}

	return nil
}
