package impl

import (
	"context"
	"log/slog"
	"strings"

	"tienda/config"
	deliverycontext "tienda/internal/delivery/context"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type coleccionService struct {
	coleccionRepo repository.ColeccionRepository
	config        *config.Config
	logger        *slog.Logger
}

// ColeccionServiceParams holds dependencies for ColeccionService, injected by Fx.
type ColeccionServiceParams struct {
	fx.In

	ColeccionRepo repository.ColeccionRepository
	Config        *config.Config
	Logger        *slog.Logger
}

// NewColeccionService creates a new collection service instance
func NewColeccionService(params ColeccionServiceParams) usecase.ColeccionUsecase {
	return &coleccionService{
		coleccionRepo: params.ColeccionRepo,
		config:        params.Config,
		logger:        params.Logger,
	}
}

func (srv *coleccionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *coleccionService) ListColecciones(ctx context.Context, params repository.ListParams) (*entity.Page[*entity.Coleccion], error) {
	normalizeListParams(srv.config, &params)

	colecciones, total, err := srv.coleccionRepo.List(ctx, params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list colecciones")
	}

	return newPage(colecciones, total, params), nil
}

func (srv *coleccionService) EnsureCapacity(ctx context.Context) error {
	count, err := srv.coleccionRepo.Count(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to count colecciones")
	}
	if count >= entity.MaxColecciones {
		srv.log(ctx).Warn("Coleccion limit reached", slog.Int64("count", count))

		return domainerrors.ErrColeccionLimitReached
	}

	return nil
}

func (srv *coleccionService) CreateColeccion(ctx context.Context, input *usecase.ColeccionInput) (*entity.Coleccion, error) {
	if err := srv.EnsureCapacity(ctx); err != nil {
		return nil, err
	}

	coleccion := &entity.Coleccion{
		Nombre:      strings.TrimSpace(input.Nombre),
		Descripcion: strings.TrimSpace(input.Descripcion),
		Imagen:      strings.TrimSpace(input.Imagen),
	}

	if err := srv.ensureNombreAvailable(ctx, coleccion.Nombre, 0); err != nil {
		return nil, err
	}

	if err := srv.coleccionRepo.Create(ctx, coleccion); err != nil {
		return nil, errors.Wrap(err, "failed to create coleccion")
	}

	srv.log(ctx).Info("Coleccion created", slog.Any("coleccionID", coleccion.ID), slog.String("nombre", coleccion.Nombre))

	return coleccion, nil
}

func (srv *coleccionService) UpdateColeccion(ctx context.Context, id uint, input *usecase.ColeccionUpdateInput) (*entity.Coleccion, error) {
	coleccion, err := srv.coleccionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find coleccion")
	}

	nombre := trimmedOr(input.Nombre, coleccion.Nombre)
	if !strings.EqualFold(nombre, coleccion.Nombre) {
		if err := srv.ensureNombreAvailable(ctx, nombre, coleccion.ID); err != nil {
			return nil, err
		}
	}
	coleccion.Nombre = nombre
	coleccion.Descripcion = trimmedOr(input.Descripcion, coleccion.Descripcion)
	coleccion.Imagen = trimmedOr(input.Imagen, coleccion.Imagen)

	if err := srv.coleccionRepo.Update(ctx, coleccion); err != nil {
		return nil, errors.Wrap(err, "failed to update coleccion")
	}

	return coleccion, nil
}

func (srv *coleccionService) DeleteColeccion(ctx context.Context, id uint) error {
	if err := srv.coleccionRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete coleccion")
	}

	return nil
}

func (srv *coleccionService) ensureNombreAvailable(ctx context.Context, nombre string, exceptID uint) error {
	existing, err := srv.coleccionRepo.FindByNombre(ctx, nombre)
	if err != nil {
		if errors.Is(err, domainerrors.ErrColeccionNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to check coleccion nombre")
	}
	if existing.ID != exceptID {
		return domainerrors.ErrColeccionAlreadyExists
	}

	return nil
}
