package impl

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"strings"

	deliverycontext "tienda/internal/delivery/context"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Settings update bounds.
const (
	maxSettingsPerUpdate = 50
	maxSettingKeyLength  = 100
)

type storeConfigService struct {
	txManager   repository.TransactionManager
	settingRepo repository.SettingRepository
	fotosRepo   repository.FotosRepository
	agenciaRepo repository.AgenciaRepository
	logger      *slog.Logger
}

// StoreConfigServiceParams holds dependencies for StoreConfigService, injected by Fx.
type StoreConfigServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	SettingRepo repository.SettingRepository
	FotosRepo   repository.FotosRepository
	AgenciaRepo repository.AgenciaRepository
	Logger      *slog.Logger
}

// NewStoreConfigService creates a new store config service instance
func NewStoreConfigService(params StoreConfigServiceParams) usecase.StoreConfigUsecase {
	return &storeConfigService{
		txManager:   params.TxManager,
		settingRepo: params.SettingRepo,
		fotosRepo:   params.FotosRepo,
		agenciaRepo: params.AgenciaRepo,
		logger:      params.Logger,
	}
}

func (srv *storeConfigService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *storeConfigService) GetSettings(ctx context.Context) (map[string]string, error) {
	settings, err := srv.settingRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load settings")
	}

	result := make(map[string]string, len(settings))
	for _, setting := range settings {
		result[setting.Key] = setting.Value
	}

	return result, nil
}

func (srv *storeConfigService) UpdateSettings(ctx context.Context, settings map[string]string) (map[string]string, error) {
	if len(settings) == 0 || len(settings) > maxSettingsPerUpdate {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fieldError("settings", "range", "settings must carry between 1 and 50 keys"))
	}

	keys := slices.Sorted(maps.Keys(settings))
	for _, key := range keys {
		if trimmed := strings.TrimSpace(key); trimmed == "" || len(key) > maxSettingKeyLength {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fieldError("settings."+key, "key", "setting keys must have 1 to 100 characters"))
		}
	}

	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		settingRepo := txRepoFactory.NewSettingRepository()
		for _, key := range keys {
			if err := settingRepo.Upsert(ctx, &entity.Setting{Key: key, Value: settings[key]}); err != nil {
				return errors.Wrapf(err, "failed to upsert setting %q", key)
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update settings", slog.Int("keys", len(keys)), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Settings updated", slog.Any("keys", keys))

	return srv.GetSettings(ctx)
}

// GetFotos creates the default row when the photos were never configured.
func (srv *storeConfigService) GetFotos(ctx context.Context) (*entity.Fotos, error) {
	fotos, err := srv.fotosRepo.FindFirst(ctx)
	if err == nil {
		return fotos, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, errors.Wrap(err, "failed to load fotos")
	}

	fotos, err = srv.fotosRepo.EnsureDefault(ctx, entity.DefaultFotos())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create default fotos")
	}
	srv.log(ctx).Info("Default fotos ensured", slog.Any("fotosID", fotos.ID))

	return fotos, nil
}

func (srv *storeConfigService) UpdateFotos(ctx context.Context, input *usecase.FotosUpdateInput) (*entity.Fotos, error) {
	fotos, err := srv.GetFotos(ctx)
	if err != nil {
		return nil, err
	}

	fotos.Portada = trimmedOr(input.Portada, fotos.Portada)
	fotos.Nosotros = trimmedOr(input.Nosotros, fotos.Nosotros)
	if input.Banners != nil {
		fotos.Banners = cleanList(*input.Banners)
	}

	if err := srv.fotosRepo.Update(ctx, fotos); err != nil {
		return nil, errors.Wrap(err, "failed to save fotos")
	}

	return fotos, nil
}

// GetAgencia creates the default row when the agencies were never configured.
func (srv *storeConfigService) GetAgencia(ctx context.Context) (*entity.Agencia, error) {
	agencia, err := srv.agenciaRepo.FindFirst(ctx)
	if err == nil {
		return agencia, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, errors.Wrap(err, "failed to load agencia")
	}

	agencia, err = srv.agenciaRepo.EnsureDefault(ctx, entity.DefaultAgencia())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create default agencia")
	}
	srv.log(ctx).Info("Default agencia ensured", slog.Any("agenciaID", agencia.ID))

	return agencia, nil
}

func (srv *storeConfigService) UpdateAgencia(ctx context.Context, input *usecase.AgenciaUpdateInput) (*entity.Agencia, error) {
	agencia, err := srv.GetAgencia(ctx)
	if err != nil {
		return nil, err
	}

	if err := checkDeliveryRange(agencia, input); err != nil {
		srv.log(ctx).Warn("Rejected delivery range", slog.Any("error", err))

		return nil, err
	}

	if input.MinimoDelivery != nil {
		agencia.MinimoDelivery = *input.MinimoDelivery
	}
	if input.MaximoDelivery != nil {
		agencia.MaximoDelivery = *input.MaximoDelivery
	}
	if input.CostoEnvio != nil {
		agencia.CostoEnvio = entity.RoundMoney(*input.CostoEnvio)
	}
	if input.Agencias != nil {
		agencia.Agencias = cleanList(*input.Agencias)
	}

	if err := srv.agenciaRepo.Update(ctx, agencia); err != nil {
		return nil, errors.Wrap(err, "failed to save agencia")
	}

	return agencia, nil
}

// DeliveryRangeConflict names the stored value a partial update collides with.
type DeliveryRangeConflict struct {
	Field       string `json:"field"`
	StoredValue int    `json:"storedValue"`
}

// checkDeliveryRange keeps maximoDelivery >= minimoDelivery. A bound sent
// alone is checked against the other stored bound.
func checkDeliveryRange(stored *entity.Agencia, input *usecase.AgenciaUpdateInput) error {
	minimo, maximo := input.MinimoDelivery, input.MaximoDelivery

	switch {
	case minimo != nil && maximo != nil:
		if *maximo < *minimo {
			return domainerrors.ErrDeliveryRangeInvalid
		}
	case minimo != nil:
		if *minimo > stored.MaximoDelivery {
			return domainerrors.ErrDeliveryRangeInvalid.WithDetails(DeliveryRangeConflict{
				Field:       "maximoDelivery",
				StoredValue: stored.MaximoDelivery,
			})
		}
	case maximo != nil:
		if *maximo < stored.MinimoDelivery {
			return domainerrors.ErrDeliveryRangeInvalid.WithDetails(DeliveryRangeConflict{
				Field:       "minimoDelivery",
				StoredValue: stored.MinimoDelivery,
			})
		}
	}

	return nil
}

