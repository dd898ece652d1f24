package usecase

import (
	"context"

	"tienda/internal/domain/entity"
)

// FotosUpdateInput carries the photo fields to change; nil fields are kept.
type FotosUpdateInput struct {
	Portada  *string
	Nosotros *string
	Banners  *[]string
}

// AgenciaUpdateInput carries the agency fields to change; nil fields are kept.
type AgenciaUpdateInput struct {
	Agencias       *[]string
	MinimoDelivery *int
	MaximoDelivery *int
	CostoEnvio     *float64
}

// StoreConfigUsecase manages the storefront settings and the singleton
// photo and agency configurations.
type StoreConfigUsecase interface {
	GetSettings(ctx context.Context) (map[string]string, error)

	// UpdateSettings upserts every key in one transaction and returns all settings.
	UpdateSettings(ctx context.Context, settings map[string]string) (map[string]string, error)

	// GetFotos returns the photo config, creating the default row on first read.
	GetFotos(ctx context.Context) (*entity.Fotos, error)
	UpdateFotos(ctx context.Context, input *FotosUpdateInput) (*entity.Fotos, error)

	// GetAgencia returns the agency config, creating the default row on first read.
	GetAgencia(ctx context.Context) (*entity.Agencia, error)

	// UpdateAgencia keeps maximoDelivery >= minimoDelivery, also against stored values.
	UpdateAgencia(ctx context.Context, input *AgenciaUpdateInput) (*entity.Agencia, error)
}
