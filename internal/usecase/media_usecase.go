package usecase

import (
	"context"

	"tienda/internal/domain/entity"
	"tienda/internal/domain/service"
)

// MediaUsecase manages the store's hosted images
type MediaUsecase interface {
	ListMedia(ctx context.Context, opts service.MediaListOptions) (*entity.MediaPage, error)
	DeleteMedia(ctx context.Context, publicID string) error
}
