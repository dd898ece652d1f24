package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "tienda/internal/delivery/context"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/service"
	"tienda/internal/usecase"
	"tienda/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type mediaService struct {
	storage service.MediaStorage
	logger  *slog.Logger
}

// MediaServiceParams holds dependencies for MediaService, injected by Fx.
type MediaServiceParams struct {
	fx.In

	Storage service.MediaStorage
	Logger  *slog.Logger
}

// NewMediaService creates a new media service instance
func NewMediaService(params MediaServiceParams) usecase.MediaUsecase {
	return &mediaService{
		storage: params.Storage,
		logger:  params.Logger,
	}
}

func (srv *mediaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *mediaService) ListMedia(ctx context.Context, opts service.MediaListOptions) (*entity.MediaPage, error) {
	opts.Prefix = strings.TrimSpace(opts.Prefix)

	page, err := srv.storage.List(ctx, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list media")
	}
	if page.Assets == nil {
		page.Assets = []entity.MediaAsset{}
	}

	sizes := make([]int64, 0, len(page.Assets))
	for _, asset := range page.Assets {
		sizes = append(sizes, asset.Size)
	}
	srv.log(ctx).Debug("Media listed",
		slog.Int("count", len(page.Assets)),
		slog.String("size", util.FormatBytes(util.TotalBytes(sizes...))),
	)

	return page, nil
}

func (srv *mediaService) DeleteMedia(ctx context.Context, publicID string) error {
	publicID = strings.TrimSpace(publicID)
	if publicID == "" {
		return domainerrors.ErrValidationFailed.WithDetails(fieldError("publicId", "required", "publicId is required"))
	}

	if err := srv.storage.Delete(ctx, publicID); err != nil {
		return errors.Wrap(err, "failed to delete media")
	}

	srv.log(ctx).Info("Media deleted", slog.String("publicID", publicID))

	return nil
}
