// Package media lists and deletes the store's image assets in a gocloud.dev
// bucket (gs://, s3://, file:// or mem://).
package media

import (
	"context"
	"encoding/base64"
	"log/slog"
	"strings"

	"tienda/config"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

const (
	defaultPageSize = 30
	maxPageSize     = 500
)

// Params holds dependencies for the media storage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type bucketStorage struct {
	bucket          *blob.Bucket
	publicBaseURL   string
	defaultPageSize int
}

// NewMediaStorage opens the configured bucket and closes it on shutdown.
func NewMediaStorage(params Params) (service.MediaStorage, error) {
	cfg := params.Config.Media
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("media bucket URL is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open media bucket %s", cfg.BucketURL)
	}

	storage := NewBucketStorage(bucket, cfg.PublicBaseURL, cfg.DefaultPageSize)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing media bucket")

			return storage.Close()
		},
	})

	return storage, nil
}

// NewBucketStorage wraps an already opened bucket.
func NewBucketStorage(bucket *blob.Bucket, publicBaseURL string, pageSize int) service.MediaStorage {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &bucketStorage{
		bucket:          bucket,
		publicBaseURL:   strings.TrimRight(publicBaseURL, "/"),
		defaultPageSize: pageSize,
	}
}

// List returns one page of assets. Page tokens are opaque base64 strings.
func (s *bucketStorage) List(ctx context.Context, opts service.MediaListOptions) (*entity.MediaPage, error) {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = s.defaultPageSize
	}
	pageSize = min(pageSize, maxPageSize)

	token := blob.FirstPageToken
	if opts.PageToken != "" {
		decoded, err := base64.RawURLEncoding.DecodeString(opts.PageToken)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid page token")
		}
		token = decoded
	}

	objects, next, err := s.bucket.ListPage(ctx, token, pageSize, &blob.ListOptions{
		Prefix: opts.Prefix,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list media assets")
	}

	page := &entity.MediaPage{Assets: make([]entity.MediaAsset, 0, len(objects))}
	for _, obj := range objects {
		if obj.IsDir {
			continue
		}
		page.Assets = append(page.Assets, entity.MediaAsset{
			PublicID: obj.Key,
			URL:      s.urlFor(obj.Key),
			Size:     obj.Size,
			ModTime:  obj.ModTime,
		})
	}
	if len(next) > 0 {
		page.NextToken = base64.RawURLEncoding.EncodeToString(next)
	}

	return page, nil
}

// Delete removes the asset stored under publicID.
func (s *bucketStorage) Delete(ctx context.Context, publicID string) error {
	key := strings.TrimSpace(publicID)
	if key == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("publicId is required")
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return domainerrors.ErrMediaNotFound
		}

		return errors.Wrapf(err, "failed to delete media asset %s", key)
	}

	return nil
}

func (s *bucketStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}

func (s *bucketStorage) urlFor(key string) string {
	if s.publicBaseURL == "" {
		return key
	}

	return s.publicBaseURL + "/" + strings.TrimLeft(key, "/")
}
