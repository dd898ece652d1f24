package service

import (
	"context"

	"tienda/internal/domain/entity"
)

// MediaListOptions selects a page of stored images.
type MediaListOptions struct {
	Prefix    string
	PageSize  int
	PageToken string
}

// MediaStorage abstracts the hosted image bucket.
type MediaStorage interface {
	// List returns a page of assets under the given prefix.
	List(ctx context.Context, opts MediaListOptions) (*entity.MediaPage, error)

	// Delete removes the asset identified by publicID.
	Delete(ctx context.Context, publicID string) error

	// Close releases the bucket.
	Close() error
}
