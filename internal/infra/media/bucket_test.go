package media

import (
	"context"
	"testing"

	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStorage(t *testing.T, keys ...string) service.MediaStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	for _, key := range keys {
		require.NoError(t, bucket.WriteAll(context.Background(), key, []byte("img-"+key), nil))
	}

	storage := NewBucketStorage(bucket, "https://cdn.tienda.test/", 2)
	t.Cleanup(func() { _ = storage.Close() })

	return storage
}

func TestBucketStorage_ListPages(t *testing.T) {
	storage := newTestStorage(t, "productos/a.jpg", "productos/b.jpg", "productos/c.jpg", "banners/x.jpg")
	ctx := context.Background()

	first, err := storage.List(ctx, service.MediaListOptions{Prefix: "productos/"})
	require.NoError(t, err)
	require.Len(t, first.Assets, 2)
	assert.Equal(t, "productos/a.jpg", first.Assets[0].PublicID)
	assert.Equal(t, "https://cdn.tienda.test/productos/a.jpg", first.Assets[0].URL)
	assert.Equal(t, int64(len("img-productos/a.jpg")), first.Assets[0].Size)
	require.NotEmpty(t, first.NextToken)

	second, err := storage.List(ctx, service.MediaListOptions{Prefix: "productos/", PageToken: first.NextToken})
	require.NoError(t, err)
	require.Len(t, second.Assets, 1)
	assert.Equal(t, "productos/c.jpg", second.Assets[0].PublicID)
	assert.Empty(t, second.NextToken)
}

func TestBucketStorage_ListInvalidToken(t *testing.T) {
	storage := newTestStorage(t, "a.jpg")

	_, err := storage.List(context.Background(), service.MediaListOptions{PageToken: "***"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestBucketStorage_Delete(t *testing.T) {
	storage := newTestStorage(t, "productos/a.jpg")
	ctx := context.Background()

	require.NoError(t, storage.Delete(ctx, "productos/a.jpg"))

	err := storage.Delete(ctx, "productos/a.jpg")
	assert.True(t, errors.Is(err, domainerrors.ErrMediaNotFound))

	err = storage.Delete(ctx, " ")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	page, err := storage.List(ctx, service.MediaListOptions{})
	require.NoError(t, err)
	assert.Empty(t, page.Assets)
}
