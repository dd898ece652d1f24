package impl

import (
	"context"
	"testing"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	mockRepo "tienda/internal/mocks/repository"
	"tienda/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type coleccionServiceFixtures struct {
	service       usecase.ColeccionUsecase
	coleccionRepo *mockRepo.MockColeccionRepository
}

func createTestColeccionService(t *testing.T) coleccionServiceFixtures {
	coleccionRepo := mockRepo.NewMockColeccionRepository(t)
	service := NewColeccionService(ColeccionServiceParams{
		ColeccionRepo: coleccionRepo,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	return coleccionServiceFixtures{
		service:       service,
		coleccionRepo: coleccionRepo,
	}
}

func TestColeccionService_CreateColeccion_LimitReached(t *testing.T) {
	fx := createTestColeccionService(t)

	ctx := context.Background()

	fx.coleccionRepo.EXPECT().
		Count(ctx).
		Return(int64(entity.MaxColecciones), nil)

	coleccion, err := fx.service.CreateColeccion(ctx, &usecase.ColeccionInput{Nombre: "Verano"})
	assert.Nil(t, coleccion)
	require.ErrorIs(t, err, domainerrors.ErrColeccionLimitReached)
	fx.coleccionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestColeccionService_CreateColeccion_Success(t *testing.T) {
	fx := createTestColeccionService(t)

	ctx := context.Background()

	fx.coleccionRepo.EXPECT().
		Count(ctx).
		Return(int64(3), nil)

	fx.coleccionRepo.EXPECT().
		FindByNombre(ctx, "Verano").
		Return(nil, domainerrors.ErrColeccionNotFound)

	fx.coleccionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Coleccion")).
		Return(nil)

	coleccion, err := fx.service.CreateColeccion(ctx, &usecase.ColeccionInput{Nombre: "Verano", Imagen: " https://cdn/verano.jpg "})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/verano.jpg", coleccion.Imagen)
}

func TestColeccionService_CreateColeccion_DuplicateNombre(t *testing.T) {
	fx := createTestColeccionService(t)

	ctx := context.Background()

	fx.coleccionRepo.EXPECT().
		Count(ctx).
		Return(int64(1), nil)

	fx.coleccionRepo.EXPECT().
		FindByNombre(ctx, "Verano").
		Return(&entity.Coleccion{ID: 1, Nombre: "verano"}, nil)

	_, err := fx.service.CreateColeccion(ctx, &usecase.ColeccionInput{Nombre: "Verano"})
	require.ErrorIs(t, err, domainerrors.ErrColeccionAlreadyExists)
}

func TestColeccionService_EnsureCapacity_CountFails(t *testing.T) {
	fx := createTestColeccionService(t)

	ctx := context.Background()
	dbErr := errors.New("connection reset")

	fx.coleccionRepo.EXPECT().
		Count(ctx).
		Return(int64(0), dbErr)

	err := fx.service.EnsureCapacity(ctx)
	require.ErrorIs(t, err, dbErr)
}
