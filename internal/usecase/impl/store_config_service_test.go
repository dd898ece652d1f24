package impl

import (
	"context"
	"strings"
	"testing"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	mockRepo "tienda/internal/mocks/repository"
	"tienda/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// storeConfigServiceFixtures holds all test dependencies for store config tests.
type storeConfigServiceFixtures struct {
	service     usecase.StoreConfigUsecase
	txManager   *mockRepo.MockTransactionManager
	settingRepo *mockRepo.MockSettingRepository
	fotosRepo   *mockRepo.MockFotosRepository
	agenciaRepo *mockRepo.MockAgenciaRepository
}

func createTestStoreConfigService(t *testing.T) storeConfigServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	settingRepo := mockRepo.NewMockSettingRepository(t)
	fotosRepo := mockRepo.NewMockFotosRepository(t)
	agenciaRepo := mockRepo.NewMockAgenciaRepository(t)

	service := NewStoreConfigService(StoreConfigServiceParams{
		TxManager:   txManager,
		SettingRepo: settingRepo,
		FotosRepo:   fotosRepo,
		AgenciaRepo: agenciaRepo,
		Logger:      newDiscardLogger(),
	})

	return storeConfigServiceFixtures{
		service:     service,
		txManager:   txManager,
		settingRepo: settingRepo,
		fotosRepo:   fotosRepo,
		agenciaRepo: agenciaRepo,
	}
}

func TestStoreConfigService_UpdateSettings_UpsertsInTransaction(t *testing.T) {
	fx := createTestStoreConfigService(t)

	ctx := context.Background()
	var upserted []string

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txSettingRepo := mockRepo.NewMockSettingRepository(t)

			mockFactory.EXPECT().NewSettingRepository().Return(txSettingRepo)

			txSettingRepo.EXPECT().
				Upsert(ctx, mock.AnythingOfType("*entity.Setting")).
				Run(func(ctx context.Context, setting *entity.Setting) {
					upserted = append(upserted, setting.Key)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.settingRepo.EXPECT().
		FindAll(ctx).
		Return([]*entity.Setting{
			{Key: "telefono", Value: "999888777"},
			{Key: "whatsapp", Value: "51999888777"},
		}, nil)

	settings, err := fx.service.UpdateSettings(ctx, map[string]string{
		"whatsapp": "51999888777",
		"telefono": "999888777",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"telefono", "whatsapp"}, upserted)
	assert.Equal(t, "999888777", settings["telefono"])
}

func TestStoreConfigService_UpdateSettings_RollsBackOnFailure(t *testing.T) {
	fx := createTestStoreConfigService(t)

	ctx := context.Background()
	dbErr := errors.New("disk full")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txSettingRepo := mockRepo.NewMockSettingRepository(t)

			mockFactory.EXPECT().NewSettingRepository().Return(txSettingRepo)
			txSettingRepo.EXPECT().Upsert(ctx, mock.Anything).Return(dbErr)

			return fn(mockFactory)
		})

	_, err := fx.service.UpdateSettings(ctx, map[string]string{"telefono": "1"})
	require.ErrorIs(t, err, dbErr)
	fx.settingRepo.AssertNotCalled(t, "FindAll", mock.Anything)
}

func TestStoreConfigService_UpdateSettings_RejectsBadKeys(t *testing.T) {
	tests := []struct {
		name     string
		settings map[string]string
	}{
		{name: "empty", settings: map[string]string{}},
		{name: "blank key", settings: map[string]string{"  ": "x"}},
		{name: "long key", settings: map[string]string{strings.Repeat("k", 101): "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestStoreConfigService(t)

			_, err := fx.service.UpdateSettings(context.Background(), tt.settings)
			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestStoreConfigService_GetFotos_CreatesDefault(t *testing.T) {
	fx := createTestStoreConfigService(t)

	ctx := context.Background()

	fx.fotosRepo.EXPECT().
		FindFirst(ctx).
		Return(nil, repository.ErrNotFound)

	fx.fotosRepo.EXPECT().
		EnsureDefault(ctx, entity.DefaultFotos()).
		Return(&entity.Fotos{ID: 1, Banners: []string{}}, nil)

	fotos, err := fx.service.GetFotos(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(1), fotos.ID)
	assert.NotNil(t, fotos.Banners)
}

func TestStoreConfigService_GetFotos_ConcurrentFirstRead(t *testing.T) {
	fx := createTestStoreConfigService(t)

	ctx := context.Background()
	winner := &entity.Fotos{ID: 1, Portada: "https://cdn/portada.jpg", Banners: []string{}}

	fx.fotosRepo.EXPECT().
		FindFirst(ctx).
		Return(nil, repository.ErrNotFound)

	// another request inserted the row first; its values are returned
	fx.fotosRepo.EXPECT().
		EnsureDefault(ctx, mock.AnythingOfType("*entity.Fotos")).
		Return(winner, nil)

	fotos, err := fx.service.GetFotos(ctx)
	require.NoError(t, err)
	assert.Same(t, winner, fotos)
}

func TestStoreConfigService_UpdateFotos_CreatesWhenMissing(t *testing.T) {
	fx := createTestStoreConfigService(t)

	ctx := context.Background()

	fx.fotosRepo.EXPECT().
		FindFirst(ctx).
		Return(nil, repository.ErrNotFound)

	fx.fotosRepo.EXPECT().
		EnsureDefault(ctx, mock.AnythingOfType("*entity.Fotos")).
		Return(&entity.Fotos{ID: 1, Nosotros: "https://cdn/nosotros.jpg", Banners: []string{}}, nil)

	fx.fotosRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(fotos *entity.Fotos) bool {
			return fotos.ID == 1 && fotos.Portada == "https://cdn/portada.jpg"
		})).
		Return(nil)

	fotos, err := fx.service.UpdateFotos(ctx, &usecase.FotosUpdateInput{
		Portada: ptr("https://cdn/portada.jpg"),
		Banners: &[]string{"https://cdn/b1.jpg", " "},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/portada.jpg", fotos.Portada)
	assert.Equal(t, "https://cdn/nosotros.jpg", fotos.Nosotros)
	assert.Equal(t, []string{"https://cdn/b1.jpg"}, fotos.Banners)
}

func TestStoreConfigService_GetAgencia_EnsureFails(t *testing.T) {
	fx := createTestStoreConfigService(t)

	ctx := context.Background()
	dbErr := errors.New("connection reset")

	fx.agenciaRepo.EXPECT().
		FindFirst(ctx).
		Return(nil, repository.ErrNotFound)

	fx.agenciaRepo.EXPECT().
		EnsureDefault(ctx, entity.DefaultAgencia()).
		Return(nil, dbErr)

	_, err := fx.service.GetAgencia(ctx)
	require.ErrorIs(t, err, dbErr)
}

func TestStoreConfigService_UpdateAgencia_DeliveryRange(t *testing.T) {
	stored := func() *entity.Agencia {
		return &entity.Agencia{ID: 1, Agencias: []string{"Shalom"}, MinimoDelivery: 2, MaximoDelivery: 5}
	}

	tests := []struct {
		name        string
		input       usecase.AgenciaUpdateInput
		wantErr     bool
		wantDetails any
	}{
		{
			name:    "both bounds inverted",
			input:   usecase.AgenciaUpdateInput{MinimoDelivery: ptr(6), MaximoDelivery: ptr(3)},
			wantErr: true,
		},
		{
			name:        "minimum above stored maximum",
			input:       usecase.AgenciaUpdateInput{MinimoDelivery: ptr(6)},
			wantErr:     true,
			wantDetails: DeliveryRangeConflict{Field: "maximoDelivery", StoredValue: 5},
		},
		{
			name:        "maximum below stored minimum",
			input:       usecase.AgenciaUpdateInput{MaximoDelivery: ptr(1)},
			wantErr:     true,
			wantDetails: DeliveryRangeConflict{Field: "minimoDelivery", StoredValue: 2},
		},
		{
			name:  "minimum equal to stored maximum",
			input: usecase.AgenciaUpdateInput{MinimoDelivery: ptr(5)},
		},
		{
			name:  "both bounds widened",
			input: usecase.AgenciaUpdateInput{MinimoDelivery: ptr(10), MaximoDelivery: ptr(12)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestStoreConfigService(t)

			ctx := context.Background()

			fx.agenciaRepo.EXPECT().
				FindFirst(ctx).
				Return(stored(), nil)

			if !tt.wantErr {
				fx.agenciaRepo.EXPECT().
					Update(ctx, mock.AnythingOfType("*entity.Agencia")).
					Return(nil)
			}

			agencia, err := fx.service.UpdateAgencia(ctx, &tt.input)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.GreaterOrEqual(t, agencia.MaximoDelivery, agencia.MinimoDelivery)

				return
			}

			require.ErrorIs(t, err, domainerrors.ErrDeliveryRangeInvalid)
			var appErr *domainerrors.BaseError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantDetails, appErr.Details())
		})
	}
}

func TestStoreConfigService_UpdateAgencia_CleansAgencias(t *testing.T) {
	fx := createTestStoreConfigService(t)

	ctx := context.Background()

	fx.agenciaRepo.EXPECT().
		FindFirst(ctx).
		Return(nil, repository.ErrNotFound)

	fx.agenciaRepo.EXPECT().
		EnsureDefault(ctx, mock.AnythingOfType("*entity.Agencia")).
		Return(&entity.Agencia{ID: 1, Agencias: []string{}, MinimoDelivery: 1, MaximoDelivery: 7}, nil)

	fx.agenciaRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Agencia")).
		Return(nil)

	agencia, err := fx.service.UpdateAgencia(ctx, &usecase.AgenciaUpdateInput{
		Agencias:   &[]string{" Olva ", "", "Shalom"},
		CostoEnvio: ptr(12.3456),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Olva", "Shalom"}, agencia.Agencias)
	assert.InDelta(t, 12.35, agencia.CostoEnvio, 0.0001)
	assert.Equal(t, 1, agencia.MinimoDelivery)
}
