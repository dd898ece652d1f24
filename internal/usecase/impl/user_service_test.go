package impl

import (
	"context"
	"testing"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/domain/service"
	mockRepo "tienda/internal/mocks/repository"
	mockSvc "tienda/internal/mocks/service"
	"tienda/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service          usecase.UserUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	identityProvider *mockSvc.MockIdentityProvider
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	identityProvider := mockSvc.NewMockIdentityProvider(t)

	service := NewUserService(UserServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		IdentityProvider: identityProvider,
		Config:           newTestConfig(),
		Logger:           newDiscardLogger(),
	})

	return userServiceFixtures{
		service:          service,
		txManager:        txManager,
		userRepo:         userRepo,
		identityProvider: identityProvider,
	}
}

// expectRegistration runs the registration transaction against a fresh
// transactional repository that reports claimed for the admin bootstrap.
func (fx userServiceFixtures) expectRegistration(t *testing.T, ctx context.Context, claimed bool) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)

			txUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = 42
				}).
				Return(nil)

			txUserRepo.EXPECT().
				ClaimAdminBootstrap(ctx, uint(42)).
				Return(claimed, nil)

			if claimed {
				txUserRepo.EXPECT().
					Update(ctx, mock.MatchedBy(func(user *entity.User) bool {
						return user.Role == entity.RoleAdmin
					})).
					Return(nil)
			}

			_ = fn(mockFactory)
		}).
		Return(nil)
}

func TestUserService_SignIn_FirstUserBecomesAdmin(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	claims := &service.IdentityClaims{Subject: "user_2abc", Email: "Ana@Tienda.pe", Name: "Ana"}

	fx.userRepo.EXPECT().
		FindByClerkID(ctx, "user_2abc").
		Return(nil, domainerrors.ErrUserNotFound)

	fx.expectRegistration(t, ctx, true)

	output, err := fx.service.SignIn(ctx, claims, nil)
	require.NoError(t, err)
	assert.True(t, output.Created)
	assert.Equal(t, uint(42), output.User.ID)
	assert.Equal(t, "ana@tienda.pe", output.User.Email)
	assert.Equal(t, entity.RoleAdmin, output.User.Role)
}

func TestUserService_SignIn_LaterUsersStayCustomers(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	claims := &service.IdentityClaims{Subject: "user_3def"}

	fx.userRepo.EXPECT().
		FindByClerkID(ctx, "user_3def").
		Return(nil, domainerrors.ErrUserNotFound)

	fx.expectRegistration(t, ctx, false)

	output, err := fx.service.SignIn(ctx, claims, &usecase.SignInInput{Email: "luis@correo.pe"})
	require.NoError(t, err)
	assert.True(t, output.Created)
	assert.Equal(t, entity.RoleUser, output.User.Role)
	assert.Equal(t, "luis", output.User.Name)
}

func TestUserService_SignIn_ExistingUserRefreshed(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	existing := &entity.User{ID: 7, ClerkID: "user_2abc", Email: "old@tienda.pe", Name: "Ana", Role: entity.RoleUser}

	fx.userRepo.EXPECT().
		FindByClerkID(ctx, "user_2abc").
		Return(existing, nil)

	fx.userRepo.EXPECT().
		Update(ctx, existing).
		Return(nil)

	output, err := fx.service.SignIn(ctx, &service.IdentityClaims{Subject: "user_2abc", Email: "new@tienda.pe"}, nil)
	require.NoError(t, err)
	assert.False(t, output.Created)
	assert.Equal(t, "new@tienda.pe", output.User.Email)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestUserService_SignIn_ExistingUserUnchanged(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	existing := &entity.User{ID: 7, ClerkID: "user_2abc", Email: "ana@tienda.pe", Name: "Ana"}

	fx.userRepo.EXPECT().
		FindByClerkID(ctx, "user_2abc").
		Return(existing, nil)

	output, err := fx.service.SignIn(ctx, &service.IdentityClaims{Subject: "user_2abc", Email: "ana@tienda.pe"}, nil)
	require.NoError(t, err)
	assert.Equal(t, existing, output.User)
	fx.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_SignIn_WithoutEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByClerkID(ctx, "user_4ghi").
		Return(nil, domainerrors.ErrUserNotFound)

	_, err := fx.service.SignIn(ctx, &service.IdentityClaims{Subject: "user_4ghi"}, nil)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_SignIn_NoClaims(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.SignIn(context.Background(), nil, nil)
	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestUserService_SignIn_RegistrationFails(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	txErr := errors.New("serialization failure")

	fx.userRepo.EXPECT().
		FindByClerkID(ctx, "user_5jkl").
		Return(nil, domainerrors.ErrUserNotFound)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(txErr)

	_, err := fx.service.SignIn(ctx, &service.IdentityClaims{Subject: "user_5jkl", Email: "x@y.pe"}, nil)
	require.ErrorIs(t, err, txErr)
}

func TestUserService_SignUpURL(t *testing.T) {
	fx := createTestUserService(t)

	fx.identityProvider.EXPECT().
		SignUpURL("https://tienda.pe/cuenta").
		Return("https://accounts.tienda.pe/sign-up?redirect_url=https%3A%2F%2Ftienda.pe%2Fcuenta")

	assert.Contains(t, fx.service.SignUpURL("https://tienda.pe/cuenta"), "sign-up")
}

func TestUserService_ChangeRole(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: 9, Role: entity.RoleUser}

	fx.userRepo.EXPECT().
		FindByID(ctx, uint(9)).
		Return(user, nil)

	fx.userRepo.EXPECT().
		Update(ctx, user).
		Return(nil)

	updated, err := fx.service.ChangeRole(ctx, 9, entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, updated.Role)
}

func TestUserService_ChangeRole_Invalid(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.ChangeRole(context.Background(), 9, entity.Role("OWNER"))
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_UpdateProfile(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: 9, Name: "Ana", Phone: "1"}

	fx.userRepo.EXPECT().
		FindByID(ctx, uint(9)).
		Return(user, nil)

	fx.userRepo.EXPECT().
		Update(ctx, user).
		Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, 9, &usecase.UpdateProfileInput{Phone: ptr(" 987654321 "), DNI: ptr("12345678")})
	require.NoError(t, err)
	assert.Equal(t, "Ana", updated.Name)
	assert.Equal(t, "987654321", updated.Phone)
	assert.Equal(t, "12345678", updated.DNI)
}
