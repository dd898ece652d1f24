package handler

import (
	"net/http"
	"testing"

	"tienda/internal/delivery/api/middleware"
	"tienda/internal/domain/entity"
	"tienda/internal/domain/service"
	mockSvc "tienda/internal/mocks/service"
	mockUC "tienda/internal/mocks/usecase"
	"tienda/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type userHandlerFixtures struct {
	echo     *echo.Echo
	userUC   *mockUC.MockUserUsecase
	identity *mockSvc.MockIdentityProvider
}

func createTestUserHandler(t *testing.T) userHandlerFixtures {
	userUC := mockUC.NewMockUserUsecase(t)
	identity := mockSvc.NewMockIdentityProvider(t)
	auth := middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{
		IdentityProvider: identity,
		UserUC:           userUC,
		Logger:           newDiscardLogger(),
	})
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.POST("/api/auth/sign-in", h.SignIn, auth.Authenticate)
	e.GET("/api/auth/sign-up", h.SignUp)

	return userHandlerFixtures{echo: e, userUC: userUC, identity: identity}
}

func (fx userHandlerFixtures) signIn(body string) int {
	req := newJSONRequest(http.MethodPost, "/api/auth/sign-in", body)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok")

	return serveRequest(fx.echo, req).Code
}

func TestUserHandler_SignIn_StatusReflectsCreation(t *testing.T) {
	for _, created := range []bool{true, false} {
		fx := createTestUserHandler(t)

		claims := &service.IdentityClaims{Subject: "user_2abc", Email: "ana@tienda.pe"}
		fx.identity.EXPECT().VerifySession(mock.Anything, "tok").Return(claims, nil)
		fx.userUC.EXPECT().
			SignIn(mock.Anything, claims, &usecase.SignInInput{Name: "Ana"}).
			Return(&usecase.SignInOutput{User: &entity.User{ID: 1}, Created: created}, nil)

		want := http.StatusOK
		if created {
			want = http.StatusCreated
		}
		assert.Equal(t, want, fx.signIn(`{"name":"Ana"}`))
	}
}

func TestUserHandler_SignIn_InvalidEmail(t *testing.T) {
	fx := createTestUserHandler(t)

	fx.identity.EXPECT().
		VerifySession(mock.Anything, "tok").
		Return(&service.IdentityClaims{Subject: "user_2abc"}, nil)

	assert.Equal(t, http.StatusBadRequest, fx.signIn(`{"email":"not-an-email"}`))
	fx.userUC.AssertNotCalled(t, "SignIn", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserHandler_SignUp(t *testing.T) {
	fx := createTestUserHandler(t)

	fx.userUC.EXPECT().
		SignUpURL("https://tienda.pe").
		Return("https://accounts.tienda.pe/sign-up").
		Times(2)

	rec := doRequest(fx.echo, http.MethodGet, "/api/auth/sign-up?redirect_url=https://tienda.pe", "")
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "https://accounts.tienda.pe/sign-up", rec.Header().Get(echo.HeaderLocation))

	rec = doRequest(fx.echo, http.MethodGet, "/api/auth/sign-up?redirect_url=https://tienda.pe&redirect=false", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"url":"https://accounts.tienda.pe/sign-up"`)
}
