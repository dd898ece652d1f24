package clerk

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"io"
	"log/slog"
	"testing"
	"time"

	"tienda/config"
	domainerrors "tienda/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIssuer = "https://clerk.tienda.test"

type testKeys struct {
	private *rsa.PrivateKey
	pem     string
}

func newTestKeys(t *testing.T) testKeys {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	return testKeys{
		private: key,
		pem:     string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})),
	}
}

func newTestProvider(t *testing.T, publicKey string) *identityProvider {
	t.Helper()

	cfg := &config.Config{
		Identity: &config.IdentityConfig{
			Issuer:            testIssuer,
			PublicKey:         publicKey,
			AuthorizedParties: []string{"https://tienda.test"},
			SignUpURL:         "https://accounts.tienda.test/sign-up",
			AfterSignUpURL:    "https://tienda.test/",
		},
	}

	provider, err := NewIdentityProvider(Params{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return provider.(*identityProvider)
}

func signSession(t *testing.T, key *rsa.PrivateKey, claims sessionClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func validClaims() sessionClaims {
	now := time.Now()

	return sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user_2abc",
			Issuer:    testIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-time.Second)),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
		},
		SessionID:       "sess_1",
		AuthorizedParty: "https://tienda.test",
		Email:           "ana@tienda.test",
		Name:            "Ana",
	}
}

func TestVerifySession_Valid(t *testing.T) {
	keys := newTestKeys(t)
	provider := newTestProvider(t, keys.pem)

	claims, err := provider.VerifySession(context.Background(), signSession(t, keys.private, validClaims()))
	require.NoError(t, err)

	assert.Equal(t, "user_2abc", claims.Subject)
	assert.Equal(t, "sess_1", claims.SessionID)
	assert.Equal(t, "ana@tienda.test", claims.Email)
	assert.Equal(t, "Ana", claims.Name)
}

func TestVerifySession_Rejects(t *testing.T) {
	keys := newTestKeys(t)
	otherKeys := newTestKeys(t)
	provider := newTestProvider(t, keys.pem)

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	wrongIssuer := validClaims()
	wrongIssuer.Issuer = "https://evil.test"

	wrongParty := validClaims()
	wrongParty.AuthorizedParty = "https://evil.test"

	noSubject := validClaims()
	noSubject.Subject = ""

	hmacToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims()).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-jwt"},
		{name: "expired", token: signSession(t, keys.private, expired)},
		{name: "wrong issuer", token: signSession(t, keys.private, wrongIssuer)},
		{name: "wrong authorized party", token: signSession(t, keys.private, wrongParty)},
		{name: "missing subject", token: signSession(t, keys.private, noSubject)},
		{name: "signed by another key", token: signSession(t, otherKeys.private, validClaims())},
		{name: "hmac algorithm", token: hmacToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := provider.VerifySession(context.Background(), tt.token)
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
		})
	}
}

func TestVerifySession_NoPublicKey(t *testing.T) {
	keys := newTestKeys(t)
	provider := newTestProvider(t, "")

	_, err := provider.VerifySession(context.Background(), signSession(t, keys.private, validClaims()))
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestNewIdentityProvider_InvalidKey(t *testing.T) {
	_, err := NewIdentityProvider(Params{
		Config: &config.Config{Identity: &config.IdentityConfig{PublicKey: "not a pem"}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.Error(t, err)
}

func TestSignUpURL(t *testing.T) {
	provider := newTestProvider(t, "")

	assert.Equal(t,
		"https://accounts.tienda.test/sign-up?redirect_url=https%3A%2F%2Ftienda.test%2Fcheckout",
		provider.SignUpURL("https://tienda.test/checkout"))
	assert.Equal(t,
		"https://accounts.tienda.test/sign-up?redirect_url=https%3A%2F%2Ftienda.test%2F",
		provider.SignUpURL(""))
}
