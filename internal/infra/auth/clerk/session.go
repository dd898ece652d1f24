// Package clerk verifies session tokens issued by the hosted identity provider.
//
// Session tokens are short-lived RS256 JWTs. They are verified offline with
// the instance's PEM public key, so no network call is made per request.
package clerk

import (
	"context"
	"crypto/rsa"
	"log/slog"
	"net/url"
	"slices"
	"strings"
	"time"

	"tienda/config"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const redirectURLParam = "redirect_url"

// sessionClaims are the claims carried by a session token. Email and name are
// only present when the session token template adds them.
type sessionClaims struct {
	jwt.RegisteredClaims

	SessionID       string `json:"sid"`
	AuthorizedParty string `json:"azp,omitempty"`
	Email           string `json:"email,omitempty"`
	Name            string `json:"name,omitempty"`
}

// Params defines the parameters required for the identity provider
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type identityProvider struct {
	publicKey         *rsa.PublicKey
	issuer            string
	authorizedParties []string
	clockSkew         time.Duration
	signUpURL         string
	afterSignUpURL    string
}

// NewIdentityProvider builds the session verifier from config. Without a
// public key every session is rejected.
func NewIdentityProvider(params Params) (service.IdentityProvider, error) {
	cfg := params.Config.Identity
	if cfg == nil {
		cfg = &config.IdentityConfig{}
	}

	provider := &identityProvider{
		issuer:            strings.TrimSpace(cfg.Issuer),
		authorizedParties: cfg.AuthorizedParties,
		clockSkew:         cfg.ClockSkew,
		signUpURL:         cfg.SignUpURL,
		afterSignUpURL:    cfg.AfterSignUpURL,
	}

	pemKey := strings.TrimSpace(cfg.PublicKey)
	if pemKey == "" {
		params.Logger.Warn("Identity public key is not configured, all sessions will be rejected")

		return provider, nil
	}

	// Keys passed through env vars often carry escaped newlines.
	pemKey = strings.ReplaceAll(pemKey, `\n`, "\n")
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pemKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse identity public key")
	}
	provider.publicKey = publicKey

	return provider, nil
}

// VerifySession validates the token signature, expiry, issuer and authorized
// party, and returns the identity it carries.
func (p *identityProvider) VerifySession(_ context.Context, token string) (*service.IdentityClaims, error) {
	if p.publicKey == nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("identity public key is not configured")
	}
	if strings.TrimSpace(token) == "" {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("missing session token")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(p.clockSkew),
	}
	if p.issuer != "" {
		opts = append(opts, jwt.WithIssuer(p.issuer))
	}

	claims := &sessionClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return p.publicKey, nil
	}, opts...); err != nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage(err.Error())
	}

	if claims.Subject == "" {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("session token has no subject")
	}
	if claims.AuthorizedParty != "" && len(p.authorizedParties) > 0 &&
		!slices.Contains(p.authorizedParties, claims.AuthorizedParty) {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("session token issued for another origin")
	}

	return &service.IdentityClaims{
		Subject:   claims.Subject,
		SessionID: claims.SessionID,
		Email:     claims.Email,
		Name:      claims.Name,
	}, nil
}

// SignUpURL returns the hosted sign-up page, redirecting back to redirectURL
// (or the configured default) once the account is created.
func (p *identityProvider) SignUpURL(redirectURL string) string {
	if redirectURL == "" {
		redirectURL = p.afterSignUpURL
	}

	u, err := url.Parse(p.signUpURL)
	if err != nil || redirectURL == "" {
		return p.signUpURL
	}

	query := u.Query()
	query.Set(redirectURLParam, redirectURL)
	u.RawQuery = query.Encode()

	return u.String()
}
