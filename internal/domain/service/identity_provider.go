// Package service defines interfaces for core, stateless domain logic and
// for the hosted services the store depends on.
package service

import "context"

// IdentityClaims are the facts the hosted identity provider asserts about a session.
type IdentityClaims struct {
	Subject   string // provider user ID
	SessionID string
	Email     string
	Name      string
}

// IdentityProvider abstracts the hosted identity provider.
type IdentityProvider interface {
	// VerifySession validates a session token and returns its claims.
	VerifySession(ctx context.Context, token string) (*IdentityClaims, error)

	// SignUpURL returns the provider's hosted sign-up page, redirecting back to redirectURL.
	SignUpURL(redirectURL string) string
}
