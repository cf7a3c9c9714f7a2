package service

import "context"

// Identity is the signed-in person as asserted by the identity provider.
type Identity struct {
	Subject       string // Provider-specific user ID.
	Email         string
	Name          string
	EmailVerified bool
}

// IdentityProvider verifies ID tokens issued to the front end.
type IdentityProvider interface {
	VerifyIDToken(ctx context.Context, idToken string) (*Identity, error)
}
