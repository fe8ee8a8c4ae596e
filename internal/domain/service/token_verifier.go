package service

import "context"

// TokenVerifier checks bearer tokens issued by the external identity
// provider. The application never mints or refreshes tokens itself; identity
// is fully delegated.
type TokenVerifier interface {
	// VerifyIDToken validates the token and returns the provider uid.
	VerifyIDToken(ctx context.Context, idToken string) (string, error)
}
