package auth

import (
	"context"
	"log/slog"

	"petlink/internal/domain/service"
	"petlink/internal/errors"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
)

// firebaseVerifier validates Firebase ID tokens against the project's
// signing keys. Token minting stays on the client SDK; the server only
// verifies.
type firebaseVerifier struct {
	client *fbauth.Client
	logger *slog.Logger
}

// NewFirebaseVerifier is the constructor for firebaseVerifier.
func NewFirebaseVerifier(ctx context.Context, app *firebase.App, logger *slog.Logger) (service.TokenVerifier, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize auth client")
	}

	return &firebaseVerifier{
		client: client,
		logger: logger,
	}, nil
}

// VerifyIDToken checks the token signature and expiry and returns the
// subject UID.
func (verifier *firebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	token, err := verifier.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		verifier.logger.DebugContext(ctx, "id token verification failed", slog.Any("error", err))

		return "", errors.Wrap(err, "failed to verify id token")
	}

	return token.UID, nil
}
