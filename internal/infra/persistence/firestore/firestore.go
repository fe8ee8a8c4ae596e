// Package firestore contains the concrete implementation of the persistence
// layer on top of the Cloud Firestore document store.
package firestore

import (
	"context"
	"log/slog"

	fs "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the store client, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	App    *firebase.App
	Logger *slog.Logger
}

// New creates the process-lifetime Firestore client from the Firebase app.
// The client is injected into every repository; nothing holds a module-level
// handle, so tests can substitute their own.
func New(params Params) (*fs.Client, error) {
	client, err := params.App.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Logger.Info("Firestore client initialized")

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}
