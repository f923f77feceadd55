// Package firestore contains the concrete implementation of the persistence
// layer on the Firestore document store. The per-user document layout is one
// 'users/{uid}' profile document with 'habits', 'goals', 'sleepLogs' and
// 'eras' sub-collections under it.
package firestore

import (
	"context"
	"log/slog"

	"ascend/config"
	"ascend/internal/domain/lifecycle"
	"ascend/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the Firestore client for the configured Firebase project.
func New(params Params) (*firestore.Client, error) {
	if params.Config.Firebase == nil {
		return nil, errors.New("firebase configuration is required")
	}

	var opts []option.ClientOption
	if params.Config.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(params.Config.Firebase.CredentialsPath))
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: params.Config.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			// A cheap read proves credentials and connectivity before the
			// server starts accepting traffic.
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			iter := client.Collections(ctx)
			if _, err := iter.Next(); err != nil && !isIteratorDone(err) {
				return errors.Wrap(err, "failed to reach Firestore")
			}

			params.Logger.Info("Firestore client ready",
				slog.String("projectID", params.Config.Firebase.ProjectID),
			)

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

func isIteratorDone(err error) bool {
	return errors.Is(err, iterator.Done)
}
