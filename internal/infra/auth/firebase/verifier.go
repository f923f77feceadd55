// Package firebase verifies identity-provider tokens through Firebase Auth.
package firebase

import (
	"context"
	"log/slog"

	"ascend/config"
	"ascend/internal/domain/entity"
	"ascend/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Params defines the parameters required for the identity verifier
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// identityVerifier implements the service.IdentityVerifier interface using
// the Firebase Auth admin client.
type identityVerifier struct {
	client *auth.Client
	logger *slog.Logger
}

// NewIdentityVerifier is the constructor for identityVerifier.
func NewIdentityVerifier(params Params) (service.IdentityVerifier, error) {
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

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase auth client")
	}

	return &identityVerifier{
		client: client,
		logger: params.Logger,
	}, nil
}

// Verify checks the ID token and projects the provider's user record onto
// the core's identity shape.
func (v *identityVerifier) Verify(ctx context.Context, token string) (*entity.Identity, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		v.logger.Warn("ID token verification failed", "error", err)

		return nil, errors.Wrap(err, "invalid ID token")
	}

	identity := &entity.Identity{ID: decoded.UID}

	// Profile fields ride along in the token claims; the user record is the
	// fallback when a custom token carries none.
	if name, ok := decoded.Claims["name"].(string); ok {
		identity.DisplayName = name
	}
	if email, ok := decoded.Claims["email"].(string); ok {
		identity.Email = email
	}
	if picture, ok := decoded.Claims["picture"].(string); ok {
		identity.PhotoRef = picture
	}

	if identity.Email == "" {
		record, err := v.client.GetUser(ctx, decoded.UID)
		if err != nil {
			v.logger.Warn("user record lookup failed", "uid", decoded.UID, "error", err)

			return identity, nil
		}
		identity.DisplayName = record.DisplayName
		identity.Email = record.Email
		identity.PhotoRef = record.PhotoURL
	}

	return identity, nil
}
