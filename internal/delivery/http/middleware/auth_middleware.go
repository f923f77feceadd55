package middleware

import (
	"strings"

	"ascend/internal/delivery/http/response"
	"ascend/internal/domain/entity"
	"ascend/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for handlers to read.
const (
	KeyUserID   = "userID"
	KeyIdentity = "identity"
)

// AuthMiddleware verifies the identity-provider bearer token on every
// request. Session creation happens at the provider; here we only project the
// verified identity onto the request context.
type AuthMiddleware struct {
	verifier service.IdentityVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.IdentityVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate validates the bearer ID token and stores the verified
// identity on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		identity, err := m.verifier.Verify(c.Request().Context(), tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(KeyUserID, identity.ID)
		c.Set(KeyIdentity, identity)

		return next(c)
	}
}

// UserID returns the authenticated user ID set by Authenticate.
func UserID(c echo.Context) (string, bool) {
	id, ok := c.Get(KeyUserID).(string)

	return id, ok && id != ""
}

// Identity returns the verified identity set by Authenticate.
func Identity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(KeyIdentity).(*entity.Identity)

	return identity, ok && identity != nil
}
