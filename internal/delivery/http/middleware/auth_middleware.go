package middleware

import (
	"strings"

	"petlink/internal/delivery/http/response"
	"petlink/internal/domain/entity"
	domainerrors "petlink/internal/domain/errors"
	"petlink/internal/domain/service"
	"petlink/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ContextKeyCurrentUser is where Authenticate stores the resolved account.
const ContextKeyCurrentUser = "currentUser"

// AuthMiddleware authenticates requests against the external identity
// provider and resolves the caller's stored profile.
type AuthMiddleware struct {
	verifier service.TokenVerifier
	userUC   usecase.UserUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier, userUC usecase.UserUsecase) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, userUC: userUC}
}

// Authenticate validates the bearer ID token and loads the caller's account
// document onto the request context. A verified identity without a stored
// profile still passes: the registration endpoint needs exactly that state,
// and role checks treat a missing profile as a plain user.
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

		ctx := c.Request().Context()

		uid, err := m.verifier.VerifyIDToken(ctx, tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		user, err := m.userUC.GetUser(ctx, uid)
		if err != nil {
			return err
		}
		if user == nil {
			user = &entity.AppUser{UID: uid, Role: entity.RoleUser}
		}

		c.Set(ContextKeyCurrentUser, user)

		return next(c)
	}
}

// RequireRole checks that the authenticated caller holds the given role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if user.EffectiveRole() != requiredRole {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

// RequireWriteAccess rejects mutating calls from read-only roles. Hiding
// buttons client-side is not enforcement; the demo account gets stopped
// here regardless of what the UI allows.
func (m *AuthMiddleware) RequireWriteAccess(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := CurrentUser(c)
		if user != nil && !user.EffectiveRole().CanWrite() {
			return domainerrors.ErrDemoReadOnly
		}

		return next(c)
	}
}

// CurrentUser returns the account Authenticate stored on the context, or
// nil when the request is unauthenticated.
func CurrentUser(c echo.Context) *entity.AppUser {
	user, _ := c.Get(ContextKeyCurrentUser).(*entity.AppUser)

	return user
}
