package middleware

import (
	"strings"

	"padhobadho/internal/domain"
	"padhobadho/internal/dto"
	"padhobadho/internal/logger"
	"padhobadho/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	UserIDKey           = "userID" // Key for storing UserID in fiber.Ctx locals
	RoleKey             = "role"
)

// Protected requires a valid bearer token and stores the user id and role in locals.
func Protected(tokenService service.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(AuthorizationHeader)
		if authHeader == "" {
			return domain.NewUnauthorizedError("Authorization header is missing")
		}
		if !strings.HasPrefix(authHeader, BearerSchema) {
			return domain.NewUnauthorizedError("Authorization scheme is not Bearer")
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerSchema))
		if tokenString == "" {
			return domain.NewUnauthorizedError("Token is empty")
		}

		claims, err := tokenService.ValidateJWT(tokenString)
		if err != nil {
			logger.Get().Debug("JWT validation failed", zap.Error(err))
			return domain.NewError(domain.CodeUnauthorized, "Invalid token", err)
		}

		c.Locals(UserIDKey, claims.UserID)
		c.Locals(RoleKey, claims.Role)
		return c.Next()
	}
}

// RequireRole must run after Protected.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if r, _ := c.Locals(RoleKey).(string); r != role {
			return domain.NewForbiddenError("insufficient role")
		}
		return c.Next()
	}
}

// RequireAdmin is RequireRole for the admin role.
func RequireAdmin() fiber.Handler {
	return RequireRole(dto.RoleAdmin)
}

// CurrentUserID returns the authenticated user id or "".
func CurrentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(UserIDKey).(string)
	return id
}
