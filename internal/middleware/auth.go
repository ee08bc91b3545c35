// Package middleware provides HTTP middleware components for the application.
// It covers authentication and authorization of the admin surface.
package middleware

import (
	"strings"

	"payfee/internal/models"
	"payfee/internal/services/auth"
	"payfee/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

const claimsKey = "claims"

// TokenParser validates bearer tokens.
type TokenParser interface {
	ParseToken(tokenString string) (*models.AdminClaims, error)
}

// AuthMiddleware handles JWT token validation.
// It extracts the token from the Authorization header, validates it,
// and adds the admin claims to the request context.
type AuthMiddleware struct {
	parser TokenParser
}

func NewAuthMiddleware(parser TokenParser) *AuthMiddleware {
	return &AuthMiddleware{parser: parser}
}

// Handler rejects requests without a valid, unexpired bearer token.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return response.Error(c, fiber.StatusUnauthorized, "missing authorization header")
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return response.Error(c, fiber.StatusUnauthorized, "invalid authorization format")
	}

	claims, err := m.parser.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		log.Debug().Err(err).Str("path", c.Path()).Msg("Token validation failed")
		return response.FromError(c, auth.ErrInvalidToken)
	}

	c.Locals(claimsKey, claims)
	return c.Next()
}

// AdminOnly verifies that the authenticated caller has the admin role.
func AdminOnly(c *fiber.Ctx) error {
	claims, ok := Claims(c)
	if !ok {
		return response.Unauthorized(c)
	}

	if claims.Role != models.RoleAdmin {
		log.Warn().Str("username", claims.Username).Str("role", claims.Role).Msg("Admin access denied")
		return response.Forbidden(c)
	}

	return c.Next()
}

// HasPermission returns a middleware that checks for a specific permission.
func HasPermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := Claims(c)
		if !ok {
			return response.Unauthorized(c)
		}
		if !claims.HasPermission(permission) {
			return response.Forbidden(c)
		}
		return c.Next()
	}
}

// Claims returns the admin claims stored by Handler.
func Claims(c *fiber.Ctx) (*models.AdminClaims, bool) {
	claims, ok := c.Locals(claimsKey).(*models.AdminClaims)
	return claims, ok && claims != nil
}
