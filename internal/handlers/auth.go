package handlers

import (
	"payfee/internal/services/auth"
	"payfee/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles admin authentication and returns a JWT access token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if input.Username == "" || input.Password == "" {
		return response.BadRequest(c, "Username and password are required")
	}

	token, claims, err := h.authService.Login(c.UserContext(), input.Username, input.Password)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "Login successful", fiber.Map{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_at":   claims.ExpiresAt.Time,
		"user": fiber.Map{
			"username":    claims.Username,
			"role":        claims.Role,
			"permissions": claims.Permissions,
		},
	})
}
