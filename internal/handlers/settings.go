package handlers

import (
	"payfee/internal/middleware"
	"payfee/internal/services/settings"
	"payfee/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// SettingsHandler serves the admin payment fee settings page.
type SettingsHandler struct {
	settingsService settings.Service
}

func NewSettingsHandler(settingsService settings.Service) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	view, err := h.settingsService.GetSettings(c.UserContext())
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Payment fee settings", view)
}

func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	claims, ok := middleware.Claims(c)
	if !ok {
		return response.Unauthorized(c)
	}

	var input settings.UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	view, err := h.settingsService.Update(c.UserContext(), input, claims.Username)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Payment fee settings saved", view)
}

func (h *SettingsHandler) ListGateways(c *fiber.Ctx) error {
	gateways, err := h.settingsService.Gateways(c.UserContext())
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Payment gateways", gateways)
}
