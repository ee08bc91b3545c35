package handlers

import (
	"payfee/internal/services/checkout"
	"payfee/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CartHandler serves the storefront cart and checkout endpoints.
type CartHandler struct {
	checkoutService checkout.Service
}

func NewCartHandler(checkoutService checkout.Service) *CartHandler {
	return &CartHandler{checkoutService: checkoutService}
}

func cartID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	return id, err == nil
}

func (h *CartHandler) CreateCart(c *fiber.Ctx) error {
	cart, err := h.checkoutService.CreateCart(c.UserContext())
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Created(c, "Cart created", cart)
}

func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	id, ok := cartID(c)
	if !ok {
		return response.BadRequest(c, "Invalid cart ID")
	}

	cart, err := h.checkoutService.GetCart(c.UserContext(), id)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Cart", cart)
}

func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	id, ok := cartID(c)
	if !ok {
		return response.BadRequest(c, "Invalid cart ID")
	}

	var input checkout.AddItemInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	cart, err := h.checkoutService.AddItem(c.UserContext(), id, input)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Item added", cart)
}

func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	id, ok := cartID(c)
	if !ok {
		return response.BadRequest(c, "Invalid cart ID")
	}
	productID, err := c.ParamsInt("productId")
	if err != nil || productID <= 0 {
		return response.BadRequest(c, "Invalid product ID")
	}

	cart, err := h.checkoutService.RemoveItem(c.UserContext(), id, uint(productID))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Item removed", cart)
}

// Recalculate refreshes the order review totals after the buyer picks a
// payment method.
func (h *CartHandler) Recalculate(c *fiber.Ctx) error {
	id, ok := cartID(c)
	if !ok {
		return response.BadRequest(c, "Invalid cart ID")
	}

	var input checkout.RecalculateInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	totals, err := h.checkoutService.Recalculate(c.UserContext(), id, input)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Checkout totals", totals)
}

func (h *CartHandler) PlaceOrder(c *fiber.Ctx) error {
	id, ok := cartID(c)
	if !ok {
		return response.BadRequest(c, "Invalid cart ID")
	}

	var input checkout.PlaceOrderInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	order, err := h.checkoutService.PlaceOrder(c.UserContext(), id, input)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Created(c, "Order placed", order)
}

// GetOrder serves the order-received page for a cart that was checked out.
func (h *CartHandler) GetOrder(c *fiber.Ctx) error {
	id, ok := cartID(c)
	if !ok {
		return response.BadRequest(c, "Invalid cart ID")
	}

	order, err := h.checkoutService.GetOrder(c.UserContext(), id)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Order", order)
}
