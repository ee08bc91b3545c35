package handlers

import (
	"payfee/internal/services/catalog"
	"payfee/internal/utils/pagination"
	"payfee/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	catalogService catalog.Service
}

func NewProductHandler(catalogService catalog.Service) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var input catalog.CreateProductInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	product, err := h.catalogService.CreateProduct(c.UserContext(), input)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Created(c, "Product created", product)
}

func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)

	products, total, err := h.catalogService.ListProducts(c.UserContext(), p.Limit, p.Offset)
	if err != nil {
		return response.FromError(c, err)
	}
	p.Total = total

	return c.JSON(pagination.Response(p, products))
}

// SetFeeExclusion toggles the product's "exclude from payment fee" checkbox.
func (h *ProductHandler) SetFeeExclusion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid product ID")
	}

	var input struct {
		Excluded *bool `json:"excluded_from_fee"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if input.Excluded == nil {
		return response.ValidationError(c, map[string]string{"excluded_from_fee": "is required"})
	}

	product, err := h.catalogService.SetExcluded(c.UserContext(), uint(id), *input.Excluded)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Product updated", product)
}
