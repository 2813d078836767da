package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/models"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/services"
)

type CartHandler struct {
	carts *services.CartService
}

func NewCartHandler(carts *services.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// Add handles POST /carts.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var item models.CartItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	id, err := h.carts.Add(c.Context(), item)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"insertedId": id})
}

// List handles GET /carts with an optional ?email= filter.
func (h *CartHandler) List(c *fiber.Ctx) error {
	items, err := h.carts.List(c.Context(), c.Query("email"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// UpdateQuantity handles PATCH /carts/:id.
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	var request struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	modified, err := h.carts.UpdateQuantity(c.Context(), c.Params("id"), request.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"modifiedCount": modified})
}

// Remove handles DELETE /carts/:id.
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	deleted, err := h.carts.Remove(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"deletedCount": deleted})
}
