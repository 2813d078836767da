package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/middleware"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/models"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/services"
)

type PaymentHandler struct {
	payments *services.PaymentService
	auth     *services.AuthService
}

func NewPaymentHandler(payments *services.PaymentService, auth *services.AuthService) *PaymentHandler {
	return &PaymentHandler{payments: payments, auth: auth}
}

// CreateIntent handles POST /create-payment-intent. The provider is never
// called for a missing or non-positive price.
func (h *PaymentHandler) CreateIntent(c *fiber.Ctx) error {
	var request struct {
		Price float64 `json:"price"`
	}
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid price value"})
	}

	clientSecret, err := h.payments.CreateIntent(c.Context(), request.Price)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"clientSecret": clientSecret})
}

// Settle handles POST /payments: record the payment, then clear its cart
// items. Both results go back to the caller.
func (h *PaymentHandler) Settle(c *fiber.Ctx) error {
	var payment models.Payment
	if err := c.BodyParser(&payment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	result, err := h.payments.Settle(c.Context(), payment)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"paymentResult": fiber.Map{"insertedId": result.PaymentID},
		"deleteResult":  fiber.Map{"deletedCount": result.DeletedCarts},
	})
}

// List handles GET /payments (admin only, gated at the route).
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	payments, err := h.payments.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(payments)
}

// ListByEmail handles GET /payments/:email. Buyers read their own history;
// admins read anyone's.
func (h *PaymentHandler) ListByEmail(c *fiber.Ctx) error {
	target := c.Params("email")
	requester := middleware.Email(c)
	if requester != target {
		isAdmin, err := h.auth.IsAdmin(c.Context(), requester)
		if err != nil {
			return respondError(c, err)
		}
		if !isAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden access"})
		}
	}

	payments, err := h.payments.ListByEmail(c.Context(), target)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(payments)
}

// MarkPaid handles PATCH /payments/:id (admin only, gated at the route).
func (h *PaymentHandler) MarkPaid(c *fiber.Ctx) error {
	modified, err := h.payments.MarkPaid(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"modifiedCount": modified})
}
