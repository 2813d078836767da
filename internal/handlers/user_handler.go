package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/middleware"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/models"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/services"
)

type UserHandler struct {
	auth *services.AuthService
}

func NewUserHandler(auth *services.AuthService) *UserHandler {
	return &UserHandler{auth: auth}
}

// GetUser handles GET /user/:email. Users read their own record; admins
// read anyone's.
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
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

	user, err := h.auth.GetUser(c.Context(), target)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// ListUsers handles GET /users (admin only, gated at the route).
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.auth.ListUsers(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// CheckAdmin handles GET /users/admin/:email. The path email must match the
// token claim; the answer comes from the stored role, not the token.
func (h *UserHandler) CheckAdmin(c *fiber.Ctx) error {
	email := c.Params("email")
	if email != middleware.Email(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden access"})
	}

	isAdmin, err := h.auth.IsAdmin(c.Context(), email)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"admin": isAdmin})
}

// UpdateRole handles PATCH /users/role/:id with the role in the body.
func (h *UserHandler) UpdateRole(c *fiber.Ctx) error {
	var request struct {
		Role string `json:"role"`
	}
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	return h.setRole(c, request.Role)
}

// MakeAdmin handles the legacy PATCH /users/admin/:id shortcut.
func (h *UserHandler) MakeAdmin(c *fiber.Ctx) error {
	return h.setRole(c, string(models.RoleAdmin))
}

// MakeSeller handles the legacy PATCH /users/seller/:id shortcut.
func (h *UserHandler) MakeSeller(c *fiber.Ctx) error {
	return h.setRole(c, string(models.RoleSeller))
}

func (h *UserHandler) setRole(c *fiber.Ctx, role string) error {
	modified, err := h.auth.UpdateRole(c.Context(), c.Params("id"), role)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"modifiedCount": modified})
}
