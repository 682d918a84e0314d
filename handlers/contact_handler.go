package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/madinahgate/umrah_travel/notifications"
)

// ContactHandler relays website enquiries to the agency inbox.
type ContactHandler struct {
	emails *notifications.BrevoService
}

func NewContactHandler(emails *notifications.BrevoService) *ContactHandler {
	return &ContactHandler{emails: emails}
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,min=10"`
	Message string `json:"message" validate:"required,min=10"`
}

func (h *ContactHandler) SubmitContact(c *fiber.Ctx) error {
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	go h.emails.SendContactMessage(notifications.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})

	return c.JSON(fiber.Map{"success": true})
}
