package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/madinahgate/umrah_travel/handlers"
)

func ContactRoutes(app *fiber.App, h *handlers.ContactHandler) {
	api := app.Group("/api")
	api.Post("/contact", h.SubmitContact)
}
