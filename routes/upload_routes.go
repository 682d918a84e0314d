package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/madinahgate/umrah_travel/handlers"
)

func UploadRoutes(app *fiber.App, h *handlers.UploadHandler) {
	api := app.Group("/api")
	api.Post("/upload-image", h.UploadImage)
}
