package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/madinahgate/umrah_travel/handlers"
)

func PackageRoutes(app *fiber.App, h *handlers.PackageHandler) {
	api := app.Group("/api")
	api.Get("/packages", h.GetPackages)
	api.Post("/packages", h.CreatePackage)
	api.Put("/packages/:id", h.UpdatePackage)
	api.Delete("/packages/:id", h.DeletePackage)
}
