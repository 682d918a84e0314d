package handlers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/madinahgate/umrah_travel/catalog"
	"github.com/madinahgate/umrah_travel/models"
	"github.com/madinahgate/umrah_travel/storage"
)

var validate = validator.New()

// PackageHandler is the thin HTTP adapter over the catalog service.
type PackageHandler struct {
	service *catalog.Service
}

func NewPackageHandler(service *catalog.Service) *PackageHandler {
	return &PackageHandler{service: service}
}

func (h *PackageHandler) GetPackages(c *fiber.Ctx) error {
	grouped, err := h.service.ListPackages(c.Context())
	if err != nil {
		log.Printf("🔥 Failed to read packages: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch packages", "details": err.Error()})
	}
	return c.JSON(grouped)
}

func (h *PackageHandler) CreatePackage(c *fiber.Ctx) error {
	var pkg models.Package
	if err := c.BodyParser(&pkg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(pkg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Category and package title are required", "details": err.Error()})
	}

	created, err := h.service.CreatePackage(c.Context(), pkg)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCategory) || errors.Is(err, catalog.ErrMissingFields) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("🔥 Failed to add package: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add package", "details": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "package": created})
}

func (h *PackageHandler) UpdatePackage(c *fiber.Ctx) error {
	packageID := c.Params("id")

	var patch models.PackagePatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category", "details": err.Error()})
	}

	updated, err := h.service.UpdatePackage(c.Context(), packageID, patch)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCategory) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Package not found"})
		}
		log.Printf("🔥 Failed to update package %s: %v", packageID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update package", "details": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "package": updated})
}

func (h *PackageHandler) DeletePackage(c *fiber.Ctx) error {
	packageID := c.Params("id")

	if err := h.service.DeletePackage(c.Context(), packageID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Package not found"})
		}
		log.Printf("🔥 Failed to delete package %s: %v", packageID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete package", "details": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true})
}
