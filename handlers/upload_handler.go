package handlers

import (
	"encoding/base64"
	"errors"
	"io"
	"log"
	"regexp"

	"github.com/gofiber/fiber/v2"
	"github.com/madinahgate/umrah_travel/storage"
)

var dataURLPrefix = regexp.MustCompile(`^data:image/\w+;base64,`)

// UploadHandler accepts package images either as a multipart form with an
// "image" file field or as a JSON body carrying a base64 payload, and stores
// them through the image store.
type UploadHandler struct {
	images *storage.ImageStore
}

func NewUploadHandler(images *storage.ImageStore) *UploadHandler {
	return &UploadHandler{images: images}
}

type base64UploadRequest struct {
	Image    string `json:"image" validate:"required"`
	Filename string `json:"filename" validate:"required"`
	FileType string `json:"fileType"`
}

func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	data, filename, contentType, err := parseUpload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	imageURL, err := h.images.Upload(c.Context(), data, filename, contentType)
	if err != nil {
		if errors.Is(err, storage.ErrImageType) || errors.Is(err, storage.ErrImageTooLarge) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("🔥 Image upload failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to upload image",
			"details": err.Error() + ". Check the Cloudinary account configured via CLOUDINARY_URL.",
		})
	}

	return c.JSON(fiber.Map{"success": true, "imageUrl": imageURL})
}

func parseUpload(c *fiber.Ctx) (data []byte, filename, contentType string, err error) {
	if file, ferr := c.FormFile("image"); ferr == nil {
		f, oerr := file.Open()
		if oerr != nil {
			return nil, "", "", errors.New("failed to read uploaded file")
		}
		defer f.Close()

		buf, rerr := io.ReadAll(f)
		if rerr != nil {
			return nil, "", "", errors.New("failed to read uploaded file")
		}
		return buf, file.Filename, file.Header.Get("Content-Type"), nil
	}

	var req base64UploadRequest
	if perr := c.BodyParser(&req); perr != nil {
		return nil, "", "", errors.New("no image file provided")
	}
	if verr := validate.Struct(req); verr != nil {
		return nil, "", "", errors.New("image data and filename are required")
	}

	raw := dataURLPrefix.ReplaceAllString(req.Image, "")
	decoded, derr := base64.StdEncoding.DecodeString(raw)
	if derr != nil {
		return nil, "", "", errors.New("invalid base64 image data")
	}

	contentType = req.FileType
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return decoded, req.Filename, contentType, nil
}
