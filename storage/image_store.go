package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/madinahgate/umrah_travel/utils"
)

// ImageFolder is the fixed folder every package image is stored under.
const ImageFolder = "HotelPictures"

// MaxImageSize is the upload size cap in bytes.
const MaxImageSize = 5 * 1024 * 1024

var ErrImageTooLarge = fmt.Errorf("file size must be less than 5MB")
var ErrImageType = errors.New("invalid file type, only JPEG, PNG and WebP are allowed")

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// ValidateImage checks the upload against the MIME allow-list and the size
// cap. It runs before any bytes are sent to storage.
func ValidateImage(size int, contentType string) error {
	if !allowedImageTypes[strings.ToLower(contentType)] {
		return ErrImageType
	}
	if size > MaxImageSize {
		return ErrImageTooLarge
	}
	return nil
}

// ImageStore uploads package images to Cloudinary under ImageFolder.
type ImageStore struct {
	cld *cloudinary.Cloudinary
}

// NewImageStore builds the store from a cloudinary:// URL. An empty or
// malformed URL is a startup failure, not something to defer to first use.
func NewImageStore(cloudinaryURL string) (*ImageStore, error) {
	if cloudinaryURL == "" {
		return nil, errors.New("CLOUDINARY_URL is not set, image uploads require a configured Cloudinary account")
	}
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &ImageStore{cld: cld}, nil
}

// Upload validates the image and writes it to object storage, returning the
// public URL. The stored name keeps the original extension with a timestamp
// and random suffix, so retries never overwrite an earlier upload.
func (s *ImageStore) Upload(ctx context.Context, data []byte, filename, contentType string) (string, error) {
	if err := ValidateImage(len(data), contentType); err != nil {
		return "", err
	}

	storedName := utils.GenerateImageFilename(filename)
	publicID := strings.TrimSuffix(storedName, filepath.Ext(storedName))

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	result, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder:   ImageFolder,
		PublicID: publicID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("failed to upload image: %s", result.Error.Message)
	}

	return result.SecureURL, nil
}
