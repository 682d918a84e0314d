package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateImage(t *testing.T) {
	cases := []struct {
		name        string
		size        int
		contentType string
		wantErr     error
	}{
		{"png within limit", 1 << 20, "image/png", nil},
		{"jpeg within limit", 1024, "image/jpeg", nil},
		{"webp within limit", 1024, "image/webp", nil},
		{"uppercase type accepted", 1024, "IMAGE/PNG", nil},
		{"at the limit", MaxImageSize, "image/jpeg", nil},
		{"oversized", 6 << 20, "image/png", ErrImageTooLarge},
		{"gif rejected", 1024, "image/gif", ErrImageType},
		{"svg rejected", 1024, "image/svg+xml", ErrImageType},
		{"empty type rejected", 1024, "", ErrImageType},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateImage(tc.size, tc.contentType)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestNewImageStoreRequiresConfiguration(t *testing.T) {
	_, err := NewImageStore("")
	assert.ErrorContains(t, err, "CLOUDINARY_URL")
}
