package utils

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/madinahgate/umrah_travel/models"
)

// GeneratePackageID builds a package id of the form <prefix>-<unix-millis>,
// where the prefix is "ramadan" or the star count with the hyphen stripped
// ("3-star" becomes "3star"). Two packages created for the same category
// within the same millisecond would collide; creation is human-triggered, so
// this is an accepted limitation. External tooling depends on the
// <prefix>-<digits> format.
func GeneratePackageID(category string) string {
	prefix := category
	if category != models.CategoryRamadan {
		prefix = strings.Replace(category, "-star", "star", 1)
	}
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixMilli())
}

// GenerateImageFilename produces a collision-resistant storage name for an
// uploaded image, keeping the original extension and falling back to .jpg
// when the original name has none.
func GenerateImageFilename(originalName string) string {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = ".jpg"
	}
	return fmt.Sprintf("image-%d-%d%s", time.Now().UnixMilli(), seededRand.Intn(1_000_000_000), ext)
}
