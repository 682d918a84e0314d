package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/madinahgate/umrah_travel/models"
	"github.com/stretchr/testify/assert"
)

func TestGeneratePackageIDFormat(t *testing.T) {
	cases := []struct {
		category string
		pattern  string
	}{
		{models.CategoryThreeStar, `^3star-\d+$`},
		{models.CategoryFourStar, `^4star-\d+$`},
		{models.CategoryFiveStar, `^5star-\d+$`},
		{models.CategoryRamadan, `^ramadan-\d+$`},
	}

	for _, tc := range cases {
		id := GeneratePackageID(tc.category)
		assert.Regexp(t, regexp.MustCompile(tc.pattern), id)
	}
}

func TestGeneratePackageIDUniqueAcrossMilliseconds(t *testing.T) {
	first := GeneratePackageID(models.CategoryThreeStar)
	time.Sleep(2 * time.Millisecond)
	second := GeneratePackageID(models.CategoryThreeStar)

	assert.NotEqual(t, first, second)
}

func TestGenerateImageFilename(t *testing.T) {
	cases := []struct {
		name     string
		original string
		pattern  string
	}{
		{"keeps extension", "hotel.png", `^image-\d+-\d+\.png$`},
		{"lowercases extension", "HOTEL.JPG", `^image-\d+-\d+\.jpg$`},
		{"defaults to jpg", "hotel", `^image-\d+-\d+\.jpg$`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Regexp(t, regexp.MustCompile(tc.pattern), GenerateImageFilename(tc.original))
		})
	}
}
