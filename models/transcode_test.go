package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func fullPackage() Package {
	return Package{
		PackageID:            "5star-1700000000000",
		Category:             CategoryFiveStar,
		PackageTitle:         "Luxury Umrah",
		HotelMakkah:          "Swissotel Makkah",
		HotelMakkahDistance:  "100m",
		HotelMadinah:         "Anwar Al Madinah",
		HotelMadinahDistance: "50m",
		NightsMakkah:         5,
		NightsMadinah:        5,
		TransportType:        "Private car",
		Price:                "£1,499",
		Currency:             "GBP",
		Duration:             "10 Days",
		Inclusions:           []string{"Visa", "Flights", "Transfers"},
		Exclusions:           []string{"Lunch"},
		Badge:                strPtr("Best Seller"),
		ImageURL:             strPtr("https://example.com/hotel.jpg"),
		Featured:             true,
	}
}

func TestTranscodeRoundTrip(t *testing.T) {
	pkg := fullPackage()
	got := FromRow(ToRow(pkg))
	assert.Equal(t, pkg, got)
}

func TestTranscodeDefaultSubstitution(t *testing.T) {
	pkg := Package{
		PackageID:    "3star-1700000000000",
		Category:     CategoryThreeStar,
		PackageTitle: "Economy Umrah",
		HotelMakkah:  "Hotel A",
		HotelMadinah: "Hotel B",
		Price:        "£349",
		Duration:     "7 Days",
	}

	got := FromRow(ToRow(pkg))

	assert.Equal(t, "", got.HotelMakkahDistance)
	assert.Equal(t, "", got.TransportType)
	assert.Equal(t, "GBP", got.Currency)
	assert.Equal(t, []string{}, got.Inclusions)
	assert.Equal(t, []string{}, got.Exclusions)
	assert.Nil(t, got.Badge)
	assert.Nil(t, got.ImageURL)
	assert.False(t, got.Featured)
}

func TestPatchApply(t *testing.T) {
	pkg := fullPackage()
	title := "Premium Umrah"
	featured := false
	patch := PackagePatch{
		PackageTitle: &title,
		Featured:     &featured,
	}

	patch.Apply(&pkg)

	assert.Equal(t, "Premium Umrah", pkg.PackageTitle)
	assert.False(t, pkg.Featured)
	// Untouched fields survive the merge.
	assert.Equal(t, CategoryFiveStar, pkg.Category)
	assert.Equal(t, "£1,499", pkg.Price)
	assert.Equal(t, []string{"Visa", "Flights", "Transfers"}, pkg.Inclusions)
}

func TestGroupedPackagesEmptyBucketsSerializeAsArrays(t *testing.T) {
	data, err := json.Marshal(NewGroupedPackages())
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"threeStarPackages": [],
		"fourStarPackages": [],
		"fiveStarPackages": [],
		"ramadanPackages": []
	}`, string(data))
}
