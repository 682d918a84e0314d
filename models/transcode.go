package models

// ToRow converts a package to its relational shape, substituting the default
// value for every absent optional field.
func ToRow(pkg Package) PackageRow {
	inclusions := pkg.Inclusions
	if inclusions == nil {
		inclusions = []string{}
	}
	exclusions := pkg.Exclusions
	if exclusions == nil {
		exclusions = []string{}
	}
	currency := pkg.Currency
	if currency == "" {
		currency = "GBP"
	}

	return PackageRow{
		PackageID:            pkg.PackageID,
		Category:             pkg.Category,
		PackageTitle:         pkg.PackageTitle,
		HotelMakkah:          pkg.HotelMakkah,
		HotelMakkahDistance:  pkg.HotelMakkahDistance,
		HotelMadinah:         pkg.HotelMadinah,
		HotelMadinahDistance: pkg.HotelMadinahDistance,
		NightsMakkah:         pkg.NightsMakkah,
		NightsMadinah:        pkg.NightsMadinah,
		TransportType:        pkg.TransportType,
		Price:                pkg.Price,
		Currency:             currency,
		Duration:             pkg.Duration,
		Inclusions:           inclusions,
		Exclusions:           exclusions,
		Badge:                pkg.Badge,
		ImageURL:             pkg.ImageURL,
		Featured:             pkg.Featured,
	}
}

// FromRow converts a relational row back to the UI-facing shape, applying the
// same default substitution to values the database stored as empty or null.
func FromRow(row PackageRow) Package {
	inclusions := []string(row.Inclusions)
	if inclusions == nil {
		inclusions = []string{}
	}
	exclusions := []string(row.Exclusions)
	if exclusions == nil {
		exclusions = []string{}
	}
	currency := row.Currency
	if currency == "" {
		currency = "GBP"
	}

	return Package{
		PackageID:            row.PackageID,
		Category:             row.Category,
		PackageTitle:         row.PackageTitle,
		HotelMakkah:          row.HotelMakkah,
		HotelMakkahDistance:  row.HotelMakkahDistance,
		HotelMadinah:         row.HotelMadinah,
		HotelMadinahDistance: row.HotelMadinahDistance,
		NightsMakkah:         row.NightsMakkah,
		NightsMadinah:        row.NightsMadinah,
		TransportType:        row.TransportType,
		Price:                row.Price,
		Currency:             currency,
		Duration:             row.Duration,
		Inclusions:           inclusions,
		Exclusions:           exclusions,
		Badge:                row.Badge,
		ImageURL:             row.ImageURL,
		Featured:             row.Featured,
	}
}
