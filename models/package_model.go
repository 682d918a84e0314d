package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Package is the UI-facing shape of a catalog entry. JSON field names are
// camelCase because the admin frontend reads and writes this shape directly.
type Package struct {
	PackageID            string   `json:"packageId"`
	Category             string   `json:"category" validate:"required,oneof=3-star 4-star 5-star ramadan"`
	PackageTitle         string   `json:"packageTitle" validate:"required"`
	HotelMakkah          string   `json:"hotelMakkah"`
	HotelMakkahDistance  string   `json:"hotelMakkahDistance"`
	HotelMadinah         string   `json:"hotelMadinah"`
	HotelMadinahDistance string   `json:"hotelMadinahDistance"`
	NightsMakkah         int      `json:"nightsMakkah" validate:"gte=0"`
	NightsMadinah        int      `json:"nightsMadinah" validate:"gte=0"`
	TransportType        string   `json:"transportType"`
	Price                string   `json:"price"`
	Currency             string   `json:"currency"`
	Duration             string   `json:"duration"`
	Inclusions           []string `json:"inclusions"`
	Exclusions           []string `json:"exclusions"`
	Badge                *string  `json:"badge"`
	ImageURL             *string  `json:"imageUrl"`
	Featured             bool     `json:"featured"`
}

// Normalize fills the documented defaults for absent optional fields, so
// every persisted package carries a currency and non-null list fields.
func (p *Package) Normalize() {
	if p.Currency == "" {
		p.Currency = "GBP"
	}
	if p.Inclusions == nil {
		p.Inclusions = []string{}
	}
	if p.Exclusions == nil {
		p.Exclusions = []string{}
	}
}

// PackagePatch is a partial update. Only non-nil fields are applied; the
// package id is immutable and has no patch field.
type PackagePatch struct {
	Category             *string   `json:"category" validate:"omitempty,oneof=3-star 4-star 5-star ramadan"`
	PackageTitle         *string   `json:"packageTitle" validate:"omitempty,min=1"`
	HotelMakkah          *string   `json:"hotelMakkah"`
	HotelMakkahDistance  *string   `json:"hotelMakkahDistance"`
	HotelMadinah         *string   `json:"hotelMadinah"`
	HotelMadinahDistance *string   `json:"hotelMadinahDistance"`
	NightsMakkah         *int      `json:"nightsMakkah" validate:"omitempty,gte=0"`
	NightsMadinah        *int      `json:"nightsMadinah" validate:"omitempty,gte=0"`
	TransportType        *string   `json:"transportType"`
	Price                *string   `json:"price"`
	Currency             *string   `json:"currency"`
	Duration             *string   `json:"duration"`
	Inclusions           *[]string `json:"inclusions"`
	Exclusions           *[]string `json:"exclusions"`
	Badge                *string   `json:"badge"`
	ImageURL             *string   `json:"imageUrl"`
	Featured             *bool     `json:"featured"`
}

// Apply merges the non-nil patch fields into pkg.
func (p PackagePatch) Apply(pkg *Package) {
	if p.Category != nil {
		pkg.Category = *p.Category
	}
	if p.PackageTitle != nil {
		pkg.PackageTitle = *p.PackageTitle
	}
	if p.HotelMakkah != nil {
		pkg.HotelMakkah = *p.HotelMakkah
	}
	if p.HotelMakkahDistance != nil {
		pkg.HotelMakkahDistance = *p.HotelMakkahDistance
	}
	if p.HotelMadinah != nil {
		pkg.HotelMadinah = *p.HotelMadinah
	}
	if p.HotelMadinahDistance != nil {
		pkg.HotelMadinahDistance = *p.HotelMadinahDistance
	}
	if p.NightsMakkah != nil {
		pkg.NightsMakkah = *p.NightsMakkah
	}
	if p.NightsMadinah != nil {
		pkg.NightsMadinah = *p.NightsMadinah
	}
	if p.TransportType != nil {
		pkg.TransportType = *p.TransportType
	}
	if p.Price != nil {
		pkg.Price = *p.Price
	}
	if p.Currency != nil {
		pkg.Currency = *p.Currency
	}
	if p.Duration != nil {
		pkg.Duration = *p.Duration
	}
	if p.Inclusions != nil {
		pkg.Inclusions = *p.Inclusions
	}
	if p.Exclusions != nil {
		pkg.Exclusions = *p.Exclusions
	}
	if p.Badge != nil {
		pkg.Badge = p.Badge
	}
	if p.ImageURL != nil {
		pkg.ImageURL = p.ImageURL
	}
	if p.Featured != nil {
		pkg.Featured = *p.Featured
	}
}

// PackageRow is the relational shape of a catalog entry. The uuid primary
// key is a surrogate; package_id is the public identifier and carries the
// unique index.
type PackageRow struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PackageID            string         `gorm:"size:64;not null;uniqueIndex"`
	Category             string         `gorm:"size:20;not null"`
	PackageTitle         string         `gorm:"size:255;not null"`
	HotelMakkah          string         `gorm:"size:255"`
	HotelMakkahDistance  string         `gorm:"size:100"`
	HotelMadinah         string         `gorm:"size:255"`
	HotelMadinahDistance string         `gorm:"size:100"`
	NightsMakkah         int            `gorm:"not null;default:0"`
	NightsMadinah        int            `gorm:"not null;default:0"`
	TransportType        string         `gorm:"size:100"`
	Price                string         `gorm:"size:50"`
	Currency             string         `gorm:"size:10;not null;default:'GBP'"`
	Duration             string         `gorm:"size:100"`
	Inclusions           pq.StringArray `gorm:"type:text[]"`
	Exclusions           pq.StringArray `gorm:"type:text[]"`
	Badge                *string        `gorm:"size:100"`
	ImageURL             *string        `gorm:"size:512;column:image_url"`
	Featured             bool           `gorm:"not null;default:false"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (PackageRow) TableName() string {
	return "packages"
}
