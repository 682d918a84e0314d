package models

import (
	"errors"
	"fmt"
)

var ErrInvalidCategory = errors.New("invalid category")

const (
	CategoryThreeStar = "3-star"
	CategoryFourStar  = "4-star"
	CategoryFiveStar  = "5-star"
	CategoryRamadan   = "ramadan"
)

// Categories lists every valid package category in display order.
var Categories = []string{CategoryThreeStar, CategoryFourStar, CategoryFiveStar, CategoryRamadan}

var bucketKeys = map[string]string{
	CategoryThreeStar: "threeStarPackages",
	CategoryFourStar:  "fourStarPackages",
	CategoryFiveStar:  "fiveStarPackages",
	CategoryRamadan:   "ramadanPackages",
}

// BucketFor maps a category to its catalog bucket key.
func BucketFor(category string) (string, error) {
	key, ok := bucketKeys[category]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
	return key, nil
}

func ValidCategory(category string) bool {
	_, ok := bucketKeys[category]
	return ok
}
