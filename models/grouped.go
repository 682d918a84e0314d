package models

// GroupedPackages is the catalog partitioned into its four category buckets.
// It is both the persisted shape of the catalog file and the GET /api/packages
// response body.
type GroupedPackages struct {
	ThreeStarPackages []Package `json:"threeStarPackages"`
	FourStarPackages  []Package `json:"fourStarPackages"`
	FiveStarPackages  []Package `json:"fiveStarPackages"`
	RamadanPackages   []Package `json:"ramadanPackages"`
}

// NewGroupedPackages returns an empty catalog with every bucket allocated, so
// empty buckets serialize as [] rather than null.
func NewGroupedPackages() GroupedPackages {
	return GroupedPackages{
		ThreeStarPackages: []Package{},
		FourStarPackages:  []Package{},
		FiveStarPackages:  []Package{},
		RamadanPackages:   []Package{},
	}
}

// Bucket returns the slice holding the given category, or nil for a category
// outside the four buckets.
func (g *GroupedPackages) Bucket(category string) *[]Package {
	switch category {
	case CategoryThreeStar:
		return &g.ThreeStarPackages
	case CategoryFourStar:
		return &g.FourStarPackages
	case CategoryFiveStar:
		return &g.FiveStarPackages
	case CategoryRamadan:
		return &g.RamadanPackages
	}
	return nil
}

// Add appends a package to the bucket matching its category. Packages with an
// unknown category are dropped.
func (g *GroupedPackages) Add(pkg Package) {
	if bucket := g.Bucket(pkg.Category); bucket != nil {
		*bucket = append(*bucket, pkg)
	}
}

// All flattens the four buckets, three star first, into one slice.
func (g *GroupedPackages) All() []Package {
	all := make([]Package, 0, len(g.ThreeStarPackages)+len(g.FourStarPackages)+len(g.FiveStarPackages)+len(g.RamadanPackages))
	all = append(all, g.ThreeStarPackages...)
	all = append(all, g.FourStarPackages...)
	all = append(all, g.FiveStarPackages...)
	all = append(all, g.RamadanPackages...)
	return all
}
