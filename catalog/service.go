package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/madinahgate/umrah_travel/models"
	"github.com/madinahgate/umrah_travel/storage"
	"github.com/madinahgate/umrah_travel/utils"
)

var ErrMissingFields = errors.New("category and package title are required")

// Service orchestrates validation, id generation, normalization and storage.
// The same service runs unchanged over the file-backed and Postgres-backed
// stores; every behavioral decision lives here, not in the stores.
type Service struct {
	store storage.CatalogStore
}

func NewService(store storage.CatalogStore) *Service {
	return &Service{store: store}
}

// ListPackages returns the catalog grouped into its four category buckets.
// A stored record with a category outside the four buckets is dropped from
// the view rather than treated as an error.
func (s *Service) ListPackages(ctx context.Context) (models.GroupedPackages, error) {
	packages, err := s.store.ListAll(ctx)
	if err != nil {
		return models.GroupedPackages{}, err
	}

	grouped := models.NewGroupedPackages()
	for _, pkg := range packages {
		grouped.Add(pkg)
	}
	return grouped, nil
}

// CreatePackage validates and persists a new package, generating an id when
// the caller did not supply one. The returned package carries the documented
// defaults for every absent optional field.
func (s *Service) CreatePackage(ctx context.Context, pkg models.Package) (models.Package, error) {
	if pkg.Category == "" || pkg.PackageTitle == "" {
		return models.Package{}, ErrMissingFields
	}
	if !models.ValidCategory(pkg.Category) {
		return models.Package{}, fmt.Errorf("%w: %q", models.ErrInvalidCategory, pkg.Category)
	}

	if pkg.PackageID == "" {
		pkg.PackageID = utils.GeneratePackageID(pkg.Category)
	}
	pkg.Normalize()

	if err := s.store.Insert(ctx, pkg); err != nil {
		return models.Package{}, err
	}
	return pkg, nil
}

// UpdatePackage merges the patch into the stored package and persists the
// result, moving the record between buckets when the category changed.
func (s *Service) UpdatePackage(ctx context.Context, id string, patch models.PackagePatch) (models.Package, error) {
	if patch.Category != nil && !models.ValidCategory(*patch.Category) {
		return models.Package{}, fmt.Errorf("%w: %q", models.ErrInvalidCategory, *patch.Category)
	}

	pkg, err := s.store.Get(ctx, id)
	if err != nil {
		return models.Package{}, err
	}

	patch.Apply(&pkg)
	pkg.PackageID = id
	pkg.Normalize()

	if err := s.store.Update(ctx, id, pkg); err != nil {
		return models.Package{}, err
	}
	return pkg, nil
}

// DeletePackage removes the package, or returns storage.ErrNotFound.
func (s *Service) DeletePackage(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
