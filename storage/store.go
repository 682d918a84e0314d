package storage

import (
	"context"
	"errors"

	"github.com/madinahgate/umrah_travel/models"
)

// ErrNotFound is returned when no package matches the requested id.
var ErrNotFound = errors.New("package not found")

// CatalogStore is the persistence capability behind the catalog service.
// The file-backed and Postgres-backed implementations are interchangeable;
// every validation and merge decision happens above this interface.
type CatalogStore interface {
	// ListAll returns every package in the catalog. The file store yields
	// packages in bucket order, the database store newest first.
	ListAll(ctx context.Context) ([]models.Package, error)

	// Get returns the package with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (models.Package, error)

	// Insert persists a new package. The caller has already validated the
	// category and assigned a package id.
	Insert(ctx context.Context, pkg models.Package) error

	// Update replaces the stored package with the given id. When pkg carries
	// a different category the record moves to the new bucket. Returns
	// ErrNotFound for an unknown id.
	Update(ctx context.Context, id string, pkg models.Package) error

	// Delete removes the package with the given id, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
}
