package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/madinahgate/umrah_travel/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	store := NewFileStore(filepath.Join(t.TempDir(), "catalog.json"))
	require.NoError(t, store.Init())
	return store
}

func testPackage(id, category string) models.Package {
	pkg := models.Package{
		PackageID:    id,
		Category:     category,
		PackageTitle: "Test Package " + id,
		HotelMakkah:  "Hotel A",
		HotelMadinah: "Hotel B",
		Price:        "£499",
		Duration:     "7 Days",
	}
	pkg.Normalize()
	return pkg
}

func TestFileStoreInsertAndGet(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	pkg := testPackage("3star-1", models.CategoryThreeStar)
	require.NoError(t, store.Insert(ctx, pkg))

	got, err := store.Get(ctx, "3star-1")
	require.NoError(t, err)
	assert.Equal(t, pkg, got)

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	ctx := context.Background()

	first := NewFileStore(path)
	require.NoError(t, first.Init())
	require.NoError(t, first.Insert(ctx, testPackage("4star-1", models.CategoryFourStar)))

	second := NewFileStore(path)
	all, err := second.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "4star-1", all[0].PackageID)
}

func TestFileStoreUpdateInPlace(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	pkg := testPackage("5star-1", models.CategoryFiveStar)
	require.NoError(t, store.Insert(ctx, pkg))

	pkg.PackageTitle = "Renamed"
	require.NoError(t, store.Update(ctx, "5star-1", pkg))

	got, err := store.Get(ctx, "5star-1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.PackageTitle)

	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestFileStoreUpdateMovesBetweenBuckets(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	pkg := testPackage("ramadan-1", models.CategoryRamadan)
	require.NoError(t, store.Insert(ctx, pkg))

	pkg.Category = models.CategoryFiveStar
	require.NoError(t, store.Update(ctx, "ramadan-1", pkg))

	// The record must live in exactly one bucket afterwards.
	data, err := os.ReadFile(store.path)
	require.NoError(t, err)

	var state models.GroupedPackages
	require.NoError(t, json.Unmarshal(data, &state))
	assert.Empty(t, state.RamadanPackages)
	require.Len(t, state.FiveStarPackages, 1)
	assert.Equal(t, "ramadan-1", state.FiveStarPackages[0].PackageID)
	assert.Equal(t, pkg.PackageTitle, state.FiveStarPackages[0].PackageTitle)
}

func TestFileStoreRejectsUnknownCategory(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	err := store.Insert(ctx, testPackage("legacy-1", "economy"))
	assert.ErrorIs(t, err, models.ErrInvalidCategory)

	pkg := testPackage("3star-1", models.CategoryThreeStar)
	require.NoError(t, store.Insert(ctx, pkg))

	pkg.Category = "6-star"
	assert.ErrorIs(t, store.Update(ctx, "3star-1", pkg), models.ErrInvalidCategory)

	// The rejected update must not have removed the record.
	got, err := store.Get(ctx, "3star-1")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryThreeStar, got.Category)
}

func TestFileStoreUpdateUnknownID(t *testing.T) {
	store := newTestFileStore(t)
	err := store.Update(context.Background(), "missing", testPackage("missing", models.CategoryThreeStar))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreDelete(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, testPackage("3star-1", models.CategoryThreeStar)))
	require.NoError(t, store.Delete(ctx, "3star-1"))

	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	// Deleting again reports not found.
	assert.ErrorIs(t, store.Delete(ctx, "3star-1"), ErrNotFound)
}

func TestFileStoreMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := NewFileStore(path)
	_, err := store.ListAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestFileStoreMissingFilePropagates(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))
	_, err := store.ListAll(context.Background())
	require.Error(t, err)
}
