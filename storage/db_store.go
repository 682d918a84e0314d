package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/madinahgate/umrah_travel/models"
	"gorm.io/gorm"
)

// DBStore persists packages as rows in the packages table. Uniqueness of
// package_id is enforced by the table's unique index, not pre-checked here.
type DBStore struct {
	db *gorm.DB
}

func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{db: db}
}

func (s *DBStore) ListAll(ctx context.Context) ([]models.Package, error) {
	var rows []models.PackageRow
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch packages: %w", err)
	}

	packages := make([]models.Package, 0, len(rows))
	for _, row := range rows {
		packages = append(packages, models.FromRow(row))
	}
	return packages, nil
}

func (s *DBStore) Get(ctx context.Context, id string) (models.Package, error) {
	var row models.PackageRow
	err := s.db.WithContext(ctx).First(&row, "package_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Package{}, ErrNotFound
	}
	if err != nil {
		return models.Package{}, fmt.Errorf("failed to fetch package: %w", err)
	}
	return models.FromRow(row), nil
}

func (s *DBStore) Insert(ctx context.Context, pkg models.Package) error {
	row := models.ToRow(pkg)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to insert package: %w", err)
	}
	return nil
}

func (s *DBStore) Update(ctx context.Context, id string, pkg models.Package) error {
	var row models.PackageRow
	err := s.db.WithContext(ctx).First(&row, "package_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to fetch package: %w", err)
	}

	updated := models.ToRow(pkg)
	updated.ID = row.ID
	updated.PackageID = row.PackageID
	updated.CreatedAt = row.CreatedAt

	if err := s.db.WithContext(ctx).Save(&updated).Error; err != nil {
		return fmt.Errorf("failed to update package: %w", err)
	}
	return nil
}

func (s *DBStore) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("package_id = ?", id).Delete(&models.PackageRow{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete package: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
