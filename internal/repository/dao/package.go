package dao

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TourPackage struct {
	Model

	Name         string                      `gorm:"uniqueIndex:idx_tour_packages_name;not null"`
	Description  string                      `gorm:"type:text"`
	Price        float64                     `gorm:"type:decimal(10,2);not null"`
	DurationDays int                         `gorm:"not null"`
	MaxPax       int                         `gorm:"not null"`
	Destinations datatypes.JSONSlice[string] `gorm:"type:jsonb"`
}

type PackageDAO struct {
	db *gorm.DB
}

func NewPackageDAO(db *gorm.DB) *PackageDAO {
	return &PackageDAO{
		db: db,
	}
}

func (d *PackageDAO) Insert(ctx context.Context, pkg TourPackage) (TourPackage, error) {
	result := d.db.WithContext(ctx).Create(&pkg)
	if result.Error != nil {
		if isUniqueViolation(result.Error, constraintPackagesName) {
			return TourPackage{}, ErrPackageNameExists
		}

		return TourPackage{}, result.Error
	}

	return pkg, nil
}

func (d *PackageDAO) FindAll(ctx context.Context) ([]TourPackage, error) {
	var packages []TourPackage

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&packages)
	if result.Error != nil {
		return nil, result.Error
	}

	return packages, nil
}

func (d *PackageDAO) FindByID(ctx context.Context, id uuid.UUID) (TourPackage, error) {
	var pkg TourPackage

	result := d.db.WithContext(ctx).First(&pkg, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return TourPackage{}, ErrPackageNotFound
		}

		return TourPackage{}, result.Error
	}

	return pkg, nil
}

func (d *PackageDAO) FindByName(ctx context.Context, name string) (TourPackage, error) {
	var pkg TourPackage

	result := d.db.WithContext(ctx).First(&pkg, "name = ?", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return TourPackage{}, ErrPackageNotFound
		}

		return TourPackage{}, result.Error
	}

	return pkg, nil
}

func (d *PackageDAO) Update(ctx context.Context, id uuid.UUID, updates map[string]any) (TourPackage, error) {
	if len(updates) > 0 {
		result := d.db.WithContext(ctx).Model(&TourPackage{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			if isUniqueViolation(result.Error, constraintPackagesName) {
				return TourPackage{}, ErrPackageNameExists
			}

			return TourPackage{}, result.Error
		}
		if result.RowsAffected == 0 {
			return TourPackage{}, ErrPackageNotFound
		}
	}

	return d.FindByID(ctx, id)
}

// Delete removes a package unless a reservation still references it.
func (d *PackageDAO) Delete(ctx context.Context, id uuid.UUID) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&Reservation{}).Where("package_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return ErrPackageInUse
		}

		result := tx.Delete(&TourPackage{}, "id = ?", id)
		if result.Error != nil {
			if isForeignKeyViolation(result.Error) {
				return ErrPackageInUse
			}

			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPackageNotFound
		}

		return nil
	})
}
