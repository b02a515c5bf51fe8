package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/muhu-travel/backoffice-api/internal/domain"
	"github.com/muhu-travel/backoffice-api/internal/repository/dao"
)

var (
	ErrPackageNotFound   = dao.ErrPackageNotFound
	ErrPackageNameExists = dao.ErrPackageNameExists
	ErrPackageInUse      = dao.ErrPackageInUse
)

type PackageDAO interface {
	Insert(ctx context.Context, pkg dao.TourPackage) (dao.TourPackage, error)
	FindAll(ctx context.Context) ([]dao.TourPackage, error)
	FindByID(ctx context.Context, id uuid.UUID) (dao.TourPackage, error)
	FindByName(ctx context.Context, name string) (dao.TourPackage, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) (dao.TourPackage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PackageRepository struct {
	dao PackageDAO
}

func NewPackageRepository(dao PackageDAO) *PackageRepository {
	return &PackageRepository{
		dao: dao,
	}
}

func (r *PackageRepository) Create(ctx context.Context, pkg domain.TourPackage) (domain.TourPackage, error) {
	created, err := r.dao.Insert(ctx, dao.TourPackage{
		Name:         pkg.Name,
		Description:  pkg.Description,
		Price:        pkg.Price,
		DurationDays: pkg.DurationDays,
		MaxPax:       pkg.MaxPax,
		Destinations: datatypes.JSONSlice[string](pkg.Destinations),
	})
	if err != nil {
		return domain.TourPackage{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return packageDaoToDomain(created), nil
}

func (r *PackageRepository) List(ctx context.Context) ([]domain.TourPackage, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	packages := make([]domain.TourPackage, 0, len(found))
	for _, p := range found {
		packages = append(packages, packageDaoToDomain(p))
	}

	return packages, nil
}

func (r *PackageRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.TourPackage, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.TourPackage{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return packageDaoToDomain(found), nil
}

func (r *PackageRepository) FindByName(ctx context.Context, name string) (domain.TourPackage, error) {
	found, err := r.dao.FindByName(ctx, name)
	if err != nil {
		return domain.TourPackage{}, fmt.Errorf("r.dao.FindByName -> %w", err)
	}

	return packageDaoToDomain(found), nil
}

func (r *PackageRepository) Update(ctx context.Context, id uuid.UUID, patch domain.TourPackagePatch) (domain.TourPackage, error) {
	updates := make(map[string]any)
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.DurationDays != nil {
		updates["duration_days"] = *patch.DurationDays
	}
	if patch.MaxPax != nil {
		updates["max_pax"] = *patch.MaxPax
	}
	if patch.Destinations != nil {
		updates["destinations"] = datatypes.JSONSlice[string](patch.Destinations)
	}

	updated, err := r.dao.Update(ctx, id, updates)
	if err != nil {
		return domain.TourPackage{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return packageDaoToDomain(updated), nil
}

func (r *PackageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func packageDaoToDomain(p dao.TourPackage) domain.TourPackage {
	destinations := []string(p.Destinations)
	if destinations == nil {
		destinations = []string{}
	}

	return domain.TourPackage{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		DurationDays: p.DurationDays,
		MaxPax:       p.MaxPax,
		Destinations: destinations,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
