package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/muhu-travel/backoffice-api/internal/domain"
	"github.com/muhu-travel/backoffice-api/internal/repository"
)

var (
	ErrPackageNotFound   = repository.ErrPackageNotFound
	ErrPackageNameExists = repository.ErrPackageNameExists
	ErrPackageInUse      = repository.ErrPackageInUse
)

type PackageRepository interface {
	Create(ctx context.Context, pkg domain.TourPackage) (domain.TourPackage, error)
	List(ctx context.Context) ([]domain.TourPackage, error)
	FindByID(ctx context.Context, id uuid.UUID) (domain.TourPackage, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.TourPackagePatch) (domain.TourPackage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PackageService struct {
	repo PackageRepository
}

func NewPackageService(repo PackageRepository) *PackageService {
	return &PackageService{
		repo: repo,
	}
}

func (s *PackageService) CreatePackage(ctx context.Context, pkg domain.TourPackage) (domain.TourPackage, error) {
	pkg.Name = strings.TrimSpace(pkg.Name)
	pkg.Price = roundCents(pkg.Price)
	pkg.Destinations = cleanDestinations(pkg.Destinations)

	created, err := s.repo.Create(ctx, pkg)
	if err != nil {
		return domain.TourPackage{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *PackageService) ListPackages(ctx context.Context) ([]domain.TourPackage, error) {
	packages, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return packages, nil
}

func (s *PackageService) GetPackage(ctx context.Context, id uuid.UUID) (domain.TourPackage, error) {
	pkg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.TourPackage{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return pkg, nil
}

func (s *PackageService) UpdatePackage(ctx context.Context, id uuid.UUID, patch domain.TourPackagePatch) (domain.TourPackage, error) {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		patch.Name = &name
	}
	if patch.Price != nil {
		price := roundCents(*patch.Price)
		patch.Price = &price
	}
	if patch.Destinations != nil {
		patch.Destinations = cleanDestinations(patch.Destinations)
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return domain.TourPackage{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// DeletePackage fails with ErrPackageInUse while reservations reference the package.
func (s *PackageService) DeletePackage(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func cleanDestinations(destinations []string) []string {
	cleaned := make([]string, 0, len(destinations))
	for _, d := range destinations {
		if d = strings.TrimSpace(d); d != "" {
			cleaned = append(cleaned, d)
		}
	}

	return cleaned
}
