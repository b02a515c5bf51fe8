package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/muhu-travel/backoffice-api/internal/domain"
	"github.com/muhu-travel/backoffice-api/internal/repository/dao"
)

type DashboardDAO interface {
	Totals(ctx context.Context) (dao.Totals, error)
	RevenueSince(ctx context.Context, since time.Time) ([]dao.MonthlyRevenue, error)
	TopPackages(ctx context.Context, limit int) ([]dao.PackagePopularity, error)
}

type DashboardRepository struct {
	dao DashboardDAO
}

func NewDashboardRepository(dao DashboardDAO) *DashboardRepository {
	return &DashboardRepository{
		dao: dao,
	}
}

// Totals returns the stats with only the aggregate counters filled in.
func (r *DashboardRepository) Totals(ctx context.Context) (domain.DashboardStats, error) {
	totals, err := r.dao.Totals(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("r.dao.Totals -> %w", err)
	}

	return domain.DashboardStats{
		Reservations: totals.Reservations,
		Revenue:      totals.Revenue,
		Clients:      totals.Clients,
		Packages:     totals.Packages,
	}, nil
}

// RevenueSince returns one entry per month that has reservations, oldest first.
func (r *DashboardRepository) RevenueSince(ctx context.Context, since time.Time) ([]domain.MonthlyRevenue, error) {
	found, err := r.dao.RevenueSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("r.dao.RevenueSince -> %w", err)
	}

	revenue := make([]domain.MonthlyRevenue, 0, len(found))
	for _, m := range found {
		revenue = append(revenue, domain.MonthlyRevenue{
			Year:  m.Month.Year(),
			Month: int(m.Month.Month()),
			Total: m.Total,
		})
	}

	return revenue, nil
}

func (r *DashboardRepository) TopPackages(ctx context.Context, limit int) ([]domain.PackagePopularity, error) {
	found, err := r.dao.TopPackages(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.TopPackages -> %w", err)
	}

	top := make([]domain.PackagePopularity, 0, len(found))
	for _, p := range found {
		top = append(top, domain.PackagePopularity{
			PackageName:  p.Name,
			Reservations: p.Reservations,
		})
	}

	return top, nil
}
