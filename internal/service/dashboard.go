package service

import (
	"context"
	"fmt"
	"time"

	"github.com/muhu-travel/backoffice-api/internal/domain"
)

const (
	trendMonths    = 6
	topPackagesMax = 5
)

type DashboardRepository interface {
	Totals(ctx context.Context) (domain.DashboardStats, error)
	RevenueSince(ctx context.Context, since time.Time) ([]domain.MonthlyRevenue, error)
	TopPackages(ctx context.Context, limit int) ([]domain.PackagePopularity, error)
}

type DashboardService struct {
	repo DashboardRepository
	now  func() time.Time
}

func NewDashboardService(repo DashboardRepository) *DashboardService {
	return &DashboardService{
		repo: repo,
		now:  time.Now,
	}
}

// Stats aggregates the counters, the revenue of the last six calendar months
// (current one included, months without sales reported as zero) and the most
// booked packages.
func (s *DashboardService) Stats(ctx context.Context) (domain.DashboardStats, error) {
	stats, err := s.repo.Totals(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("s.repo.Totals -> %w", err)
	}

	now := s.now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(trendMonths - 1), 0)

	revenue, err := s.repo.RevenueSince(ctx, start)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("s.repo.RevenueSince -> %w", err)
	}

	byMonth := make(map[[2]int]float64, len(revenue))
	for _, m := range revenue {
		byMonth[[2]int{m.Year, m.Month}] += m.Total
	}

	stats.RevenueTrend = make([]domain.MonthlyRevenue, 0, trendMonths)
	for i := 0; i < trendMonths; i++ {
		month := start.AddDate(0, i, 0)
		key := [2]int{month.Year(), int(month.Month())}
		stats.RevenueTrend = append(stats.RevenueTrend, domain.MonthlyRevenue{
			Year:  key[0],
			Month: key[1],
			Total: roundCents(byMonth[key]),
		})
	}

	stats.TopPackages, err = s.repo.TopPackages(ctx, topPackagesMax)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("s.repo.TopPackages -> %w", err)
	}

	return stats, nil
}
