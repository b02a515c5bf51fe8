package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/muhu-travel/backoffice-api/internal/domain"
)

func TestDashboardService_Stats(t *testing.T) {
	repo := &mockDashboardRepo{}
	svc := NewDashboardService(repo)
	svc.now = func() time.Time {
		return time.Date(2026, time.October, 16, 9, 30, 0, 0, time.UTC)
	}

	top := []domain.PackagePopularity{{PackageName: "Machu Picchu Full Day", Reservations: 3}}
	repo.On("Totals", mock.Anything).Return(domain.DashboardStats{Reservations: 4, Revenue: 1600.5, Clients: 2, Packages: 4}, nil)
	repo.On("RevenueSince", mock.Anything, time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)).Return([]domain.MonthlyRevenue{
		{Year: 2026, Month: 7, Total: 450},
		{Year: 2026, Month: 10, Total: 1150.5},
	}, nil)
	repo.On("TopPackages", mock.Anything, 5).Return(top, nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.Reservations)
	assert.Equal(t, 1600.5, stats.Revenue)
	assert.Equal(t, []domain.MonthlyRevenue{
		{Year: 2026, Month: 5, Total: 0},
		{Year: 2026, Month: 6, Total: 0},
		{Year: 2026, Month: 7, Total: 450},
		{Year: 2026, Month: 8, Total: 0},
		{Year: 2026, Month: 9, Total: 0},
		{Year: 2026, Month: 10, Total: 1150.5},
	}, stats.RevenueTrend)
	assert.Equal(t, top, stats.TopPackages)
}

func TestDashboardService_StatsTrendCrossesYear(t *testing.T) {
	repo := &mockDashboardRepo{}
	svc := NewDashboardService(repo)
	svc.now = func() time.Time {
		return time.Date(2027, time.February, 3, 0, 0, 0, 0, time.UTC)
	}

	repo.On("Totals", mock.Anything).Return(domain.DashboardStats{}, nil)
	repo.On("RevenueSince", mock.Anything, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)).Return([]domain.MonthlyRevenue{}, nil)
	repo.On("TopPackages", mock.Anything, 5).Return([]domain.PackagePopularity{}, nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats.RevenueTrend, 6)
	assert.Equal(t, domain.MonthlyRevenue{Year: 2026, Month: 9}, stats.RevenueTrend[0])
	assert.Equal(t, domain.MonthlyRevenue{Year: 2027, Month: 2}, stats.RevenueTrend[5])
}
