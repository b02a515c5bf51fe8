package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Totals struct {
	Reservations int64
	Revenue      float64
	Clients      int64
	Packages     int64
}

type MonthlyRevenue struct {
	Month time.Time
	Total float64
}

type PackagePopularity struct {
	Name         string
	Reservations int64 `gorm:"column:reservation_count"`
}

type DashboardDAO struct {
	db *gorm.DB
}

func NewDashboardDAO(db *gorm.DB) *DashboardDAO {
	return &DashboardDAO{
		db: db,
	}
}

func (d *DashboardDAO) Totals(ctx context.Context) (Totals, error) {
	var totals Totals
	db := d.db.WithContext(ctx)

	if err := db.Model(&Reservation{}).Count(&totals.Reservations).Error; err != nil {
		return Totals{}, err
	}
	if err := db.Model(&Reservation{}).Select("COALESCE(SUM(total_amount), 0)").Scan(&totals.Revenue).Error; err != nil {
		return Totals{}, err
	}
	if err := db.Model(&Client{}).Count(&totals.Clients).Error; err != nil {
		return Totals{}, err
	}
	if err := db.Model(&TourPackage{}).Count(&totals.Packages).Error; err != nil {
		return Totals{}, err
	}

	return totals, nil
}

// RevenueSince sums reservation amounts per calendar month for reservations created at or after since.
func (d *DashboardDAO) RevenueSince(ctx context.Context, since time.Time) ([]MonthlyRevenue, error) {
	var rows []MonthlyRevenue

	result := d.db.WithContext(ctx).
		Model(&Reservation{}).
		Select("date_trunc('month', created_at) AS month, SUM(total_amount) AS total").
		Where("created_at >= ?", since).
		Group("date_trunc('month', created_at)").
		Order("month").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

func (d *DashboardDAO) TopPackages(ctx context.Context, limit int) ([]PackagePopularity, error) {
	var rows []PackagePopularity

	result := d.db.WithContext(ctx).
		Model(&Reservation{}).
		Select("tour_packages.name AS name, COUNT(reservations.id) AS reservation_count").
		Joins("JOIN tour_packages ON tour_packages.id = reservations.package_id").
		Group("tour_packages.name").
		Order("reservation_count DESC, name").
		Limit(limit).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}
