package domain

type MonthlyRevenue struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Total float64 `json:"total"`
}

type PackagePopularity struct {
	PackageName  string `json:"packageName"`
	Reservations int64  `json:"reservations"`
}

type DashboardStats struct {
	Reservations int64               `json:"reservations"`
	Revenue      float64             `json:"revenue"`
	Clients      int64               `json:"clients"`
	Packages     int64               `json:"packages"`
	RevenueTrend []MonthlyRevenue    `json:"revenueTrend"`
	TopPackages  []PackagePopularity `json:"topPackages"`
}
