package report

import "context"

// Repository assembles the aggregate read models. Each method is a single
// grouped query per entity rather than sequential per-row lookups.
type Repository interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	Analytics(ctx context.Context) (*Analytics, error)
	Forecast(ctx context.Context, days int) ([]*ForecastDay, error)
}
