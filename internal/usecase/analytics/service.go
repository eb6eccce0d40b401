// Package analytics serves the dashboard, cost analytics and availability
// forecast read models.
package analytics

import (
	"context"

	domainReport "fleetops/internal/domain/report"
)

const forecastDays = 7

type Service struct {
	reportRepo domainReport.Repository
}

func NewService(reportRepo domainReport.Repository) *Service {
	return &Service{reportRepo: reportRepo}
}

func (s *Service) DashboardStats(ctx context.Context) (*domainReport.DashboardStats, error) {
	return s.reportRepo.DashboardStats(ctx)
}

func (s *Service) Analytics(ctx context.Context) (*domainReport.Analytics, error) {
	return s.reportRepo.Analytics(ctx)
}

func (s *Service) Forecast(ctx context.Context) ([]*domainReport.ForecastDay, error) {
	return s.reportRepo.Forecast(ctx, forecastDays)
}
