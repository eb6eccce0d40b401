package postgres

import (
	"context"
	"fmt"
	"time"

	"fleetops/internal/domain/report"
)

type ReportRepository struct {
	db *DB
}

func NewReportRepository(db *DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// DashboardStats assembles the dashboard summary with one aggregate query
// per table instead of per-row lookups.
func (r *ReportRepository) DashboardStats(ctx context.Context) (*report.DashboardStats, error) {
	stats := &report.DashboardStats{}
	db := r.db.DB.WithContext(ctx)

	err := db.Raw(`
		SELECT COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE status = 'available') AS available,
		       COUNT(*) FILTER (WHERE status = 'on_trip') AS active,
		       COUNT(*) FILTER (WHERE status = 'maintenance') AS maintenance
		FROM trucks`).Scan(&stats.Trucks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate trucks: %w", err)
	}

	err = db.Raw(`
		SELECT COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE status = 'available') AS available
		FROM drivers`).Scan(&stats.Drivers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate drivers: %w", err)
	}

	err = db.Raw(`
		SELECT COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE status = 'in_progress') AS active
		FROM trips`).Scan(&stats.Trips).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate trips: %w", err)
	}

	err = db.Raw(`
		SELECT COALESCE(SUM(amount), 0) AS total,
		       COALESCE(SUM(amount) FILTER (WHERE status = 'pending'), 0) AS pending
		FROM payments`).Scan(&stats.Payments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate payments: %w", err)
	}

	return stats, nil
}

func (r *ReportRepository) Analytics(ctx context.Context) (*report.Analytics, error) {
	analytics := &report.Analytics{}
	db := r.db.DB.WithContext(ctx)

	err := db.Raw(`SELECT COALESCE(AVG(fuel_efficiency), 0) FROM trucks`).
		Scan(&analytics.AvgFuelEfficiency).Error
	if err != nil {
		return nil, fmt.Errorf("failed to average fuel efficiency: %w", err)
	}

	var costTotals struct {
		TotalCost     float64
		TotalDistance float64
	}
	err = db.Raw(`
		SELECT COALESCE(SUM(cost), 0) AS total_cost,
		       COALESCE(SUM(distance_km), 0) AS total_distance
		FROM trips
		WHERE status = 'completed'`).Scan(&costTotals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate trip costs: %w", err)
	}
	if costTotals.TotalDistance > 0 {
		analytics.CostPerKm = costTotals.TotalCost / costTotals.TotalDistance
	}

	err = db.Raw(`
		SELECT COALESCE(SUM(cost), 0)
		FROM maintenance
		WHERE service_date >= ?`, time.Now().AddDate(0, 0, -30)).
		Scan(&analytics.MaintenanceCost).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate maintenance cost: %w", err)
	}

	return analytics, nil
}

// Forecast returns per-day scheduled trip counts for the next days starting
// today, with an available-truck estimate of fleet size minus trucks in
// maintenance minus that day's scheduled trips.
func (r *ReportRepository) Forecast(ctx context.Context, days int) ([]*report.ForecastDay, error) {
	db := r.db.DB.WithContext(ctx)

	var fleetSize int
	err := db.Raw(`SELECT COUNT(*) FROM trucks WHERE status <> 'maintenance'`).
		Scan(&fleetSize).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count serviceable trucks: %w", err)
	}

	today := time.Now().Truncate(24 * time.Hour)
	var rows []struct {
		Day       time.Time
		Scheduled int
	}
	err = db.Raw(`
		SELECT DATE(start_date) AS day, COUNT(*) AS scheduled
		FROM trips
		WHERE status <> 'cancelled'
		  AND start_date >= ? AND start_date < ?
		GROUP BY DATE(start_date)`,
		today, today.AddDate(0, 0, days)).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate scheduled trips: %w", err)
	}

	scheduledByDay := make(map[string]int, len(rows))
	for _, row := range rows {
		scheduledByDay[row.Day.Format("2006-01-02")] = row.Scheduled
	}

	forecast := make([]*report.ForecastDay, 0, days)
	for i := 0; i < days; i++ {
		date := today.AddDate(0, 0, i).Format("2006-01-02")
		scheduled := scheduledByDay[date]
		forecast = append(forecast, &report.ForecastDay{
			Date:      date,
			Available: fleetSize - scheduled,
			Scheduled: scheduled,
		})
	}
	return forecast, nil
}
