package report

// TruckStats aggregates truck counts by status.
type TruckStats struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	Active      int `json:"active"`
	Maintenance int `json:"maintenance"`
}

// DriverStats aggregates driver counts.
type DriverStats struct {
	Total     int `json:"total"`
	Available int `json:"available"`
}

// TripStats aggregates trip counts.
type TripStats struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

// PaymentStats aggregates payment amounts.
type PaymentStats struct {
	Total   float64 `json:"total"`
	Pending float64 `json:"pending"`
}

// DashboardStats is the role dashboard summary.
type DashboardStats struct {
	Trucks   TruckStats   `json:"trucks"`
	Drivers  DriverStats  `json:"drivers"`
	Trips    TripStats    `json:"trips"`
	Payments PaymentStats `json:"payments"`
}

// Analytics holds the admin cost figures.
type Analytics struct {
	AvgFuelEfficiency float64 `json:"avg_fuel_efficiency"`
	CostPerKm         float64 `json:"cost_per_km"`
	MaintenanceCost   float64 `json:"maintenance_cost"`
}

// ForecastDay is the scheduled-trip count and available-truck estimate for
// one day of the forecast window.
type ForecastDay struct {
	Date      string `json:"date"`
	Available int    `json:"available"`
	Scheduled int    `json:"scheduled"`
}
