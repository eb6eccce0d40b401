package truck

import (
	"time"

	"github.com/google/uuid"
)

// Status tracks whether a truck is eligible for new trip assignment.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusOnTrip      Status = "on_trip"
	StatusMaintenance Status = "maintenance"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusOnTrip, StatusMaintenance:
		return true
	}
	return false
}

// Truck represents a fleet vehicle. Latitude/Longitude hold the last known
// position reported by telemetry.
type Truck struct {
	ID              uuid.UUID
	PlateNumber     string
	Model           *string
	CapacityKg      int
	Status          Status
	LastServiceDate *time.Time
	NextServiceDate *time.Time
	OdometerKm      int
	FuelEfficiency  *float64
	Latitude        *float64
	Longitude       *float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
