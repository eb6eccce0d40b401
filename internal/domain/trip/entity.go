package trip

import (
	"time"

	"github.com/google/uuid"
)

// Status values for the trip lifecycle. A trip is created as scheduled and
// is never deleted; completed and cancelled are terminal.
type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are accepted from s.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Trip is a scheduled haul assignment linking one truck and one driver over
// a route and time window.
type Trip struct {
	ID               uuid.UUID
	TruckID          uuid.UUID
	DriverID         uuid.UUID
	Origin           string
	Destination      string
	CargoWeightKg    int
	DistanceKm       int
	StartDate        time.Time
	EndDate          *time.Time
	EstimatedArrival *time.Time
	Status           Status
	Cost             *float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Detail joins a trip with the display fields of its truck and driver.
type Detail struct {
	Trip
	PlateNumber string
	TruckModel  *string
	DriverName  string
}
