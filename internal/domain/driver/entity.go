package driver

import (
	"time"

	"github.com/google/uuid"
)

// Status tracks a driver's availability for new trip assignment.
type Status string

const (
	StatusAvailable Status = "available"
	StatusOnTrip    Status = "on_trip"
	StatusOnLeave   Status = "on_leave"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusOnTrip, StatusOnLeave:
		return true
	}
	return false
}

// Driver represents a fleet driver. UserID links the driver to their
// login account when one exists.
type Driver struct {
	ID            uuid.UUID
	UserID        *uuid.UUID
	Name          string
	Phone         *string
	LicenseNumber *string
	LicenseExpiry *time.Time
	Status        Status
	Documents     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
