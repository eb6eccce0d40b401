package maintenance

import (
	"time"

	"github.com/google/uuid"
)

// Record is a single maintenance log entry for a truck.
type Record struct {
	ID              uuid.UUID
	TruckID         uuid.UUID
	ServiceType     string
	ServiceDate     time.Time
	Cost            *float64
	OdometerReading *int
	Notes           *string
	NextServiceKm   *int
	CreatedAt       time.Time
}

// Detail joins a record with the display fields of its truck.
type Detail struct {
	Record
	PlateNumber string
	TruckModel  *string
}
