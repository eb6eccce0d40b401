package payment

import (
	"time"

	"github.com/google/uuid"
)

// Status values for driver payments.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

// Payment is an amount owed to a driver, optionally tied to a trip.
type Payment struct {
	ID        uuid.UUID
	DriverID  uuid.UUID
	TripID    *uuid.UUID
	Amount    float64
	DueDate   *time.Time
	PaidDate  *time.Time
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Detail joins a payment with driver and trip display fields.
type Detail struct {
	Payment
	DriverName  string
	Origin      *string
	Destination *string
}
