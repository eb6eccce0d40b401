package leave

import (
	"time"

	"github.com/google/uuid"
)

// Status values for leave requests.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Request is a driver's leave request. Approval moves the driver to
// on_leave as a coupled side effect.
type Request struct {
	ID        uuid.UUID
	DriverID  uuid.UUID
	StartDate time.Time
	EndDate   time.Time
	Reason    *string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Detail joins a request with the driver's display name.
type Detail struct {
	Request
	DriverName string
}
