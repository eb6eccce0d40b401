package trip

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for trip repository operations.
//
// CreateAssigned and Complete are multi-entity writes: the trip row and the
// coupled truck/driver status flips must land in a single transaction so a
// partial application is never observable.
type Repository interface {
	// CreateAssigned inserts the trip as scheduled and moves its truck and
	// driver to on_trip in one transaction. The truck and driver rows are
	// locked and re-checked inside the transaction; a concurrent assignment
	// racing on the same truck or driver loses with ErrTruckUnavailable or
	// ErrDriverUnavailable.
	CreateAssigned(ctx context.Context, trip *Trip) error

	GetByID(ctx context.Context, tripID uuid.UUID) (*Trip, error)
	List(ctx context.Context) ([]*Detail, error)
	ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*Detail, error)

	// Complete marks the trip completed with the given end date and reverts
	// its truck and driver to available, all in one transaction.
	Complete(ctx context.Context, tripID uuid.UUID, endDate time.Time) error

	// UpdateStatus records an in_progress or cancelled transition. No
	// truck/driver side effect is applied.
	UpdateStatus(ctx context.Context, tripID uuid.UUID, status Status) error
}
