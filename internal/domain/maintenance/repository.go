package maintenance

import (
	"context"
)

// Repository defines the interface for maintenance repository operations.
type Repository interface {
	// Record inserts the maintenance entry and, in the same transaction,
	// stamps the truck's last service date and releases it back to
	// available. Returns truck.ErrTruckNotFound for an unknown truck.
	Record(ctx context.Context, record *Record) error

	List(ctx context.Context) ([]*Detail, error)
}
