package leave

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for leave request repository operations.
type Repository interface {
	Create(ctx context.Context, request *Request) error
	GetByID(ctx context.Context, requestID uuid.UUID) (*Request, error)
	List(ctx context.Context) ([]*Detail, error)
	ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*Request, error)

	// Decide records the approval or rejection. An approval moves the
	// request's driver to on_leave in the same transaction.
	Decide(ctx context.Context, requestID uuid.UUID, status Status) error
}
