package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for payment repository operations
type Repository interface {
	Create(ctx context.Context, payment *Payment) error
	GetByID(ctx context.Context, paymentID uuid.UUID) (*Payment, error)
	List(ctx context.Context) ([]*Detail, error)
	ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*Detail, error)
	UpdateStatus(ctx context.Context, paymentID uuid.UUID, status Status, paidDate *time.Time) error
}
