package truck

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for truck repository operations
type Repository interface {
	Create(ctx context.Context, truck *Truck) error
	GetByID(ctx context.Context, truckID uuid.UUID) (*Truck, error)
	List(ctx context.Context) ([]*Truck, error)
	Update(ctx context.Context, truck *Truck) error
	UpdatePosition(ctx context.Context, truckID uuid.UUID, latitude, longitude float64, odometerKm int, recordedAt time.Time) error
}
