package driver

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for driver repository operations
type Repository interface {
	Create(ctx context.Context, driver *Driver) error
	GetByID(ctx context.Context, driverID uuid.UUID) (*Driver, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Driver, error)
	List(ctx context.Context) ([]*Driver, error)
	Update(ctx context.Context, driver *Driver) error
}
