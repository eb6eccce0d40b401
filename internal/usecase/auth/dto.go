package auth

import (
	"time"

	"github.com/google/uuid"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50,alphanum"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,user_role"`

	// Driver profile fields, used only when Role is driver.
	Name          *string    `json:"name" validate:"omitempty,max=255"`
	Phone         *string    `json:"phone" validate:"omitempty,max=20"`
	LicenseNumber *string    `json:"license_number" validate:"omitempty,max=100"`
	LicenseExpiry *time.Time `json:"license_expiry"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt int64        `json:"expires_at"`
	User      UserResponse `json:"user"`
}

type UserResponse struct {
	ID       uuid.UUID  `json:"id"`
	Username string     `json:"username"`
	Role     string     `json:"role"`
	DriverID *uuid.UUID `json:"driver_id,omitempty"`
}
