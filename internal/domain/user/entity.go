package user

import (
	"time"

	"github.com/google/uuid"
)

// Role values accepted for fleet users.
const (
	RoleAdmin      = "admin"
	RoleDispatcher = "dispatcher"
	RoleDriver     = "driver"
)

// User represents an operator account. Users with the driver role are
// linked one-to-one with a Driver row.
type User struct {
	ID             uuid.UUID
	Username       string
	PasswordHashed string
	Role           string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleDispatcher, RoleDriver:
		return true
	}
	return false
}
