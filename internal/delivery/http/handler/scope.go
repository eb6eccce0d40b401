package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fleetops/internal/domain/user"
)

// driverScopeAllowed reports whether the caller may read records belonging
// to the given driver. Admins and dispatchers see everything; a driver only
// sees their own records.
func driverScopeAllowed(c *gin.Context, driverID uuid.UUID) bool {
	role, exists := c.Get("role")
	if !exists {
		return false
	}
	if role.(string) != user.RoleDriver {
		return true
	}

	ownID, exists := c.Get("driverID")
	if !exists {
		return false
	}
	return ownID.(uuid.UUID) == driverID
}
