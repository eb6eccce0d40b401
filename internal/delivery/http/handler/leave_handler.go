package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fleetops/internal/domain/user"
	"fleetops/internal/usecase/leave"
	"fleetops/pkg/utils"
)

type LeaveHandler struct {
	service *leave.Service
}

func NewLeaveHandler(service *leave.Service) *LeaveHandler {
	return &LeaveHandler{service: service}
}

// CreateRequest submits a leave request. A driver can only file for
// themselves; the driver id from the token overrides whatever the body says.
func (h *LeaveHandler) CreateRequest(c *gin.Context) {
	var req leave.CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if role, _ := c.Get("role"); role == user.RoleDriver {
		ownID, exists := c.Get("driverID")
		if !exists {
			utils.ErrorResponse(c, http.StatusForbidden, "No driver profile linked to this account")
			return
		}
		req.DriverID = ownID.(uuid.UUID)
	}

	result, err := h.service.CreateRequest(c.Request.Context(), &req)
	if err != nil {
		respondReferenceError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Leave request submitted successfully", result)
}

func (h *LeaveHandler) ListRequests(c *gin.Context) {
	result, err := h.service.ListRequests(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Leave requests retrieved successfully", result)
}

func (h *LeaveHandler) ListRequestsByDriver(c *gin.Context) {
	driverID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid driver ID")
		return
	}

	if !driverScopeAllowed(c, driverID) {
		utils.ErrorResponse(c, http.StatusForbidden, "Insufficient permissions")
		return
	}

	result, err := h.service.ListRequestsByDriver(c.Request.Context(), driverID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Leave requests retrieved successfully", result)
}

func (h *LeaveHandler) DecideRequest(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid leave request ID")
		return
	}

	var req leave.DecideLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.DecideRequest(c.Request.Context(), requestID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Leave request decided successfully", result)
}
