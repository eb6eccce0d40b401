package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fleetops/internal/usecase/dispatch"
	"fleetops/pkg/utils"
)

type TripHandler struct {
	service *dispatch.Service
}

func NewTripHandler(service *dispatch.Service) *TripHandler {
	return &TripHandler{service: service}
}

func (h *TripHandler) CreateTrip(c *gin.Context) {
	var req dispatch.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.CreateTrip(c.Request.Context(), &req)
	if err != nil {
		respondReferenceError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Trip scheduled successfully", result)
}

func (h *TripHandler) ListTrips(c *gin.Context) {
	result, err := h.service.ListTrips(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Trips retrieved successfully", result)
}

func (h *TripHandler) GetTrip(c *gin.Context) {
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	result, err := h.service.GetTrip(c.Request.Context(), tripID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Trip retrieved successfully", result)
}

func (h *TripHandler) ListTripsByDriver(c *gin.Context) {
	driverID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid driver ID")
		return
	}

	if !driverScopeAllowed(c, driverID) {
		utils.ErrorResponse(c, http.StatusForbidden, "Insufficient permissions")
		return
	}

	result, err := h.service.ListTripsByDriver(c.Request.Context(), driverID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Trips retrieved successfully", result)
}

func (h *TripHandler) TransitionTrip(c *gin.Context) {
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	var req dispatch.TransitionTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.TransitionTrip(c.Request.Context(), tripID, &req); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Trip status updated successfully", nil)
}
