package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fleetops/internal/usecase/fleet"
	"fleetops/pkg/utils"
)

type TruckHandler struct {
	service *fleet.Service
}

func NewTruckHandler(service *fleet.Service) *TruckHandler {
	return &TruckHandler{service: service}
}

func (h *TruckHandler) CreateTruck(c *gin.Context) {
	var req fleet.CreateTruckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.CreateTruck(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Truck created successfully", result)
}

func (h *TruckHandler) ListTrucks(c *gin.Context) {
	result, err := h.service.ListTrucks(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Trucks retrieved successfully", result)
}

func (h *TruckHandler) GetTruck(c *gin.Context) {
	truckID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid truck ID")
		return
	}

	result, err := h.service.GetTruck(c.Request.Context(), truckID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Truck retrieved successfully", result)
}

func (h *TruckHandler) UpdateTruck(c *gin.Context) {
	truckID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid truck ID")
		return
	}

	var req fleet.UpdateTruckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.UpdateTruck(c.Request.Context(), truckID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Truck updated successfully", result)
}
