package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetops/internal/usecase/maintenance"
	"fleetops/pkg/utils"
)

type MaintenanceHandler struct {
	service *maintenance.Service
}

func NewMaintenanceHandler(service *maintenance.Service) *MaintenanceHandler {
	return &MaintenanceHandler{service: service}
}

func (h *MaintenanceHandler) RecordService(c *gin.Context) {
	var req maintenance.RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.RecordService(c.Request.Context(), &req)
	if err != nil {
		respondReferenceError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Maintenance recorded successfully", result)
}

func (h *MaintenanceHandler) ListRecords(c *gin.Context) {
	result, err := h.service.ListRecords(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Maintenance records retrieved successfully", result)
}
