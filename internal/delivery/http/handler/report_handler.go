package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetops/internal/usecase/analytics"
	"fleetops/pkg/utils"
)

type ReportHandler struct {
	service *analytics.Service
}

func NewReportHandler(service *analytics.Service) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) DashboardStats(c *gin.Context) {
	result, err := h.service.DashboardStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Dashboard statistics retrieved successfully", result)
}

func (h *ReportHandler) Analytics(c *gin.Context) {
	result, err := h.service.Analytics(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Analytics retrieved successfully", result)
}

func (h *ReportHandler) Forecast(c *gin.Context) {
	result, err := h.service.Forecast(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Availability forecast retrieved successfully", result)
}
