package maintenance

import (
	"time"

	"github.com/google/uuid"

	domainMaintenance "fleetops/internal/domain/maintenance"
)

type RecordRequest struct {
	TruckID         uuid.UUID  `json:"truck_id" validate:"required"`
	ServiceType     string     `json:"service_type" validate:"required,max=100"`
	ServiceDate     *time.Time `json:"service_date"`
	Cost            *float64   `json:"cost" validate:"omitempty,gte=0"`
	OdometerReading *int       `json:"odometer_reading" validate:"omitempty,gte=0"`
	Notes           *string    `json:"notes" validate:"omitempty,max=1000"`
	NextServiceKm   *int       `json:"next_service_km" validate:"omitempty,gte=0"`
}

type RecordResponse struct {
	ID              uuid.UUID `json:"id"`
	TruckID         uuid.UUID `json:"truck_id"`
	ServiceType     string    `json:"service_type"`
	ServiceDate     time.Time `json:"service_date"`
	Cost            *float64  `json:"cost,omitempty"`
	OdometerReading *int      `json:"odometer_reading,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
	NextServiceKm   *int      `json:"next_service_km,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type DetailResponse struct {
	RecordResponse
	PlateNumber string  `json:"plate_number"`
	TruckModel  *string `json:"truck_model,omitempty"`
}

func ToRecordResponse(r *domainMaintenance.Record) *RecordResponse {
	if r == nil {
		return nil
	}
	return &RecordResponse{
		ID:              r.ID,
		TruckID:         r.TruckID,
		ServiceType:     r.ServiceType,
		ServiceDate:     r.ServiceDate,
		Cost:            r.Cost,
		OdometerReading: r.OdometerReading,
		Notes:           r.Notes,
		NextServiceKm:   r.NextServiceKm,
		CreatedAt:       r.CreatedAt,
	}
}

func ToDetailResponses(details []*domainMaintenance.Detail) []*DetailResponse {
	responses := make([]*DetailResponse, 0, len(details))
	for _, d := range details {
		responses = append(responses, &DetailResponse{
			RecordResponse: *ToRecordResponse(&d.Record),
			PlateNumber:    d.PlateNumber,
			TruckModel:     d.TruckModel,
		})
	}
	return responses
}
