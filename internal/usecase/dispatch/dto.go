package dispatch

import (
	"time"

	"github.com/google/uuid"

	domainTrip "fleetops/internal/domain/trip"
)

type CreateTripRequest struct {
	TruckID          uuid.UUID  `json:"truck_id" validate:"required"`
	DriverID         uuid.UUID  `json:"driver_id" validate:"required"`
	Origin           string     `json:"origin" validate:"required,max=255"`
	Destination      string     `json:"destination" validate:"required,max=255"`
	CargoWeightKg    int        `json:"cargo_weight_kg" validate:"gte=0"`
	DistanceKm       int        `json:"distance_km" validate:"gte=0"`
	StartDate        time.Time  `json:"start_date" validate:"required"`
	EstimatedArrival *time.Time `json:"estimated_arrival"`
	Cost             *float64   `json:"cost" validate:"omitempty,gte=0"`
}

type TransitionTripRequest struct {
	Status  string     `json:"status" validate:"required,oneof=in_progress completed cancelled"`
	EndDate *time.Time `json:"end_date"`
}

type TripResponse struct {
	ID               uuid.UUID  `json:"id"`
	TruckID          uuid.UUID  `json:"truck_id"`
	DriverID         uuid.UUID  `json:"driver_id"`
	Origin           string     `json:"origin"`
	Destination      string     `json:"destination"`
	CargoWeightKg    int        `json:"cargo_weight_kg"`
	DistanceKm       int        `json:"distance_km"`
	StartDate        time.Time  `json:"start_date"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	EstimatedArrival *time.Time `json:"estimated_arrival,omitempty"`
	Status           string     `json:"status"`
	Cost             *float64   `json:"cost,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

type TripDetailResponse struct {
	TripResponse
	PlateNumber string  `json:"plate_number"`
	TruckModel  *string `json:"truck_model,omitempty"`
	DriverName  string  `json:"driver_name"`
}

func ToTripResponse(t *domainTrip.Trip) *TripResponse {
	if t == nil {
		return nil
	}
	return &TripResponse{
		ID:               t.ID,
		TruckID:          t.TruckID,
		DriverID:         t.DriverID,
		Origin:           t.Origin,
		Destination:      t.Destination,
		CargoWeightKg:    t.CargoWeightKg,
		DistanceKm:       t.DistanceKm,
		StartDate:        t.StartDate,
		EndDate:          t.EndDate,
		EstimatedArrival: t.EstimatedArrival,
		Status:           string(t.Status),
		Cost:             t.Cost,
		CreatedAt:        t.CreatedAt,
	}
}

func ToTripDetailResponses(details []*domainTrip.Detail) []*TripDetailResponse {
	responses := make([]*TripDetailResponse, 0, len(details))
	for _, d := range details {
		responses = append(responses, &TripDetailResponse{
			TripResponse: *ToTripResponse(&d.Trip),
			PlateNumber:  d.PlateNumber,
			TruckModel:   d.TruckModel,
			DriverName:   d.DriverName,
		})
	}
	return responses
}
