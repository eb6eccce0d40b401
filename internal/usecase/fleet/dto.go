package fleet

import (
	"time"

	"github.com/google/uuid"

	domainDriver "fleetops/internal/domain/driver"
	domainTruck "fleetops/internal/domain/truck"
)

type CreateTruckRequest struct {
	PlateNumber    string   `json:"plate_number" validate:"required,max=20"`
	Model          *string  `json:"model" validate:"omitempty,max=100"`
	CapacityKg     int      `json:"capacity_kg" validate:"gte=0"`
	FuelEfficiency *float64 `json:"fuel_efficiency" validate:"omitempty,gt=0"`
}

type UpdateTruckRequest struct {
	Status          *string    `json:"status" validate:"omitempty,oneof=available maintenance"`
	LastServiceDate *time.Time `json:"last_service_date"`
	NextServiceDate *time.Time `json:"next_service_date"`
	OdometerKm      *int       `json:"odometer_km" validate:"omitempty,gte=0"`
	Latitude        *float64   `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude       *float64   `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

type CreateDriverRequest struct {
	UserID        *uuid.UUID `json:"user_id"`
	Name          string     `json:"name" validate:"required,max=255"`
	Phone         *string    `json:"phone" validate:"omitempty,max=20"`
	LicenseNumber *string    `json:"license_number" validate:"omitempty,max=100"`
	LicenseExpiry *time.Time `json:"license_expiry"`
}

type UpdateDriverRequest struct {
	Status    *string `json:"status" validate:"omitempty,oneof=available on_leave"`
	Phone     *string `json:"phone" validate:"omitempty,max=20"`
	Documents *string `json:"documents"`
}

type TruckResponse struct {
	ID              uuid.UUID  `json:"id"`
	PlateNumber     string     `json:"plate_number"`
	Model           *string    `json:"model,omitempty"`
	CapacityKg      int        `json:"capacity_kg"`
	Status          string     `json:"status"`
	LastServiceDate *time.Time `json:"last_service_date,omitempty"`
	NextServiceDate *time.Time `json:"next_service_date,omitempty"`
	OdometerKm      int        `json:"odometer_km"`
	FuelEfficiency  *float64   `json:"fuel_efficiency,omitempty"`
	Latitude        *float64   `json:"latitude,omitempty"`
	Longitude       *float64   `json:"longitude,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type DriverResponse struct {
	ID            uuid.UUID  `json:"id"`
	UserID        *uuid.UUID `json:"user_id,omitempty"`
	Name          string     `json:"name"`
	Phone         *string    `json:"phone,omitempty"`
	LicenseNumber *string    `json:"license_number,omitempty"`
	LicenseExpiry *time.Time `json:"license_expiry,omitempty"`
	Status        string     `json:"status"`
	Documents     *string    `json:"documents,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func ToTruckResponse(t *domainTruck.Truck) *TruckResponse {
	if t == nil {
		return nil
	}
	return &TruckResponse{
		ID:              t.ID,
		PlateNumber:     t.PlateNumber,
		Model:           t.Model,
		CapacityKg:      t.CapacityKg,
		Status:          string(t.Status),
		LastServiceDate: t.LastServiceDate,
		NextServiceDate: t.NextServiceDate,
		OdometerKm:      t.OdometerKm,
		FuelEfficiency:  t.FuelEfficiency,
		Latitude:        t.Latitude,
		Longitude:       t.Longitude,
		CreatedAt:       t.CreatedAt,
	}
}

func ToDriverResponse(d *domainDriver.Driver) *DriverResponse {
	if d == nil {
		return nil
	}
	return &DriverResponse{
		ID:            d.ID,
		UserID:        d.UserID,
		Name:          d.Name,
		Phone:         d.Phone,
		LicenseNumber: d.LicenseNumber,
		LicenseExpiry: d.LicenseExpiry,
		Status:        string(d.Status),
		Documents:     d.Documents,
		CreatedAt:     d.CreatedAt,
	}
}
