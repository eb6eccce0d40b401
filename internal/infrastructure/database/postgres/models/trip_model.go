package models

import (
	"time"

	"github.com/google/uuid"
)

// TripModel represents the database model for Trip
type TripModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TruckID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	DriverID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	Origin           string     `gorm:"type:varchar(255);not null"`
	Destination      string     `gorm:"type:varchar(255);not null"`
	CargoWeightKg    int        `gorm:"type:integer;not null;check:cargo_weight_kg >= 0"`
	DistanceKm       int        `gorm:"type:integer;not null;default:0"`
	StartDate        time.Time  `gorm:"type:timestamptz;not null;index"`
	EndDate          *time.Time `gorm:"type:timestamptz"`
	EstimatedArrival *time.Time `gorm:"type:timestamptz"`
	Status           string     `gorm:"type:varchar(20);not null;default:'scheduled';index;check:status IN ('scheduled','in_progress','completed','cancelled')"`
	Cost             *float64   `gorm:"type:decimal(12,2)"`
	CreatedAt        time.Time  `gorm:"not null"`
	UpdatedAt        time.Time  `gorm:"not null"`

	Truck  *TruckModel  `gorm:"foreignKey:TruckID"`
	Driver *DriverModel `gorm:"foreignKey:DriverID"`
}

func (TripModel) TableName() string {
	return "trips"
}
