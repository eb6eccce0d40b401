package models

import (
	"time"

	"github.com/google/uuid"
)

// TruckModel represents the database model for Truck
type TruckModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PlateNumber     string     `gorm:"type:varchar(20);not null;uniqueIndex"`
	Model           *string    `gorm:"type:varchar(100)"`
	CapacityKg      int        `gorm:"type:integer;not null;check:capacity_kg >= 0"`
	Status          string     `gorm:"type:varchar(20);not null;default:'available';index;check:status IN ('available','on_trip','maintenance')"`
	LastServiceDate *time.Time `gorm:"type:date"`
	NextServiceDate *time.Time `gorm:"type:date"`
	OdometerKm      int        `gorm:"type:integer;not null;default:0"`
	FuelEfficiency  *float64   `gorm:"type:decimal(6,2)"`
	Latitude        *float64   `gorm:"type:decimal(9,6)"`
	Longitude       *float64   `gorm:"type:decimal(9,6)"`
	CreatedAt       time.Time  `gorm:"not null"`
	UpdatedAt       time.Time  `gorm:"not null"`
}

func (TruckModel) TableName() string {
	return "trucks"
}
