package models

import (
	"time"

	"github.com/google/uuid"
)

// MaintenanceModel represents the database model for a maintenance record
type MaintenanceModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TruckID         uuid.UUID `gorm:"type:uuid;not null;index"`
	ServiceType     string    `gorm:"type:varchar(100);not null"`
	ServiceDate     time.Time `gorm:"type:date;not null;index"`
	Cost            *float64  `gorm:"type:decimal(12,2)"`
	OdometerReading *int      `gorm:"type:integer"`
	Notes           *string   `gorm:"type:text"`
	NextServiceKm   *int      `gorm:"type:integer"`
	CreatedAt       time.Time `gorm:"not null"`

	Truck *TruckModel `gorm:"foreignKey:TruckID"`
}

func (MaintenanceModel) TableName() string {
	return "maintenance"
}
