package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel represents the database model for Payment
type PaymentModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DriverID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	TripID    *uuid.UUID `gorm:"type:uuid;index"`
	Amount    float64    `gorm:"type:decimal(12,2);not null"`
	DueDate   *time.Time `gorm:"type:date;index"`
	PaidDate  *time.Time `gorm:"type:date"`
	Status    string     `gorm:"type:varchar(20);not null;default:'pending';index;check:status IN ('pending','paid','overdue')"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`

	Driver *DriverModel `gorm:"foreignKey:DriverID"`
	Trip   *TripModel   `gorm:"foreignKey:TripID"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
