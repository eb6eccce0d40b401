package models

import (
	"time"

	"github.com/google/uuid"
)

// DriverModel represents the database model for Driver
type DriverModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID        *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Name          string     `gorm:"type:varchar(255);not null"`
	Phone         *string    `gorm:"type:varchar(20)"`
	LicenseNumber *string    `gorm:"type:varchar(100)"`
	LicenseExpiry *time.Time `gorm:"type:date"`
	Status        string     `gorm:"type:varchar(20);not null;default:'available';index;check:status IN ('available','on_trip','on_leave')"`
	Documents     *string    `gorm:"type:text"`
	CreatedAt     time.Time  `gorm:"not null"`
	UpdatedAt     time.Time  `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID"`
}

func (DriverModel) TableName() string {
	return "drivers"
}
