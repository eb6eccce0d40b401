package models

import (
	"time"

	"github.com/google/uuid"
)

// LeaveRequestModel represents the database model for LeaveRequest
type LeaveRequestModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DriverID  uuid.UUID `gorm:"type:uuid;not null;index"`
	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null"`
	Reason    *string   `gorm:"type:text"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending';index;check:status IN ('pending','approved','rejected')"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`

	Driver *DriverModel `gorm:"foreignKey:DriverID"`
}

func (LeaveRequestModel) TableName() string {
	return "leave_requests"
}
