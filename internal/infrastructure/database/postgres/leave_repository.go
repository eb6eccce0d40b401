package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fleetops/internal/domain/driver"
	"fleetops/internal/domain/leave"
	"fleetops/internal/infrastructure/database/postgres/models"
)

type LeaveRepository struct {
	db *DB
}

func NewLeaveRepository(db *DB) *LeaveRepository {
	return &LeaveRepository{db: db}
}

func (r *LeaveRepository) Create(ctx context.Context, req *leave.Request) error {
	req.ID = uuid.New()
	req.CreatedAt = time.Now()
	req.UpdatedAt = time.Now()
	if req.Status == "" {
		req.Status = leave.StatusPending
	}

	dbModel := toLeaveModel(req)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create leave request: %w", err)
	}

	req.ID = dbModel.ID
	return nil
}

func (r *LeaveRepository) GetByID(ctx context.Context, requestID uuid.UUID) (*leave.Request, error) {
	var dbModel models.LeaveRequestModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", requestID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, leave.ErrLeaveRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get leave request: %w", err)
	}

	return toLeaveEntity(&dbModel), nil
}

func (r *LeaveRepository) List(ctx context.Context) ([]*leave.Detail, error) {
	var dbModels []models.LeaveRequestModel
	err := r.db.DB.WithContext(ctx).
		Preload("Driver").
		Order("created_at DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	details := make([]*leave.Detail, 0, len(dbModels))
	for i := range dbModels {
		detail := &leave.Detail{Request: *toLeaveEntity(&dbModels[i])}
		if dbModels[i].Driver != nil {
			detail.DriverName = dbModels[i].Driver.Name
		}
		details = append(details, detail)
	}
	return details, nil
}

func (r *LeaveRepository) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*leave.Request, error) {
	var dbModels []models.LeaveRequestModel
	err := r.db.DB.WithContext(ctx).
		Where("driver_id = ?", driverID).
		Order("created_at DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests by driver: %w", err)
	}

	requests := make([]*leave.Request, 0, len(dbModels))
	for i := range dbModels {
		requests = append(requests, toLeaveEntity(&dbModels[i]))
	}
	return requests, nil
}

// Decide records the approval or rejection. On approval the driver is moved
// to on_leave in the same transaction so the two writes land together.
func (r *LeaveRepository) Decide(ctx context.Context, requestID uuid.UUID, status leave.Status) error {
	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var leaveRow models.LeaveRequestModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", requestID).
			First(&leaveRow).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return leave.ErrLeaveRequestNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock leave request: %w", err)
		}

		if err := tx.Model(&models.LeaveRequestModel{}).
			Where("id = ?", requestID).
			Updates(map[string]interface{}{
				"status":     string(status),
				"updated_at": time.Now(),
			}).Error; err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}

		if status == leave.StatusApproved {
			if err := tx.Model(&models.DriverModel{}).
				Where("id = ?", leaveRow.DriverID).
				Updates(map[string]interface{}{
					"status":     string(driver.StatusOnLeave),
					"updated_at": time.Now(),
				}).Error; err != nil {
				return fmt.Errorf("failed to update driver status: %w", err)
			}
		}

		return nil
	})
}

func toLeaveModel(req *leave.Request) *models.LeaveRequestModel {
	return &models.LeaveRequestModel{
		ID:        req.ID,
		DriverID:  req.DriverID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
		Status:    string(req.Status),
		CreatedAt: req.CreatedAt,
		UpdatedAt: req.UpdatedAt,
	}
}

func toLeaveEntity(m *models.LeaveRequestModel) *leave.Request {
	return &leave.Request{
		ID:        m.ID,
		DriverID:  m.DriverID,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		Reason:    m.Reason,
		Status:    leave.Status(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
