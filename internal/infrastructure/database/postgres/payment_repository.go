package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleetops/internal/domain/payment"
	"fleetops/internal/infrastructure/database/postgres/models"
)

type PaymentRepository struct {
	db *DB
}

func NewPaymentRepository(db *DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
	if p.Status == "" {
		p.Status = payment.StatusPending
	}

	dbModel := toPaymentModel(p)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	p.ID = dbModel.ID
	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, paymentID uuid.UUID) (*payment.Payment, error) {
	var dbModel models.PaymentModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", paymentID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, payment.ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return toPaymentEntity(&dbModel), nil
}

func (r *PaymentRepository) List(ctx context.Context) ([]*payment.Detail, error) {
	var dbModels []models.PaymentModel
	err := r.db.DB.WithContext(ctx).
		Preload("Driver").
		Preload("Trip").
		Order("due_date DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return toPaymentDetails(dbModels), nil
}

func (r *PaymentRepository) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*payment.Detail, error) {
	var dbModels []models.PaymentModel
	err := r.db.DB.WithContext(ctx).
		Preload("Driver").
		Preload("Trip").
		Where("driver_id = ?", driverID).
		Order("due_date DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list payments by driver: %w", err)
	}

	return toPaymentDetails(dbModels), nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, paymentID uuid.UUID, status payment.Status, paidDate *time.Time) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.PaymentModel{}).
		Where("id = ?", paymentID).
		Updates(map[string]interface{}{
			"status":     string(status),
			"paid_date":  paidDate,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update payment status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return payment.ErrPaymentNotFound
	}

	return nil
}

func toPaymentDetails(dbModels []models.PaymentModel) []*payment.Detail {
	details := make([]*payment.Detail, 0, len(dbModels))
	for i := range dbModels {
		detail := &payment.Detail{Payment: *toPaymentEntity(&dbModels[i])}
		if dbModels[i].Driver != nil {
			detail.DriverName = dbModels[i].Driver.Name
		}
		if dbModels[i].Trip != nil {
			detail.Origin = &dbModels[i].Trip.Origin
			detail.Destination = &dbModels[i].Trip.Destination
		}
		details = append(details, detail)
	}
	return details
}

func toPaymentModel(p *payment.Payment) *models.PaymentModel {
	return &models.PaymentModel{
		ID:        p.ID,
		DriverID:  p.DriverID,
		TripID:    p.TripID,
		Amount:    p.Amount,
		DueDate:   p.DueDate,
		PaidDate:  p.PaidDate,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toPaymentEntity(m *models.PaymentModel) *payment.Payment {
	return &payment.Payment{
		ID:        m.ID,
		DriverID:  m.DriverID,
		TripID:    m.TripID,
		Amount:    m.Amount,
		DueDate:   m.DueDate,
		PaidDate:  m.PaidDate,
		Status:    payment.Status(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
