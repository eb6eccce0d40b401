package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleetops/internal/domain/driver"
	"fleetops/internal/infrastructure/database/postgres/models"
)

type DriverRepository struct {
	db *DB
}

func NewDriverRepository(db *DB) *DriverRepository {
	return &DriverRepository{db: db}
}

func (r *DriverRepository) Create(ctx context.Context, d *driver.Driver) error {
	d.ID = uuid.New()
	d.CreatedAt = time.Now()
	d.UpdatedAt = time.Now()
	if d.Status == "" {
		d.Status = driver.StatusAvailable
	}

	dbModel := toDriverModel(d)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create driver: %w", err)
	}

	d.ID = dbModel.ID
	return nil
}

func (r *DriverRepository) GetByID(ctx context.Context, driverID uuid.UUID) (*driver.Driver, error) {
	var dbModel models.DriverModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", driverID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, driver.ErrDriverNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}

	return toDriverEntity(&dbModel), nil
}

func (r *DriverRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*driver.Driver, error) {
	var dbModel models.DriverModel
	err := r.db.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, driver.ErrDriverNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get driver by user: %w", err)
	}

	return toDriverEntity(&dbModel), nil
}

func (r *DriverRepository) List(ctx context.Context) ([]*driver.Driver, error) {
	var dbModels []models.DriverModel
	if err := r.db.DB.WithContext(ctx).Order("created_at").Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}

	drivers := make([]*driver.Driver, 0, len(dbModels))
	for i := range dbModels {
		drivers = append(drivers, toDriverEntity(&dbModels[i]))
	}
	return drivers, nil
}

func (r *DriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	d.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.DriverModel{}).
		Where("id = ?", d.ID).
		Updates(map[string]interface{}{
			"name":           d.Name,
			"phone":          d.Phone,
			"license_number": d.LicenseNumber,
			"license_expiry": d.LicenseExpiry,
			"status":         string(d.Status),
			"documents":      d.Documents,
			"updated_at":     d.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update driver: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return driver.ErrDriverNotFound
	}

	return nil
}

func toDriverModel(d *driver.Driver) *models.DriverModel {
	return &models.DriverModel{
		ID:            d.ID,
		UserID:        d.UserID,
		Name:          d.Name,
		Phone:         d.Phone,
		LicenseNumber: d.LicenseNumber,
		LicenseExpiry: d.LicenseExpiry,
		Status:        string(d.Status),
		Documents:     d.Documents,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func toDriverEntity(m *models.DriverModel) *driver.Driver {
	return &driver.Driver{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		Phone:         m.Phone,
		LicenseNumber: m.LicenseNumber,
		LicenseExpiry: m.LicenseExpiry,
		Status:        driver.Status(m.Status),
		Documents:     m.Documents,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
