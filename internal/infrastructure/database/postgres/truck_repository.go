package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleetops/internal/domain/truck"
	"fleetops/internal/infrastructure/database/postgres/models"
)

type TruckRepository struct {
	db *DB
}

func NewTruckRepository(db *DB) *TruckRepository {
	return &TruckRepository{db: db}
}

func (r *TruckRepository) Create(ctx context.Context, t *truck.Truck) error {
	t.ID = uuid.New()
	t.CreatedAt = time.Now()
	t.UpdatedAt = time.Now()
	if t.Status == "" {
		t.Status = truck.StatusAvailable
	}

	dbModel := toTruckModel(t)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return truck.ErrPlateAlreadyExists
		}
		return fmt.Errorf("failed to create truck: %w", err)
	}

	t.ID = dbModel.ID
	return nil
}

func (r *TruckRepository) GetByID(ctx context.Context, truckID uuid.UUID) (*truck.Truck, error) {
	var dbModel models.TruckModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", truckID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, truck.ErrTruckNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get truck: %w", err)
	}

	return toTruckEntity(&dbModel), nil
}

func (r *TruckRepository) List(ctx context.Context) ([]*truck.Truck, error) {
	var dbModels []models.TruckModel
	if err := r.db.DB.WithContext(ctx).Order("created_at").Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list trucks: %w", err)
	}

	trucks := make([]*truck.Truck, 0, len(dbModels))
	for i := range dbModels {
		trucks = append(trucks, toTruckEntity(&dbModels[i]))
	}
	return trucks, nil
}

func (r *TruckRepository) Update(ctx context.Context, t *truck.Truck) error {
	t.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).
		Model(&models.TruckModel{}).
		Where("id = ?", t.ID).
		Updates(map[string]interface{}{
			"status":            string(t.Status),
			"last_service_date": t.LastServiceDate,
			"next_service_date": t.NextServiceDate,
			"odometer_km":       t.OdometerKm,
			"fuel_efficiency":   t.FuelEfficiency,
			"latitude":          t.Latitude,
			"longitude":         t.Longitude,
			"updated_at":        t.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update truck: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return truck.ErrTruckNotFound
	}

	return nil
}

func (r *TruckRepository) UpdatePosition(ctx context.Context, truckID uuid.UUID, latitude, longitude float64, odometerKm int, recordedAt time.Time) error {
	updates := map[string]interface{}{
		"latitude":   latitude,
		"longitude":  longitude,
		"updated_at": recordedAt,
	}
	if odometerKm > 0 {
		updates["odometer_km"] = odometerKm
	}

	result := r.db.DB.WithContext(ctx).
		Model(&models.TruckModel{}).
		Where("id = ?", truckID).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update truck position: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return truck.ErrTruckNotFound
	}

	return nil
}

func toTruckModel(t *truck.Truck) *models.TruckModel {
	return &models.TruckModel{
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
		UpdatedAt:       t.UpdatedAt,
	}
}

func toTruckEntity(m *models.TruckModel) *truck.Truck {
	return &truck.Truck{
		ID:              m.ID,
		PlateNumber:     m.PlateNumber,
		Model:           m.Model,
		CapacityKg:      m.CapacityKg,
		Status:          truck.Status(m.Status),
		LastServiceDate: m.LastServiceDate,
		NextServiceDate: m.NextServiceDate,
		OdometerKm:      m.OdometerKm,
		FuelEfficiency:  m.FuelEfficiency,
		Latitude:        m.Latitude,
		Longitude:       m.Longitude,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
