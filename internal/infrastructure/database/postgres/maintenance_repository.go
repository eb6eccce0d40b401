package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleetops/internal/domain/maintenance"
	"fleetops/internal/domain/truck"
	"fleetops/internal/infrastructure/database/postgres/models"
)

type MaintenanceRepository struct {
	db *DB
}

func NewMaintenanceRepository(db *DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

// Record inserts the maintenance entry, stamps the truck's last service
// date and releases the truck back to available, all in one transaction.
func (r *MaintenanceRepository) Record(ctx context.Context, rec *maintenance.Record) error {
	rec.ID = uuid.New()
	rec.CreatedAt = time.Now()

	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.TruckModel{}).
			Where("id = ?", rec.TruckID).
			Updates(map[string]interface{}{
				"last_service_date": rec.ServiceDate,
				"status":            string(truck.StatusAvailable),
				"updated_at":        time.Now(),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update truck service date: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return truck.ErrTruckNotFound
		}

		if err := tx.Create(toMaintenanceModel(rec)).Error; err != nil {
			return fmt.Errorf("failed to create maintenance record: %w", err)
		}

		return nil
	})
}

func (r *MaintenanceRepository) List(ctx context.Context) ([]*maintenance.Detail, error) {
	var dbModels []models.MaintenanceModel
	err := r.db.DB.WithContext(ctx).
		Preload("Truck").
		Order("service_date DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance records: %w", err)
	}

	details := make([]*maintenance.Detail, 0, len(dbModels))
	for i := range dbModels {
		detail := &maintenance.Detail{Record: *toMaintenanceEntity(&dbModels[i])}
		if dbModels[i].Truck != nil {
			detail.PlateNumber = dbModels[i].Truck.PlateNumber
			detail.TruckModel = dbModels[i].Truck.Model
		}
		details = append(details, detail)
	}
	return details, nil
}

func toMaintenanceModel(rec *maintenance.Record) *models.MaintenanceModel {
	return &models.MaintenanceModel{
		ID:              rec.ID,
		TruckID:         rec.TruckID,
		ServiceType:     rec.ServiceType,
		ServiceDate:     rec.ServiceDate,
		Cost:            rec.Cost,
		OdometerReading: rec.OdometerReading,
		Notes:           rec.Notes,
		NextServiceKm:   rec.NextServiceKm,
		CreatedAt:       rec.CreatedAt,
	}
}

func toMaintenanceEntity(m *models.MaintenanceModel) *maintenance.Record {
	return &maintenance.Record{
		ID:              m.ID,
		TruckID:         m.TruckID,
		ServiceType:     m.ServiceType,
		ServiceDate:     m.ServiceDate,
		Cost:            m.Cost,
		OdometerReading: m.OdometerReading,
		Notes:           m.Notes,
		NextServiceKm:   m.NextServiceKm,
		CreatedAt:       m.CreatedAt,
	}
}
