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
	"fleetops/internal/domain/trip"
	"fleetops/internal/domain/truck"
	"fleetops/internal/infrastructure/database/postgres/models"
)

type TripRepository struct {
	db *DB
}

func NewTripRepository(db *DB) *TripRepository {
	return &TripRepository{db: db}
}

// CreateAssigned inserts the trip and flips its truck and driver to on_trip
// as one transaction. Both resource rows are taken with SELECT ... FOR
// UPDATE and re-checked under the lock, so two assignments racing on the
// same truck or driver serialize and exactly one wins.
func (r *TripRepository) CreateAssigned(ctx context.Context, t *trip.Trip) error {
	t.ID = uuid.New()
	t.CreatedAt = time.Now()
	t.UpdatedAt = time.Now()
	if t.Status == "" {
		t.Status = trip.StatusScheduled
	}

	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var truckRow models.TruckModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", t.TruckID).
			First(&truckRow).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return truck.ErrTruckNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock truck: %w", err)
		}
		if truck.Status(truckRow.Status) != truck.StatusAvailable {
			return truck.ErrTruckUnavailable
		}
		if t.CargoWeightKg > truckRow.CapacityKg {
			return truck.ErrCapacityExceeded
		}

		var driverRow models.DriverModel
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", t.DriverID).
			First(&driverRow).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return driver.ErrDriverNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock driver: %w", err)
		}
		if driver.Status(driverRow.Status) != driver.StatusAvailable {
			return driver.ErrDriverUnavailable
		}

		if err := tx.Create(toTripModel(t)).Error; err != nil {
			return fmt.Errorf("failed to create trip: %w", err)
		}

		if err := tx.Model(&models.TruckModel{}).
			Where("id = ?", t.TruckID).
			Updates(map[string]interface{}{
				"status":     string(truck.StatusOnTrip),
				"updated_at": time.Now(),
			}).Error; err != nil {
			return fmt.Errorf("failed to update truck status: %w", err)
		}

		if err := tx.Model(&models.DriverModel{}).
			Where("id = ?", t.DriverID).
			Updates(map[string]interface{}{
				"status":     string(driver.StatusOnTrip),
				"updated_at": time.Now(),
			}).Error; err != nil {
			return fmt.Errorf("failed to update driver status: %w", err)
		}

		return nil
	})
}

func (r *TripRepository) GetByID(ctx context.Context, tripID uuid.UUID) (*trip.Trip, error) {
	var dbModel models.TripModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", tripID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, trip.ErrTripNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return toTripEntity(&dbModel), nil
}

func (r *TripRepository) List(ctx context.Context) ([]*trip.Detail, error) {
	var dbModels []models.TripModel
	err := r.db.DB.WithContext(ctx).
		Preload("Truck").
		Preload("Driver").
		Order("start_date DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}

	return toTripDetails(dbModels), nil
}

func (r *TripRepository) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*trip.Detail, error) {
	var dbModels []models.TripModel
	err := r.db.DB.WithContext(ctx).
		Preload("Truck").
		Preload("Driver").
		Where("driver_id = ?", driverID).
		Order("start_date DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list trips by driver: %w", err)
	}

	return toTripDetails(dbModels), nil
}

// Complete marks the trip completed and reverts its truck and driver to
// available in one transaction.
func (r *TripRepository) Complete(ctx context.Context, tripID uuid.UUID, endDate time.Time) error {
	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tripRow models.TripModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", tripID).
			First(&tripRow).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return trip.ErrTripNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock trip: %w", err)
		}

		if err := tx.Model(&models.TripModel{}).
			Where("id = ?", tripID).
			Updates(map[string]interface{}{
				"status":     string(trip.StatusCompleted),
				"end_date":   endDate,
				"updated_at": time.Now(),
			}).Error; err != nil {
			return fmt.Errorf("failed to update trip: %w", err)
		}

		if err := tx.Model(&models.TruckModel{}).
			Where("id = ?", tripRow.TruckID).
			Updates(map[string]interface{}{
				"status":     string(truck.StatusAvailable),
				"updated_at": time.Now(),
			}).Error; err != nil {
			return fmt.Errorf("failed to release truck: %w", err)
		}

		if err := tx.Model(&models.DriverModel{}).
			Where("id = ?", tripRow.DriverID).
			Updates(map[string]interface{}{
				"status":     string(driver.StatusAvailable),
				"updated_at": time.Now(),
			}).Error; err != nil {
			return fmt.Errorf("failed to release driver: %w", err)
		}

		return nil
	})
}

func (r *TripRepository) UpdateStatus(ctx context.Context, tripID uuid.UUID, status trip.Status) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.TripModel{}).
		Where("id = ?", tripID).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update trip status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return trip.ErrTripNotFound
	}

	return nil
}

func toTripDetails(dbModels []models.TripModel) []*trip.Detail {
	details := make([]*trip.Detail, 0, len(dbModels))
	for i := range dbModels {
		detail := &trip.Detail{Trip: *toTripEntity(&dbModels[i])}
		if dbModels[i].Truck != nil {
			detail.PlateNumber = dbModels[i].Truck.PlateNumber
			detail.TruckModel = dbModels[i].Truck.Model
		}
		if dbModels[i].Driver != nil {
			detail.DriverName = dbModels[i].Driver.Name
		}
		details = append(details, detail)
	}
	return details
}

func toTripModel(t *trip.Trip) *models.TripModel {
	return &models.TripModel{
		ID:               t.ID,
		TruckID:          t.TruckID,
		DriverID:         t.DriverID,
		Origin:           t.Origin,
		Destination:      t.Destination,
		CargoWeightKg:    t.CargoWeightKg,
		DistanceKm:       t.DistanceKm,
		StartDate:        t.StartDate,
		EndDate:          t.EndDate,
		EstimatedArrival: t.EstimatedArrival,
		Status:           string(t.Status),
		Cost:             t.Cost,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func toTripEntity(m *models.TripModel) *trip.Trip {
	return &trip.Trip{
		ID:               m.ID,
		TruckID:          m.TruckID,
		DriverID:         m.DriverID,
		Origin:           m.Origin,
		Destination:      m.Destination,
		CargoWeightKg:    m.CargoWeightKg,
		DistanceKm:       m.DistanceKm,
		StartDate:        m.StartDate,
		EndDate:          m.EndDate,
		EstimatedArrival: m.EstimatedArrival,
		Status:           trip.Status(m.Status),
		Cost:             m.Cost,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
