package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"fleetops/internal/domain/trip"
	"fleetops/internal/domain/truck"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}

	return &DB{DB: db}, mock
}

// A successful assignment is one transaction: insert the trip, move the
// truck and the driver to on_trip, commit.
func TestTripRepositoryCreateAssignedCouplesStatuses(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTripRepository(db)

	truckID := uuid.New()
	driverID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "trucks" WHERE id = .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "capacity_kg", "status"}).
			AddRow(truckID.String(), 5000, "available"))
	mock.ExpectQuery(`SELECT .* FROM "drivers" WHERE id = .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "status"}).
			AddRow(driverID.String(), "Nguyen Van An", "available"))
	mock.ExpectQuery(`INSERT INTO "trips"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
	mock.ExpectExec(`UPDATE "trucks" SET`).
		WithArgs("on_trip", sqlmock.AnyArg(), truckID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "drivers" SET`).
		WithArgs("on_trip", sqlmock.AnyArg(), driverID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CreateAssigned(context.Background(), &trip.Trip{
		TruckID:       truckID,
		DriverID:      driverID,
		Origin:        "Hanoi",
		Destination:   "Da Nang",
		CargoWeightKg: 1200,
		StartDate:     time.Now(),
	})
	if err != nil {
		t.Fatalf("CreateAssigned() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// When the locked truck row is not available the transaction rolls back
// before anything is written.
func TestTripRepositoryCreateAssignedUnavailableTruckRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTripRepository(db)

	truckID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "trucks" WHERE id = .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "capacity_kg", "status"}).
			AddRow(truckID.String(), 5000, "on_trip"))
	mock.ExpectRollback()

	err := repo.CreateAssigned(context.Background(), &trip.Trip{
		TruckID:       truckID,
		DriverID:      uuid.New(),
		Origin:        "Hanoi",
		Destination:   "Da Nang",
		CargoWeightKg: 1200,
		StartDate:     time.Now(),
	})
	if !errors.Is(err, truck.ErrTruckUnavailable) {
		t.Fatalf("CreateAssigned() error = %v, want ErrTruckUnavailable", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestTripRepositoryCompleteReleasesResources(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTripRepository(db)

	tripID := uuid.New()
	truckID := uuid.New()
	driverID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "trips" WHERE id = .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "truck_id", "driver_id", "status"}).
			AddRow(tripID.String(), truckID.String(), driverID.String(), "in_progress"))
	mock.ExpectExec(`UPDATE "trips" SET`).
		WithArgs(sqlmock.AnyArg(), "completed", sqlmock.AnyArg(), tripID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "trucks" SET`).
		WithArgs("available", sqlmock.AnyArg(), truckID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "drivers" SET`).
		WithArgs("available", sqlmock.AnyArg(), driverID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.Complete(context.Background(), tripID, time.Now()); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// A failure after the trip row is updated rolls the whole transaction back,
// so a completed trip can never leave its truck stuck on_trip.
func TestTripRepositoryCompleteRollsBackWhenReleaseFails(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTripRepository(db)

	tripID := uuid.New()
	truckID := uuid.New()
	driverID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "trips" WHERE id = .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "truck_id", "driver_id", "status"}).
			AddRow(tripID.String(), truckID.String(), driverID.String(), "in_progress"))
	mock.ExpectExec(`UPDATE "trips" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "trucks" SET`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	if err := repo.Complete(context.Background(), tripID, time.Now()); err == nil {
		t.Fatal("Complete() error = nil, want release failure")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
