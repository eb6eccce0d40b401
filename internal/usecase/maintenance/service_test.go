package maintenance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	domainMaintenance "fleetops/internal/domain/maintenance"
	domainTruck "fleetops/internal/domain/truck"
	"fleetops/internal/mocks"
)

func TestRecordService(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMaintenanceRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	truckID := uuid.New()
	repo.EXPECT().Record(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, record *domainMaintenance.Record) error {
			if record.TruckID != truckID {
				t.Errorf("record truck = %s, want %s", record.TruckID, truckID)
			}
			if record.ServiceDate.IsZero() {
				t.Error("service date not defaulted")
			}
			record.ID = uuid.New()
			return nil
		})

	cost := 450.0
	resp, err := svc.RecordService(ctx, &RecordRequest{
		TruckID:     truckID,
		ServiceType: "oil_change",
		Cost:        &cost,
	})
	if err != nil {
		t.Fatalf("RecordService() error = %v", err)
	}
	if resp.ServiceType != "oil_change" {
		t.Errorf("response service type = %s", resp.ServiceType)
	}
}

func TestRecordServiceExplicitDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMaintenanceRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	serviceDate := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().Record(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, record *domainMaintenance.Record) error {
			if !record.ServiceDate.Equal(serviceDate) {
				t.Errorf("service date = %v, want %v", record.ServiceDate, serviceDate)
			}
			return nil
		})

	_, err := svc.RecordService(ctx, &RecordRequest{
		TruckID:     uuid.New(),
		ServiceType: "brake_inspection",
		ServiceDate: &serviceDate,
	})
	if err != nil {
		t.Fatalf("RecordService() error = %v", err)
	}
}

func TestRecordServiceUnknownTruck(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMaintenanceRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	repo.EXPECT().Record(ctx, gomock.Any()).Return(domainTruck.ErrTruckNotFound)

	_, err := svc.RecordService(ctx, &RecordRequest{
		TruckID:     uuid.New(),
		ServiceType: "oil_change",
	})
	if !errors.Is(err, domainTruck.ErrTruckNotFound) {
		t.Errorf("RecordService() error = %v, want ErrTruckNotFound", err)
	}
}
