package maintenance

import (
	"context"
	"time"

	"go.uber.org/zap"

	domainMaintenance "fleetops/internal/domain/maintenance"
	"fleetops/internal/logger"
	appErrors "fleetops/pkg/errors"
	"fleetops/pkg/utils"
)

// Service records maintenance work. Logging a service entry releases the
// truck back to available; the repository couples the two writes.
type Service struct {
	maintenanceRepo domainMaintenance.Repository
}

func NewService(maintenanceRepo domainMaintenance.Repository) *Service {
	return &Service{maintenanceRepo: maintenanceRepo}
}

func (s *Service) RecordService(ctx context.Context, req *RecordRequest) (*RecordResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	serviceDate := time.Now().UTC()
	if req.ServiceDate != nil {
		serviceDate = *req.ServiceDate
	}

	record := &domainMaintenance.Record{
		TruckID:         req.TruckID,
		ServiceType:     utils.SanitizeString(req.ServiceType),
		ServiceDate:     serviceDate,
		Cost:            req.Cost,
		OdometerReading: req.OdometerReading,
		Notes:           req.Notes,
		NextServiceKm:   req.NextServiceKm,
	}

	if err := s.maintenanceRepo.Record(ctx, record); err != nil {
		return nil, err
	}

	logger.Info("Maintenance recorded",
		zap.String("record_id", record.ID.String()),
		zap.String("truck_id", record.TruckID.String()),
		zap.String("service_type", record.ServiceType),
		zap.String("event", "maintenance_recorded"),
	)

	return ToRecordResponse(record), nil
}

func (s *Service) ListRecords(ctx context.Context) ([]*DetailResponse, error) {
	details, err := s.maintenanceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return ToDetailResponses(details), nil
}
