package fleet

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainDriver "fleetops/internal/domain/driver"
	domainTruck "fleetops/internal/domain/truck"
	"fleetops/internal/lifecycle"
	"fleetops/internal/logger"
	appErrors "fleetops/pkg/errors"
	"fleetops/pkg/utils"
)

// Service owns truck and driver records. Direct status edits go through the
// lifecycle tables; on_trip is never accepted from a client, and a resource
// currently on a trip can only be released by the trip coordinator.
type Service struct {
	truckRepo  domainTruck.Repository
	driverRepo domainDriver.Repository
}

func NewService(truckRepo domainTruck.Repository, driverRepo domainDriver.Repository) *Service {
	return &Service{
		truckRepo:  truckRepo,
		driverRepo: driverRepo,
	}
}

func (s *Service) CreateTruck(ctx context.Context, req *CreateTruckRequest) (*TruckResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	newTruck := &domainTruck.Truck{
		PlateNumber:    utils.SanitizeString(req.PlateNumber),
		Model:          req.Model,
		CapacityKg:     req.CapacityKg,
		Status:         domainTruck.StatusAvailable,
		FuelEfficiency: req.FuelEfficiency,
	}

	if err := s.truckRepo.Create(ctx, newTruck); err != nil {
		return nil, err
	}

	logger.Info("Truck registered",
		zap.String("truck_id", newTruck.ID.String()),
		zap.String("plate_number", newTruck.PlateNumber),
		zap.String("event", "truck_registered"),
	)

	return ToTruckResponse(newTruck), nil
}

func (s *Service) GetTruck(ctx context.Context, truckID uuid.UUID) (*TruckResponse, error) {
	t, err := s.truckRepo.GetByID(ctx, truckID)
	if err != nil {
		return nil, err
	}
	return ToTruckResponse(t), nil
}

func (s *Service) ListTrucks(ctx context.Context) ([]*TruckResponse, error) {
	trucks, err := s.truckRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*TruckResponse, 0, len(trucks))
	for _, t := range trucks {
		responses = append(responses, ToTruckResponse(t))
	}
	return responses, nil
}

func (s *Service) UpdateTruck(ctx context.Context, truckID uuid.UUID, req *UpdateTruckRequest) (*TruckResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	t, err := s.truckRepo.GetByID(ctx, truckID)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		next := domainTruck.Status(*req.Status)
		if next != t.Status {
			// A truck on a trip belongs to the coordinator until the trip
			// completes or is cancelled; direct edits may not move it.
			if t.Status == domainTruck.StatusOnTrip {
				return nil, &lifecycle.TransitionError{
					Entity: "truck", From: string(t.Status), To: string(next),
				}
			}
			if err := lifecycle.ValidateTruck(t.Status, next); err != nil {
				return nil, err
			}
			t.Status = next
		}
	}
	if req.LastServiceDate != nil {
		t.LastServiceDate = req.LastServiceDate
	}
	if req.NextServiceDate != nil {
		t.NextServiceDate = req.NextServiceDate
	}
	if req.OdometerKm != nil {
		t.OdometerKm = *req.OdometerKm
	}
	if req.Latitude != nil {
		t.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		t.Longitude = req.Longitude
	}

	if err := s.truckRepo.Update(ctx, t); err != nil {
		return nil, err
	}

	return ToTruckResponse(t), nil
}

func (s *Service) CreateDriver(ctx context.Context, req *CreateDriverRequest) (*DriverResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	newDriver := &domainDriver.Driver{
		UserID:        req.UserID,
		Name:          utils.SanitizeString(req.Name),
		Phone:         req.Phone,
		LicenseNumber: req.LicenseNumber,
		LicenseExpiry: req.LicenseExpiry,
		Status:        domainDriver.StatusAvailable,
	}

	if err := s.driverRepo.Create(ctx, newDriver); err != nil {
		return nil, err
	}

	logger.Info("Driver registered",
		zap.String("driver_id", newDriver.ID.String()),
		zap.String("event", "driver_registered"),
	)

	return ToDriverResponse(newDriver), nil
}

func (s *Service) GetDriver(ctx context.Context, driverID uuid.UUID) (*DriverResponse, error) {
	d, err := s.driverRepo.GetByID(ctx, driverID)
	if err != nil {
		return nil, err
	}
	return ToDriverResponse(d), nil
}

func (s *Service) ListDrivers(ctx context.Context) ([]*DriverResponse, error) {
	drivers, err := s.driverRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*DriverResponse, 0, len(drivers))
	for _, d := range drivers {
		responses = append(responses, ToDriverResponse(d))
	}
	return responses, nil
}

func (s *Service) UpdateDriver(ctx context.Context, driverID uuid.UUID, req *UpdateDriverRequest) (*DriverResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	d, err := s.driverRepo.GetByID(ctx, driverID)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		next := domainDriver.Status(*req.Status)
		if next != d.Status {
			// Same rule as trucks: a driver on a trip is released only by
			// trip completion.
			if d.Status == domainDriver.StatusOnTrip {
				return nil, &lifecycle.TransitionError{
					Entity: "driver", From: string(d.Status), To: string(next),
				}
			}
			if err := lifecycle.ValidateDriver(d.Status, next); err != nil {
				return nil, err
			}
			d.Status = next
		}
	}
	if req.Phone != nil {
		d.Phone = req.Phone
	}
	if req.Documents != nil {
		d.Documents = req.Documents
	}

	if err := s.driverRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	return ToDriverResponse(d), nil
}
