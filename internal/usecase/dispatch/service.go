package dispatch

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainDriver "fleetops/internal/domain/driver"
	domainTrip "fleetops/internal/domain/trip"
	domainTruck "fleetops/internal/domain/truck"
	"fleetops/internal/lifecycle"
	"fleetops/internal/logger"
	appErrors "fleetops/pkg/errors"
	"fleetops/pkg/utils"
)

// Service is the resource-state coordinator: it owns trip creation and the
// status transitions that couple trip, truck and driver state.
type Service struct {
	tripRepo   domainTrip.Repository
	truckRepo  domainTruck.Repository
	driverRepo domainDriver.Repository
}

func NewService(
	tripRepo domainTrip.Repository,
	truckRepo domainTruck.Repository,
	driverRepo domainDriver.Repository,
) *Service {
	return &Service{
		tripRepo:   tripRepo,
		truckRepo:  truckRepo,
		driverRepo: driverRepo,
	}
}

// CreateTrip checks resource availability in a fixed order (truck exists,
// truck available, cargo within capacity, driver exists, driver available;
// first failure wins) and then applies the assignment. The repository
// re-checks both rows under a lock, so a concurrent assignment racing on
// the same truck or driver cannot double-book it.
func (s *Service) CreateTrip(ctx context.Context, req *CreateTripRequest) (*TripResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	assignedTruck, err := s.truckRepo.GetByID(ctx, req.TruckID)
	if err != nil {
		return nil, err
	}
	if assignedTruck.Status != domainTruck.StatusAvailable {
		return nil, domainTruck.ErrTruckUnavailable
	}
	if req.CargoWeightKg > assignedTruck.CapacityKg {
		return nil, domainTruck.ErrCapacityExceeded
	}

	assignedDriver, err := s.driverRepo.GetByID(ctx, req.DriverID)
	if err != nil {
		return nil, err
	}
	if assignedDriver.Status != domainDriver.StatusAvailable {
		return nil, domainDriver.ErrDriverUnavailable
	}

	newTrip := &domainTrip.Trip{
		TruckID:          req.TruckID,
		DriverID:         req.DriverID,
		Origin:           utils.SanitizeString(req.Origin),
		Destination:      utils.SanitizeString(req.Destination),
		CargoWeightKg:    req.CargoWeightKg,
		DistanceKm:       req.DistanceKm,
		StartDate:        req.StartDate,
		EstimatedArrival: req.EstimatedArrival,
		Status:           domainTrip.StatusScheduled,
		Cost:             req.Cost,
	}

	if err := s.tripRepo.CreateAssigned(ctx, newTrip); err != nil {
		return nil, err
	}

	logger.Info("Trip scheduled",
		zap.String("trip_id", newTrip.ID.String()),
		zap.String("truck_id", req.TruckID.String()),
		zap.String("driver_id", req.DriverID.String()),
		zap.String("event", "trip_scheduled"),
	)

	return ToTripResponse(newTrip), nil
}

// TransitionTrip moves a trip to in_progress, completed or cancelled.
// Completion reverts the trip's truck and driver to available; the other
// transitions leave them untouched.
func (s *Service) TransitionTrip(ctx context.Context, tripID uuid.UUID, req *TransitionTripRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	current, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return err
	}

	next := domainTrip.Status(req.Status)
	if err := lifecycle.ValidateTrip(current.Status, next); err != nil {
		return err
	}

	if next == domainTrip.StatusCompleted {
		endDate := time.Now()
		if req.EndDate != nil {
			endDate = *req.EndDate
		}
		if err := s.tripRepo.Complete(ctx, tripID, endDate); err != nil {
			return err
		}
	} else {
		if err := s.tripRepo.UpdateStatus(ctx, tripID, next); err != nil {
			return err
		}
	}

	logger.Info("Trip transitioned",
		zap.String("trip_id", tripID.String()),
		zap.String("from", string(current.Status)),
		zap.String("to", string(next)),
		zap.String("event", "trip_transitioned"),
	)

	return nil
}

func (s *Service) GetTrip(ctx context.Context, tripID uuid.UUID) (*TripResponse, error) {
	t, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return ToTripResponse(t), nil
}

func (s *Service) ListTrips(ctx context.Context) ([]*TripDetailResponse, error) {
	details, err := s.tripRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return ToTripDetailResponses(details), nil
}

func (s *Service) ListTripsByDriver(ctx context.Context, driverID uuid.UUID) ([]*TripDetailResponse, error) {
	details, err := s.tripRepo.ListByDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}
	return ToTripDetailResponses(details), nil
}
