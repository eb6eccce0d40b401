package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	domainDriver "fleetops/internal/domain/driver"
	domainTrip "fleetops/internal/domain/trip"
	domainTruck "fleetops/internal/domain/truck"
	"fleetops/internal/lifecycle"
	"fleetops/internal/mocks"
)

func newTestService(t *testing.T) (*Service, *mocks.MockTripRepository, *mocks.MockTruckRepository, *mocks.MockDriverRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	tripRepo := mocks.NewMockTripRepository(ctrl)
	truckRepo := mocks.NewMockTruckRepository(ctrl)
	driverRepo := mocks.NewMockDriverRepository(ctrl)
	return NewService(tripRepo, truckRepo, driverRepo), tripRepo, truckRepo, driverRepo
}

func availableTruck(capacityKg int) *domainTruck.Truck {
	return &domainTruck.Truck{
		ID:          uuid.New(),
		PlateNumber: "29C-12345",
		CapacityKg:  capacityKg,
		Status:      domainTruck.StatusAvailable,
	}
}

func availableDriver() *domainDriver.Driver {
	return &domainDriver.Driver{
		ID:     uuid.New(),
		Name:   "Nguyen Van A",
		Status: domainDriver.StatusAvailable,
	}
}

func createRequest(truckID, driverID uuid.UUID, cargoKg int) *CreateTripRequest {
	return &CreateTripRequest{
		TruckID:       truckID,
		DriverID:      driverID,
		Origin:        "Hanoi",
		Destination:   "Da Nang",
		CargoWeightKg: cargoKg,
		DistanceKm:    780,
		StartDate:     time.Now(),
	}
}

func TestCreateTrip(t *testing.T) {
	svc, tripRepo, truckRepo, driverRepo := newTestService(t)
	ctx := context.Background()

	tr := availableTruck(10000)
	dr := availableDriver()

	truckRepo.EXPECT().GetByID(ctx, tr.ID).Return(tr, nil)
	driverRepo.EXPECT().GetByID(ctx, dr.ID).Return(dr, nil)
	tripRepo.EXPECT().CreateAssigned(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, newTrip *domainTrip.Trip) error {
			if newTrip.Status != domainTrip.StatusScheduled {
				t.Errorf("new trip status = %s, want scheduled", newTrip.Status)
			}
			if newTrip.TruckID != tr.ID || newTrip.DriverID != dr.ID {
				t.Error("trip not assigned to requested truck and driver")
			}
			newTrip.ID = uuid.New()
			return nil
		})

	resp, err := svc.CreateTrip(ctx, createRequest(tr.ID, dr.ID, 8000))
	if err != nil {
		t.Fatalf("CreateTrip() error = %v", err)
	}
	if resp.Status != string(domainTrip.StatusScheduled) {
		t.Errorf("response status = %s, want scheduled", resp.Status)
	}
}

func TestCreateTripTruckNotFound(t *testing.T) {
	svc, _, truckRepo, _ := newTestService(t)
	ctx := context.Background()

	truckID := uuid.New()
	truckRepo.EXPECT().GetByID(ctx, truckID).Return(nil, domainTruck.ErrTruckNotFound)

	_, err := svc.CreateTrip(ctx, createRequest(truckID, uuid.New(), 100))
	if !errors.Is(err, domainTruck.ErrTruckNotFound) {
		t.Errorf("CreateTrip() error = %v, want ErrTruckNotFound", err)
	}
}

// A truck that is not available fails the request before the driver is even
// looked up, and no assignment write happens.
func TestCreateTripTruckUnavailable(t *testing.T) {
	svc, _, truckRepo, _ := newTestService(t)
	ctx := context.Background()

	tr := availableTruck(10000)
	tr.Status = domainTruck.StatusOnTrip
	truckRepo.EXPECT().GetByID(ctx, tr.ID).Return(tr, nil)

	_, err := svc.CreateTrip(ctx, createRequest(tr.ID, uuid.New(), 100))
	if !errors.Is(err, domainTruck.ErrTruckUnavailable) {
		t.Errorf("CreateTrip() error = %v, want ErrTruckUnavailable", err)
	}
}

// Capacity is checked before the driver, so an overweight request fails with
// the capacity error even when the driver would also have been unavailable.
func TestCreateTripCapacityExceeded(t *testing.T) {
	svc, _, truckRepo, _ := newTestService(t)
	ctx := context.Background()

	tr := availableTruck(5000)
	truckRepo.EXPECT().GetByID(ctx, tr.ID).Return(tr, nil)

	_, err := svc.CreateTrip(ctx, createRequest(tr.ID, uuid.New(), 5001))
	if !errors.Is(err, domainTruck.ErrCapacityExceeded) {
		t.Errorf("CreateTrip() error = %v, want ErrCapacityExceeded", err)
	}
}

func TestCreateTripDriverUnavailable(t *testing.T) {
	svc, _, truckRepo, driverRepo := newTestService(t)
	ctx := context.Background()

	tr := availableTruck(10000)
	dr := availableDriver()
	dr.Status = domainDriver.StatusOnLeave

	truckRepo.EXPECT().GetByID(ctx, tr.ID).Return(tr, nil)
	driverRepo.EXPECT().GetByID(ctx, dr.ID).Return(dr, nil)

	_, err := svc.CreateTrip(ctx, createRequest(tr.ID, dr.ID, 100))
	if !errors.Is(err, domainDriver.ErrDriverUnavailable) {
		t.Errorf("CreateTrip() error = %v, want ErrDriverUnavailable", err)
	}
}

// Two requests for the same truck cannot both succeed: the second one sees
// the truck already on_trip and is rejected without touching the trip store.
func TestCreateTripSecondRequestRejected(t *testing.T) {
	svc, tripRepo, truckRepo, driverRepo := newTestService(t)
	ctx := context.Background()

	tr := availableTruck(10000)
	first := availableDriver()
	second := availableDriver()

	truckRepo.EXPECT().GetByID(ctx, tr.ID).Return(tr, nil)
	driverRepo.EXPECT().GetByID(ctx, first.ID).Return(first, nil)
	tripRepo.EXPECT().CreateAssigned(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *domainTrip.Trip) error {
			tr.Status = domainTruck.StatusOnTrip
			first.Status = domainDriver.StatusOnTrip
			return nil
		})

	if _, err := svc.CreateTrip(ctx, createRequest(tr.ID, first.ID, 100)); err != nil {
		t.Fatalf("first CreateTrip() error = %v", err)
	}

	truckRepo.EXPECT().GetByID(ctx, tr.ID).Return(tr, nil)

	_, err := svc.CreateTrip(ctx, createRequest(tr.ID, second.ID, 100))
	if !errors.Is(err, domainTruck.ErrTruckUnavailable) {
		t.Errorf("second CreateTrip() error = %v, want ErrTruckUnavailable", err)
	}
}

func TestTransitionTripStart(t *testing.T) {
	svc, tripRepo, _, _ := newTestService(t)
	ctx := context.Background()

	tripID := uuid.New()
	tripRepo.EXPECT().GetByID(ctx, tripID).Return(&domainTrip.Trip{
		ID:     tripID,
		Status: domainTrip.StatusScheduled,
	}, nil)
	tripRepo.EXPECT().UpdateStatus(ctx, tripID, domainTrip.StatusInProgress).Return(nil)

	err := svc.TransitionTrip(ctx, tripID, &TransitionTripRequest{Status: "in_progress"})
	if err != nil {
		t.Fatalf("TransitionTrip() error = %v", err)
	}
}

// Completion goes through the transactional Complete so the truck and driver
// release happens atomically with the trip update.
func TestTransitionTripComplete(t *testing.T) {
	svc, tripRepo, _, _ := newTestService(t)
	ctx := context.Background()

	tripID := uuid.New()
	endDate := time.Date(2026, 3, 15, 18, 0, 0, 0, time.UTC)

	tripRepo.EXPECT().GetByID(ctx, tripID).Return(&domainTrip.Trip{
		ID:     tripID,
		Status: domainTrip.StatusInProgress,
	}, nil)
	tripRepo.EXPECT().Complete(ctx, tripID, endDate).Return(nil)

	err := svc.TransitionTrip(ctx, tripID, &TransitionTripRequest{
		Status:  "completed",
		EndDate: &endDate,
	})
	if err != nil {
		t.Fatalf("TransitionTrip() error = %v", err)
	}
}

func TestTransitionTripRejectsUndefinedEdges(t *testing.T) {
	tests := []struct {
		name string
		from domainTrip.Status
		to   string
	}{
		{"scheduled to completed", domainTrip.StatusScheduled, "completed"},
		{"completed to in_progress", domainTrip.StatusCompleted, "in_progress"},
		{"cancelled to in_progress", domainTrip.StatusCancelled, "in_progress"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, tripRepo, _, _ := newTestService(t)
			ctx := context.Background()

			tripID := uuid.New()
			tripRepo.EXPECT().GetByID(ctx, tripID).Return(&domainTrip.Trip{
				ID:     tripID,
				Status: tt.from,
			}, nil)

			err := svc.TransitionTrip(ctx, tripID, &TransitionTripRequest{Status: tt.to})
			var transitionErr *lifecycle.TransitionError
			if !errors.As(err, &transitionErr) {
				t.Fatalf("TransitionTrip() error = %v, want TransitionError", err)
			}
		})
	}
}

func TestTransitionTripNotFound(t *testing.T) {
	svc, tripRepo, _, _ := newTestService(t)
	ctx := context.Background()

	tripID := uuid.New()
	tripRepo.EXPECT().GetByID(ctx, tripID).Return(nil, domainTrip.ErrTripNotFound)

	err := svc.TransitionTrip(ctx, tripID, &TransitionTripRequest{Status: "in_progress"})
	if !errors.Is(err, domainTrip.ErrTripNotFound) {
		t.Errorf("TransitionTrip() error = %v, want ErrTripNotFound", err)
	}
}
