package leave

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	domainDriver "fleetops/internal/domain/driver"
	domainLeave "fleetops/internal/domain/leave"
	"fleetops/internal/lifecycle"
	"fleetops/internal/mocks"
)

func newTestService(t *testing.T) (*Service, *mocks.MockLeaveRepository, *mocks.MockDriverRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	leaveRepo := mocks.NewMockLeaveRepository(ctrl)
	driverRepo := mocks.NewMockDriverRepository(ctrl)
	return NewService(leaveRepo, driverRepo), leaveRepo, driverRepo
}

func TestCreateRequest(t *testing.T) {
	svc, leaveRepo, driverRepo := newTestService(t)
	ctx := context.Background()

	driverID := uuid.New()
	driverRepo.EXPECT().GetByID(ctx, driverID).Return(&domainDriver.Driver{
		ID:     driverID,
		Status: domainDriver.StatusAvailable,
	}, nil)
	leaveRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, request *domainLeave.Request) error {
			if request.Status != domainLeave.StatusPending {
				t.Errorf("new request status = %s, want pending", request.Status)
			}
			request.ID = uuid.New()
			return nil
		})

	resp, err := svc.CreateRequest(ctx, &CreateLeaveRequest{
		DriverID:  driverID,
		StartDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("CreateRequest() error = %v", err)
	}
	if resp.Status != string(domainLeave.StatusPending) {
		t.Errorf("response status = %s, want pending", resp.Status)
	}
}

func TestCreateRequestUnknownDriver(t *testing.T) {
	svc, _, driverRepo := newTestService(t)
	ctx := context.Background()

	driverID := uuid.New()
	driverRepo.EXPECT().GetByID(ctx, driverID).Return(nil, domainDriver.ErrDriverNotFound)

	_, err := svc.CreateRequest(ctx, &CreateLeaveRequest{
		DriverID:  driverID,
		StartDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, domainDriver.ErrDriverNotFound) {
		t.Errorf("CreateRequest() error = %v, want ErrDriverNotFound", err)
	}
}

func TestCreateRequestInvalidDates(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	start := time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC)
	_, err := svc.CreateRequest(ctx, &CreateLeaveRequest{
		DriverID:  uuid.New(),
		StartDate: start,
		EndDate:   start,
	})
	if err == nil {
		t.Error("CreateRequest() accepted end date equal to start date")
	}
}

func TestDecideRequestApprove(t *testing.T) {
	svc, leaveRepo, _ := newTestService(t)
	ctx := context.Background()

	requestID := uuid.New()
	leaveRepo.EXPECT().GetByID(ctx, requestID).Return(&domainLeave.Request{
		ID:       requestID,
		DriverID: uuid.New(),
		Status:   domainLeave.StatusPending,
	}, nil)
	leaveRepo.EXPECT().Decide(ctx, requestID, domainLeave.StatusApproved).Return(nil)

	resp, err := svc.DecideRequest(ctx, requestID, &DecideLeaveRequest{Status: "approved"})
	if err != nil {
		t.Fatalf("DecideRequest() error = %v", err)
	}
	if resp.Status != string(domainLeave.StatusApproved) {
		t.Errorf("response status = %s, want approved", resp.Status)
	}
}

// A decided request is terminal: deciding it again is rejected and the
// repository is not called a second time.
func TestDecideRequestAlreadyDecided(t *testing.T) {
	for _, decided := range []domainLeave.Status{domainLeave.StatusApproved, domainLeave.StatusRejected} {
		t.Run(string(decided), func(t *testing.T) {
			svc, leaveRepo, _ := newTestService(t)
			ctx := context.Background()

			requestID := uuid.New()
			leaveRepo.EXPECT().GetByID(ctx, requestID).Return(&domainLeave.Request{
				ID:     requestID,
				Status: decided,
			}, nil)

			_, err := svc.DecideRequest(ctx, requestID, &DecideLeaveRequest{Status: "approved"})
			var transitionErr *lifecycle.TransitionError
			if !errors.As(err, &transitionErr) {
				t.Fatalf("DecideRequest() error = %v, want TransitionError", err)
			}
		})
	}
}

func TestDecideRequestNotFound(t *testing.T) {
	svc, leaveRepo, _ := newTestService(t)
	ctx := context.Background()

	requestID := uuid.New()
	leaveRepo.EXPECT().GetByID(ctx, requestID).Return(nil, domainLeave.ErrLeaveRequestNotFound)

	_, err := svc.DecideRequest(ctx, requestID, &DecideLeaveRequest{Status: "rejected"})
	if !errors.Is(err, domainLeave.ErrLeaveRequestNotFound) {
		t.Errorf("DecideRequest() error = %v, want ErrLeaveRequestNotFound", err)
	}
}
