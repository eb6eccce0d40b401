package leave

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainDriver "fleetops/internal/domain/driver"
	domainLeave "fleetops/internal/domain/leave"
	"fleetops/internal/lifecycle"
	"fleetops/internal/logger"
	appErrors "fleetops/pkg/errors"
	"fleetops/pkg/utils"
)

// Service manages driver leave requests. Approving a request moves the
// driver to on_leave; the repository couples the two writes.
type Service struct {
	leaveRepo  domainLeave.Repository
	driverRepo domainDriver.Repository
}

func NewService(leaveRepo domainLeave.Repository, driverRepo domainDriver.Repository) *Service {
	return &Service{
		leaveRepo:  leaveRepo,
		driverRepo: driverRepo,
	}
}

func (s *Service) CreateRequest(ctx context.Context, req *CreateLeaveRequest) (*LeaveResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}
	if !req.EndDate.After(req.StartDate) {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "End date must be after start date", nil)
	}

	if _, err := s.driverRepo.GetByID(ctx, req.DriverID); err != nil {
		return nil, err
	}

	reason := req.Reason
	if reason != nil {
		sanitized := utils.SanitizeString(*reason)
		reason = &sanitized
	}

	request := &domainLeave.Request{
		DriverID:  req.DriverID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    reason,
		Status:    domainLeave.StatusPending,
	}

	if err := s.leaveRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	logger.Info("Leave request submitted",
		zap.String("request_id", request.ID.String()),
		zap.String("driver_id", request.DriverID.String()),
		zap.String("event", "leave_requested"),
	)

	return ToLeaveResponse(request), nil
}

func (s *Service) ListRequests(ctx context.Context) ([]*LeaveDetailResponse, error) {
	details, err := s.leaveRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return ToLeaveDetailResponses(details), nil
}

func (s *Service) ListRequestsByDriver(ctx context.Context, driverID uuid.UUID) ([]*LeaveResponse, error) {
	requests, err := s.leaveRepo.ListByDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}
	return ToLeaveResponses(requests), nil
}

// DecideRequest approves or rejects a pending leave request. A request that
// has already been decided cannot be decided again.
func (s *Service) DecideRequest(ctx context.Context, requestID uuid.UUID, req *DecideLeaveRequest) (*LeaveResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	request, err := s.leaveRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	next := domainLeave.Status(req.Status)
	if err := lifecycle.ValidateLeave(request.Status, next); err != nil {
		return nil, err
	}

	if err := s.leaveRepo.Decide(ctx, requestID, next); err != nil {
		return nil, err
	}

	logger.Info("Leave request decided",
		zap.String("request_id", requestID.String()),
		zap.String("driver_id", request.DriverID.String()),
		zap.String("decision", string(next)),
		zap.String("event", "leave_decided"),
	)

	request.Status = next
	return ToLeaveResponse(request), nil
}
