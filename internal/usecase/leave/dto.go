package leave

import (
	"time"

	"github.com/google/uuid"

	domainLeave "fleetops/internal/domain/leave"
)

type CreateLeaveRequest struct {
	DriverID  uuid.UUID `json:"driver_id" validate:"required"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
	Reason    *string   `json:"reason" validate:"omitempty,max=1000"`
}

type DecideLeaveRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

type LeaveResponse struct {
	ID        uuid.UUID `json:"id"`
	DriverID  uuid.UUID `json:"driver_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Reason    *string   `json:"reason,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type LeaveDetailResponse struct {
	LeaveResponse
	DriverName string `json:"driver_name"`
}

func ToLeaveResponse(r *domainLeave.Request) *LeaveResponse {
	if r == nil {
		return nil
	}
	return &LeaveResponse{
		ID:        r.ID,
		DriverID:  r.DriverID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Reason:    r.Reason,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
	}
}

func ToLeaveResponses(requests []*domainLeave.Request) []*LeaveResponse {
	responses := make([]*LeaveResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, ToLeaveResponse(r))
	}
	return responses
}

func ToLeaveDetailResponses(details []*domainLeave.Detail) []*LeaveDetailResponse {
	responses := make([]*LeaveDetailResponse, 0, len(details))
	for _, d := range details {
		responses = append(responses, &LeaveDetailResponse{
			LeaveResponse: *ToLeaveResponse(&d.Request),
			DriverName:    d.DriverName,
		})
	}
	return responses
}
