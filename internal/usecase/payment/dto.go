package payment

import (
	"time"

	"github.com/google/uuid"

	domainPayment "fleetops/internal/domain/payment"
)

type CreatePaymentRequest struct {
	DriverID uuid.UUID  `json:"driver_id" validate:"required"`
	TripID   *uuid.UUID `json:"trip_id"`
	Amount   float64    `json:"amount" validate:"required,gt=0"`
	DueDate  *time.Time `json:"due_date"`
}

type UpdatePaymentRequest struct {
	Status   string     `json:"status" validate:"required,oneof=paid overdue"`
	PaidDate *time.Time `json:"paid_date"`
}

type PaymentResponse struct {
	ID        uuid.UUID  `json:"id"`
	DriverID  uuid.UUID  `json:"driver_id"`
	TripID    *uuid.UUID `json:"trip_id,omitempty"`
	Amount    float64    `json:"amount"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	PaidDate  *time.Time `json:"paid_date,omitempty"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

type PaymentDetailResponse struct {
	PaymentResponse
	DriverName  string  `json:"driver_name"`
	Origin      *string `json:"origin,omitempty"`
	Destination *string `json:"destination,omitempty"`
}

func ToPaymentResponse(p *domainPayment.Payment) *PaymentResponse {
	if p == nil {
		return nil
	}
	return &PaymentResponse{
		ID:        p.ID,
		DriverID:  p.DriverID,
		TripID:    p.TripID,
		Amount:    p.Amount,
		DueDate:   p.DueDate,
		PaidDate:  p.PaidDate,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
	}
}

func ToPaymentDetailResponses(details []*domainPayment.Detail) []*PaymentDetailResponse {
	responses := make([]*PaymentDetailResponse, 0, len(details))
	for _, d := range details {
		responses = append(responses, &PaymentDetailResponse{
			PaymentResponse: *ToPaymentResponse(&d.Payment),
			DriverName:      d.DriverName,
			Origin:          d.Origin,
			Destination:     d.Destination,
		})
	}
	return responses
}
