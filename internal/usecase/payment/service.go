package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainDriver "fleetops/internal/domain/driver"
	domainPayment "fleetops/internal/domain/payment"
	"fleetops/internal/lifecycle"
	"fleetops/internal/logger"
	appErrors "fleetops/pkg/errors"
	"fleetops/pkg/utils"
)

// Service manages driver payments.
type Service struct {
	paymentRepo domainPayment.Repository
	driverRepo  domainDriver.Repository
}

func NewService(paymentRepo domainPayment.Repository, driverRepo domainDriver.Repository) *Service {
	return &Service{
		paymentRepo: paymentRepo,
		driverRepo:  driverRepo,
	}
}

func (s *Service) CreatePayment(ctx context.Context, req *CreatePaymentRequest) (*PaymentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if _, err := s.driverRepo.GetByID(ctx, req.DriverID); err != nil {
		return nil, err
	}

	newPayment := &domainPayment.Payment{
		DriverID: req.DriverID,
		TripID:   req.TripID,
		Amount:   req.Amount,
		DueDate:  req.DueDate,
		Status:   domainPayment.StatusPending,
	}

	if err := s.paymentRepo.Create(ctx, newPayment); err != nil {
		return nil, err
	}

	logger.Info("Payment created",
		zap.String("payment_id", newPayment.ID.String()),
		zap.String("driver_id", newPayment.DriverID.String()),
		zap.Float64("amount", newPayment.Amount),
		zap.String("event", "payment_created"),
	)

	return ToPaymentResponse(newPayment), nil
}

func (s *Service) ListPayments(ctx context.Context) ([]*PaymentDetailResponse, error) {
	details, err := s.paymentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return ToPaymentDetailResponses(details), nil
}

func (s *Service) ListPaymentsByDriver(ctx context.Context, driverID uuid.UUID) ([]*PaymentDetailResponse, error) {
	details, err := s.paymentRepo.ListByDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}
	return ToPaymentDetailResponses(details), nil
}

// UpdatePayment moves a payment to paid or overdue. Marking a payment paid
// stamps the paid date, defaulting to now when the request omits one.
func (s *Service) UpdatePayment(ctx context.Context, paymentID uuid.UUID, req *UpdatePaymentRequest) (*PaymentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	p, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	next := domainPayment.Status(req.Status)
	if err := lifecycle.ValidatePayment(p.Status, next); err != nil {
		return nil, err
	}

	var paidDate *time.Time
	if next == domainPayment.StatusPaid {
		paidDate = req.PaidDate
		if paidDate == nil {
			now := time.Now().UTC()
			paidDate = &now
		}
	}

	if err := s.paymentRepo.UpdateStatus(ctx, paymentID, next, paidDate); err != nil {
		return nil, err
	}

	logger.Info("Payment updated",
		zap.String("payment_id", paymentID.String()),
		zap.String("from", string(p.Status)),
		zap.String("to", string(next)),
		zap.String("event", "payment_updated"),
	)

	p.Status = next
	p.PaidDate = paidDate
	return ToPaymentResponse(p), nil
}
