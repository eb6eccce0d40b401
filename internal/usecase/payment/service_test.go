package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	domainDriver "fleetops/internal/domain/driver"
	domainPayment "fleetops/internal/domain/payment"
	"fleetops/internal/lifecycle"
	"fleetops/internal/mocks"
)

func newTestService(t *testing.T) (*Service, *mocks.MockPaymentRepository, *mocks.MockDriverRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	paymentRepo := mocks.NewMockPaymentRepository(ctrl)
	driverRepo := mocks.NewMockDriverRepository(ctrl)
	return NewService(paymentRepo, driverRepo), paymentRepo, driverRepo
}

func TestCreatePayment(t *testing.T) {
	svc, paymentRepo, driverRepo := newTestService(t)
	ctx := context.Background()

	driverID := uuid.New()
	driverRepo.EXPECT().GetByID(ctx, driverID).Return(&domainDriver.Driver{ID: driverID}, nil)
	paymentRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p *domainPayment.Payment) error {
			if p.Status != domainPayment.StatusPending {
				t.Errorf("new payment status = %s, want pending", p.Status)
			}
			p.ID = uuid.New()
			return nil
		})

	resp, err := svc.CreatePayment(ctx, &CreatePaymentRequest{
		DriverID: driverID,
		Amount:   1500000,
	})
	if err != nil {
		t.Fatalf("CreatePayment() error = %v", err)
	}
	if resp.Status != string(domainPayment.StatusPending) {
		t.Errorf("response status = %s, want pending", resp.Status)
	}
}

func TestCreatePaymentUnknownDriver(t *testing.T) {
	svc, _, driverRepo := newTestService(t)
	ctx := context.Background()

	driverID := uuid.New()
	driverRepo.EXPECT().GetByID(ctx, driverID).Return(nil, domainDriver.ErrDriverNotFound)

	_, err := svc.CreatePayment(ctx, &CreatePaymentRequest{DriverID: driverID, Amount: 100})
	if !errors.Is(err, domainDriver.ErrDriverNotFound) {
		t.Errorf("CreatePayment() error = %v, want ErrDriverNotFound", err)
	}
}

// Marking a payment paid without an explicit paid date stamps the current
// time.
func TestUpdatePaymentPaidDefaultsDate(t *testing.T) {
	svc, paymentRepo, _ := newTestService(t)
	ctx := context.Background()

	paymentID := uuid.New()
	paymentRepo.EXPECT().GetByID(ctx, paymentID).Return(&domainPayment.Payment{
		ID:     paymentID,
		Status: domainPayment.StatusPending,
	}, nil)
	paymentRepo.EXPECT().UpdateStatus(ctx, paymentID, domainPayment.StatusPaid, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, _ domainPayment.Status, paidDate *time.Time) error {
			if paidDate == nil {
				t.Error("paid date not stamped")
			}
			return nil
		})

	resp, err := svc.UpdatePayment(ctx, paymentID, &UpdatePaymentRequest{Status: "paid"})
	if err != nil {
		t.Fatalf("UpdatePayment() error = %v", err)
	}
	if resp.PaidDate == nil {
		t.Error("response paid date not set")
	}
}

func TestUpdatePaymentOverdueToPaid(t *testing.T) {
	svc, paymentRepo, _ := newTestService(t)
	ctx := context.Background()

	paymentID := uuid.New()
	paymentRepo.EXPECT().GetByID(ctx, paymentID).Return(&domainPayment.Payment{
		ID:     paymentID,
		Status: domainPayment.StatusOverdue,
	}, nil)
	paymentRepo.EXPECT().UpdateStatus(ctx, paymentID, domainPayment.StatusPaid, gomock.Any()).Return(nil)

	if _, err := svc.UpdatePayment(ctx, paymentID, &UpdatePaymentRequest{Status: "paid"}); err != nil {
		t.Fatalf("UpdatePayment() error = %v", err)
	}
}

func TestUpdatePaymentPaidIsTerminal(t *testing.T) {
	svc, paymentRepo, _ := newTestService(t)
	ctx := context.Background()

	paymentID := uuid.New()
	paymentRepo.EXPECT().GetByID(ctx, paymentID).Return(&domainPayment.Payment{
		ID:     paymentID,
		Status: domainPayment.StatusPaid,
	}, nil)

	_, err := svc.UpdatePayment(ctx, paymentID, &UpdatePaymentRequest{Status: "overdue"})
	var transitionErr *lifecycle.TransitionError
	if !errors.As(err, &transitionErr) {
		t.Fatalf("UpdatePayment() error = %v, want TransitionError", err)
	}
}
