package lifecycle

import (
	"errors"
	"testing"

	"fleetops/internal/domain/driver"
	"fleetops/internal/domain/leave"
	"fleetops/internal/domain/payment"
	"fleetops/internal/domain/trip"
	"fleetops/internal/domain/truck"
)

func TestValidateTrip(t *testing.T) {
	cases := []struct {
		name    string
		from    trip.Status
		to      trip.Status
		allowed bool
	}{
		{"scheduled to in_progress", trip.StatusScheduled, trip.StatusInProgress, true},
		{"scheduled to cancelled", trip.StatusScheduled, trip.StatusCancelled, true},
		{"scheduled to completed skips in_progress", trip.StatusScheduled, trip.StatusCompleted, false},
		{"in_progress to completed", trip.StatusInProgress, trip.StatusCompleted, true},
		{"in_progress to cancelled", trip.StatusInProgress, trip.StatusCancelled, true},
		{"completed is terminal", trip.StatusCompleted, trip.StatusInProgress, false},
		{"cancelled is terminal", trip.StatusCancelled, trip.StatusScheduled, false},
		{"scheduled is never a target", trip.StatusInProgress, trip.StatusScheduled, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTrip(tc.from, tc.to)
			if tc.allowed && err != nil {
				t.Fatalf("expected %s -> %s to be allowed, got %v", tc.from, tc.to, err)
			}
			if !tc.allowed {
				var transitionErr *TransitionError
				if !errors.As(err, &transitionErr) {
					t.Fatalf("expected TransitionError for %s -> %s, got %v", tc.from, tc.to, err)
				}
			}
		})
	}
}

func TestValidateTruckBlocksOnTripToMaintenance(t *testing.T) {
	if err := ValidateTruck(truck.StatusOnTrip, truck.StatusMaintenance); err == nil {
		t.Fatal("expected on_trip -> maintenance to be rejected")
	}
	if err := ValidateTruck(truck.StatusAvailable, truck.StatusMaintenance); err != nil {
		t.Fatalf("expected available -> maintenance to be allowed, got %v", err)
	}
	if err := ValidateTruck(truck.StatusMaintenance, truck.StatusAvailable); err != nil {
		t.Fatalf("expected maintenance -> available to be allowed, got %v", err)
	}
}

func TestValidateDriverReturnFromLeave(t *testing.T) {
	if err := ValidateDriver(driver.StatusOnLeave, driver.StatusAvailable); err != nil {
		t.Fatalf("expected on_leave -> available to be allowed, got %v", err)
	}
	if err := ValidateDriver(driver.StatusOnLeave, driver.StatusOnTrip); err == nil {
		t.Fatal("expected on_leave -> on_trip to be rejected")
	}
}

func TestValidateLeaveTerminalStates(t *testing.T) {
	if err := ValidateLeave(leave.StatusPending, leave.StatusApproved); err != nil {
		t.Fatalf("expected pending -> approved to be allowed, got %v", err)
	}
	if err := ValidateLeave(leave.StatusApproved, leave.StatusRejected); err == nil {
		t.Fatal("expected approved -> rejected to be rejected")
	}
	if err := ValidateLeave(leave.StatusRejected, leave.StatusApproved); err == nil {
		t.Fatal("expected rejected -> approved to be rejected")
	}
}

func TestValidatePayment(t *testing.T) {
	if err := ValidatePayment(payment.StatusPending, payment.StatusPaid); err != nil {
		t.Fatalf("expected pending -> paid to be allowed, got %v", err)
	}
	if err := ValidatePayment(payment.StatusOverdue, payment.StatusPaid); err != nil {
		t.Fatalf("expected overdue -> paid to be allowed, got %v", err)
	}
	if err := ValidatePayment(payment.StatusPaid, payment.StatusPending); err == nil {
		t.Fatal("expected paid -> pending to be rejected")
	}
}

func TestUnknownStatusRejected(t *testing.T) {
	if err := ValidateTrip(trip.Status("bogus"), trip.StatusCompleted); err == nil {
		t.Fatal("expected unknown current status to be rejected")
	}
}
