// Package lifecycle holds the status transition tables coupling trips,
// trucks, drivers, leave requests and payments. Every edge is listed
// explicitly; a transition absent from its table is rejected rather than
// silently applied.
package lifecycle

import (
	"fmt"

	"fleetops/internal/domain/driver"
	"fleetops/internal/domain/leave"
	"fleetops/internal/domain/payment"
	"fleetops/internal/domain/trip"
	"fleetops/internal/domain/truck"
)

// TransitionError reports a rejected status transition.
type TransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s cannot transition from %s to %s", e.Entity, e.From, e.To)
}

var tripTransitions = map[trip.Status][]trip.Status{
	trip.StatusScheduled: {
		trip.StatusInProgress,
		trip.StatusCancelled,
	},
	trip.StatusInProgress: {
		trip.StatusCompleted,
		trip.StatusCancelled,
	},
	trip.StatusCompleted: {
		// Terminal state - no transitions
	},
	trip.StatusCancelled: {
		// Terminal state - no transitions
	},
}

// Truck transitions. on_trip -> maintenance is deliberately absent: a truck
// on an active trip must complete or cancel the trip before it can be taken
// out of service.
var truckTransitions = map[truck.Status][]truck.Status{
	truck.StatusAvailable: {
		truck.StatusOnTrip,
		truck.StatusMaintenance,
	},
	truck.StatusOnTrip: {
		truck.StatusAvailable,
	},
	truck.StatusMaintenance: {
		truck.StatusAvailable,
	},
}

// Driver transitions. on_leave -> available is the explicit return-from-leave
// edge; without it a driver whose leave was approved could never be assigned
// again.
var driverTransitions = map[driver.Status][]driver.Status{
	driver.StatusAvailable: {
		driver.StatusOnTrip,
		driver.StatusOnLeave,
	},
	driver.StatusOnTrip: {
		driver.StatusAvailable,
	},
	driver.StatusOnLeave: {
		driver.StatusAvailable,
	},
}

var leaveTransitions = map[leave.Status][]leave.Status{
	leave.StatusPending: {
		leave.StatusApproved,
		leave.StatusRejected,
	},
	leave.StatusApproved: {},
	leave.StatusRejected: {},
}

var paymentTransitions = map[payment.Status][]payment.Status{
	payment.StatusPending: {
		payment.StatusPaid,
		payment.StatusOverdue,
	},
	payment.StatusOverdue: {
		payment.StatusPaid,
	},
	payment.StatusPaid: {},
}

// ValidateTrip checks whether a trip may move from current to next.
func ValidateTrip(current, next trip.Status) error {
	for _, allowed := range tripTransitions[current] {
		if next == allowed {
			return nil
		}
	}
	return &TransitionError{Entity: "trip", From: string(current), To: string(next)}
}

// ValidateTruck checks whether a truck may move from current to next.
func ValidateTruck(current, next truck.Status) error {
	for _, allowed := range truckTransitions[current] {
		if next == allowed {
			return nil
		}
	}
	return &TransitionError{Entity: "truck", From: string(current), To: string(next)}
}

// ValidateDriver checks whether a driver may move from current to next.
func ValidateDriver(current, next driver.Status) error {
	for _, allowed := range driverTransitions[current] {
		if next == allowed {
			return nil
		}
	}
	return &TransitionError{Entity: "driver", From: string(current), To: string(next)}
}

// ValidateLeave checks whether a leave request may move from current to next.
func ValidateLeave(current, next leave.Status) error {
	for _, allowed := range leaveTransitions[current] {
		if next == allowed {
			return nil
		}
	}
	return &TransitionError{Entity: "leave request", From: string(current), To: string(next)}
}

// ValidatePayment checks whether a payment may move from current to next.
func ValidatePayment(current, next payment.Status) error {
	for _, allowed := range paymentTransitions[current] {
		if next == allowed {
			return nil
		}
	}
	return &TransitionError{Entity: "payment", From: string(current), To: string(next)}
}
