package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"fleetops/internal/domain/leave"
)

// Approval writes the decision and moves the driver to on_leave in the same
// transaction.
func TestLeaveRepositoryDecideApprovalMovesDriverOnLeave(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLeaveRepository(db)

	requestID := uuid.New()
	driverID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "leave_requests" WHERE id = .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "driver_id", "status"}).
			AddRow(requestID.String(), driverID.String(), "pending"))
	mock.ExpectExec(`UPDATE "leave_requests" SET`).
		WithArgs("approved", sqlmock.AnyArg(), requestID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "drivers" SET`).
		WithArgs("on_leave", sqlmock.AnyArg(), driverID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.Decide(context.Background(), requestID, leave.StatusApproved); err != nil {
		t.Fatalf("Decide() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// Rejection records the decision only; the driver row is never touched.
func TestLeaveRepositoryDecideRejectionLeavesDriverUntouched(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLeaveRepository(db)

	requestID := uuid.New()
	driverID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "leave_requests" WHERE id = .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "driver_id", "status"}).
			AddRow(requestID.String(), driverID.String(), "pending"))
	mock.ExpectExec(`UPDATE "leave_requests" SET`).
		WithArgs("rejected", sqlmock.AnyArg(), requestID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.Decide(context.Background(), requestID, leave.StatusRejected); err != nil {
		t.Fatalf("Decide() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
