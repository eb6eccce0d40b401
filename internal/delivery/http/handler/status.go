package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainDriver "fleetops/internal/domain/driver"
	domainLeave "fleetops/internal/domain/leave"
	domainPayment "fleetops/internal/domain/payment"
	domainTrip "fleetops/internal/domain/trip"
	domainTruck "fleetops/internal/domain/truck"
	domainUser "fleetops/internal/domain/user"
	"fleetops/internal/lifecycle"
	appErrors "fleetops/pkg/errors"
	"fleetops/pkg/utils"
)

// statusFromError maps domain errors onto HTTP status codes. Not-found
// sentinels become 404 here, which is right when the missing entity is the
// addressed resource itself; operations that merely reference other
// resources go through respondReferenceError instead. Every business-rule
// rejection is a plain 400. Unknown errors fall through to 500 so internals
// are never leaked as client errors.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domainTruck.ErrTruckNotFound),
		errors.Is(err, domainDriver.ErrDriverNotFound),
		errors.Is(err, domainTrip.ErrTripNotFound),
		errors.Is(err, domainPayment.ErrPaymentNotFound),
		errors.Is(err, domainLeave.ErrLeaveRequestNotFound),
		errors.Is(err, domainUser.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainTruck.ErrTruckUnavailable),
		errors.Is(err, domainDriver.ErrDriverUnavailable),
		errors.Is(err, domainTruck.ErrCapacityExceeded),
		errors.Is(err, domainTruck.ErrPlateAlreadyExists),
		errors.Is(err, domainUser.ErrUserAlreadyExists),
		errors.Is(err, appErrors.ErrWeakPassword):
		return http.StatusBadRequest
	case errors.Is(err, appErrors.ErrInvalidCredentials),
		errors.Is(err, appErrors.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, appErrors.ErrUserInactive),
		errors.Is(err, appErrors.ErrInsufficientPermissions):
		return http.StatusForbidden
	}

	var transitionErr *lifecycle.TransitionError
	if errors.As(err, &transitionErr) {
		return http.StatusBadRequest
	}

	var appErr *appErrors.AppError
	if errors.As(err, &appErr) && appErr.Code == "VALIDATION_ERROR" {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// respondReferenceError is respondError for operations whose body references
// trucks or drivers rather than addressing them. A reference to an unknown
// truck or driver is a bad request, not a missing resource.
func respondReferenceError(c *gin.Context, err error) {
	if errors.Is(err, domainTruck.ErrTruckNotFound) || errors.Is(err, domainDriver.ErrDriverNotFound) {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	respondError(c, err)
}

// respondError writes the error with its mapped status. Server errors get a
// generic message so internals are not exposed.
func respondError(c *gin.Context, err error) {
	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}
	utils.ErrorResponse(c, status, message)
}
