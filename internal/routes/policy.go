package routes

import (
	"github.com/gin-gonic/gin"

	"fleetops/internal/delivery/http/handler"
	"fleetops/internal/domain/user"
)

// route binds one operation to the roles allowed to call it. A nil Roles
// slice means any authenticated user.
type route struct {
	Method  string
	Path    string
	Roles   []string
	Handler gin.HandlerFunc
}

var (
	adminOnly       = []string{user.RoleAdmin}
	adminDispatcher = []string{user.RoleAdmin, user.RoleDispatcher}
	driverOnly      = []string{user.RoleDriver}
)

// policyTable is the single place operations are mapped to roles. The router
// derives every protected route, and its role group, from this table.
func policyTable(
	authHandler *handler.AuthHandler,
	truckHandler *handler.TruckHandler,
	driverHandler *handler.DriverHandler,
	tripHandler *handler.TripHandler,
	maintenanceHandler *handler.MaintenanceHandler,
	paymentHandler *handler.PaymentHandler,
	leaveHandler *handler.LeaveHandler,
	reportHandler *handler.ReportHandler,
) []route {
	return []route{
		{"POST", "/auth/register", adminOnly, authHandler.Register},

		{"GET", "/trucks", nil, truckHandler.ListTrucks},
		{"GET", "/trucks/:id", nil, truckHandler.GetTruck},
		{"POST", "/trucks", adminOnly, truckHandler.CreateTruck},
		{"PUT", "/trucks/:id", adminDispatcher, truckHandler.UpdateTruck},

		{"GET", "/drivers", nil, driverHandler.ListDrivers},
		{"GET", "/drivers/:id", nil, driverHandler.GetDriver},
		{"POST", "/drivers", adminOnly, driverHandler.CreateDriver},
		{"PUT", "/drivers/:id", adminDispatcher, driverHandler.UpdateDriver},

		{"GET", "/trips", nil, tripHandler.ListTrips},
		{"GET", "/trips/:id", nil, tripHandler.GetTrip},
		{"GET", "/trips/driver/:id", nil, tripHandler.ListTripsByDriver},
		{"POST", "/trips", adminDispatcher, tripHandler.CreateTrip},
		{"PUT", "/trips/:id", nil, tripHandler.TransitionTrip},

		{"GET", "/maintenance", nil, maintenanceHandler.ListRecords},
		{"POST", "/maintenance", adminOnly, maintenanceHandler.RecordService},

		{"GET", "/payments", nil, paymentHandler.ListPayments},
		{"GET", "/payments/driver/:id", nil, paymentHandler.ListPaymentsByDriver},
		{"POST", "/payments", adminOnly, paymentHandler.CreatePayment},
		{"PUT", "/payments/:id", adminOnly, paymentHandler.UpdatePayment},

		{"GET", "/leave-requests", nil, leaveHandler.ListRequests},
		{"GET", "/leave-requests/driver/:id", nil, leaveHandler.ListRequestsByDriver},
		{"POST", "/leave-requests", driverOnly, leaveHandler.CreateRequest},
		{"PUT", "/leave-requests/:id", adminDispatcher, leaveHandler.DecideRequest},

		{"GET", "/dashboard/stats", nil, reportHandler.DashboardStats},
		{"GET", "/analytics", adminOnly, reportHandler.Analytics},
		{"GET", "/forecast", nil, reportHandler.Forecast},
	}
}
