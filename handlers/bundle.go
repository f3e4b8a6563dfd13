package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all your endpoint handlers into one struct.
type HandlerBundle struct {
	// User endpoints
	CreateUserHandler gin.HandlerFunc
	GetUserHandler    gin.HandlerFunc

	// Patient endpoints
	RegisterPatientHandler gin.HandlerFunc
	GetPatientHandler      gin.HandlerFunc

	// Appointment endpoints
	CreateAppointmentHandler      gin.HandlerFunc
	GetAppointmentHandler         gin.HandlerFunc
	UpdateAppointmentHandler      gin.HandlerFunc
	ListRecentAppointmentsHandler gin.HandlerFunc

	// Availability endpoints
	CheckAvailabilityHandler gin.HandlerFunc
	AvailableSlotsHandler    gin.HandlerFunc
}
