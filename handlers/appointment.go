package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"careplus/config"
	appointmentRepo "careplus/database/repository/appointment"
	"careplus/services/appointment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes the booking workflow over HTTP.
type AppointmentHandler struct {
	Svc    appointment.AppointmentService
	Logger *zap.Logger
}

// NewAppointmentHandler creates a new AppointmentHandler instance.
func NewAppointmentHandler(svc appointment.AppointmentService, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{Svc: svc, Logger: logger}
}

type createAppointmentRequest struct {
	UserID           string `json:"userId" binding:"required"`
	PatientID        string `json:"patientId" binding:"required"`
	PrimaryPhysician string `json:"primaryPhysician" binding:"required,min=2"`
	Schedule         string `json:"schedule" binding:"required"`
	Reason           string `json:"reason" binding:"required,min=2,max=500"`
	Note             string `json:"note" binding:"omitempty,max=1000"`
}

type updateAppointmentRequest struct {
	Type               string `json:"type" binding:"required,oneof=schedule cancel"`
	PrimaryPhysician   string `json:"primaryPhysician" binding:"omitempty,min=2"`
	Schedule           string `json:"schedule"`
	Note               string `json:"note" binding:"omitempty,max=1000"`
	CancellationReason string `json:"cancellationReason" binding:"omitempty,min=2,max=500"`
}

// bookingErrorResponse maps a classified booking failure onto an HTTP reply.
func bookingErrorResponse(c *gin.Context, bErr *appointment.BookingError) {
	status := http.StatusConflict
	if bErr.Code == appointment.CodeCreationFailed {
		status = http.StatusInternalServerError
	}
	body := gin.H{"success": false, "error": bErr.Message, "code": bErr.Code}
	if bErr.Conflicting != nil {
		body["conflictingAppointment"] = bErr.Conflicting
	}
	c.JSON(status, body)
}

// CreateAppointmentHandler books a new appointment for a patient.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	var req createAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if _, err := time.Parse(time.RFC3339Nano, req.Schedule); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "schedule must be a valid RFC3339 timestamp"})
		return
	}

	appt, err := h.Svc.Create(appointment.CreateAppointmentInput{
		UserID:           req.UserID,
		PatientID:        req.PatientID,
		PrimaryPhysician: req.PrimaryPhysician,
		Schedule:         req.Schedule,
		Reason:           req.Reason,
		Note:             req.Note,
	})
	if err != nil {
		var bErr *appointment.BookingError
		if errors.As(err, &bErr) {
			bookingErrorResponse(c, bErr)
			return
		}
		h.Logger.Error("Appointment creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to create appointment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": appt})
}

// GetAppointmentHandler retrieves a single appointment by ID.
func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	appt, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
			return
		}
		h.Logger.Error("Failed to fetch appointment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch appointment"})
		return
	}
	c.JSON(http.StatusOK, appt)
}

// UpdateAppointmentHandler applies a staff schedule or cancel operation.
func (h *AppointmentHandler) UpdateAppointmentHandler(c *gin.Context) {
	var req updateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	var op appointment.UpdateOp
	switch req.Type {
	case "schedule":
		if req.Schedule != "" {
			scheduleAt, err := time.Parse(time.RFC3339Nano, req.Schedule)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "schedule must be a valid RFC3339 timestamp"})
				return
			}
			if !scheduleAt.After(time.Now()) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "appointment must be scheduled for a future date and time"})
				return
			}
			start, end := config.AppConfig.WorkStartHour, config.AppConfig.WorkEndHour
			if end > start {
				if hour := scheduleAt.Hour(); hour < start || hour >= end {
					c.JSON(http.StatusBadRequest, gin.H{
						"error": fmt.Sprintf("appointment must be scheduled during working hours (%d:00 - %d:00)", start, end),
					})
					return
				}
			}
		}
		op = appointment.ScheduleOp{
			PrimaryPhysician: req.PrimaryPhysician,
			Schedule:         scheduleOrNil(req.Schedule),
			Note:             req.Note,
		}
	case "cancel":
		if req.CancellationReason == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cancellationReason is required"})
			return
		}
		op = appointment.CancelOp{Reason: req.CancellationReason}
	}

	appt, err := h.Svc.Update(c.Param("id"), op)
	if err != nil {
		var bErr *appointment.BookingError
		if errors.As(err, &bErr) {
			bookingErrorResponse(c, bErr)
			return
		}
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
			return
		}
		h.Logger.Error("Appointment update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to update appointment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": appt})
}

// scheduleOrNil keeps an absent schedule field distinguishable from an empty
// string inside the operation variant.
func scheduleOrNil(schedule string) any {
	if schedule == "" {
		return nil
	}
	return schedule
}

// ListRecentAppointmentsHandler returns the staff dashboard list with
// per-status counts.
func (h *AppointmentHandler) ListRecentAppointmentsHandler(c *gin.Context) {
	recent, err := h.Svc.ListRecent()
	if err != nil {
		h.Logger.Error("Failed to list recent appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list appointments"})
		return
	}
	c.JSON(http.StatusOK, recent)
}
