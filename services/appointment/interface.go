package appointment

import "careplus/models"

// CreateAppointmentInput carries a patient's booking request.
type CreateAppointmentInput struct {
	UserID           string
	PatientID        string
	PrimaryPhysician string
	Schedule         any // structured or textual instant
	Reason           string
	Note             string
}

// ReminderScheduler queues an SMS reminder ahead of a confirmed appointment.
// Scheduling is best-effort; the booking flow never fails on it.
type ReminderScheduler interface {
	ScheduleReminder(appt *models.Appointment) error
}

// AppointmentService orchestrates the booking workflow: availability
// pre-check, persistence under the storage uniqueness constraint, and staff
// schedule/cancel updates with SMS notification.
type AppointmentService interface {
	Create(input CreateAppointmentInput) (*models.Appointment, error)
	Get(id string) (*models.Appointment, error)
	Update(id string, op UpdateOp) (*models.Appointment, error)
	ListRecent() (*models.RecentAppointments, error)
}
