package appointmentRepo

import (
	"errors"

	"careplus/models"
)

// ErrDuplicateSlot is returned by Create when the storage-level uniqueness
// constraint on (primary_physician, schedule) rejects the write. It marks a
// race lost to a concurrent booking that passed its own pre-check first.
var ErrDuplicateSlot = errors.New("appointment slot already booked")

// ErrNotFound is returned when no appointment matches the given ID.
var ErrNotFound = errors.New("appointment not found")

// AppointmentRepository defines data-access methods for appointment records.
type AppointmentRepository interface {
	Create(appt *models.Appointment) error
	Update(appt *models.Appointment) error
	GetByID(id string) (*models.Appointment, error)

	// FindByDoctorAt returns non-cancelled appointments for the doctor at the
	// exact normalized instant.
	FindByDoctorAt(physician, schedule string) ([]models.Appointment, error)

	// FindByDoctorBetween returns non-cancelled appointments for the doctor
	// with schedule within [from, to], both normalized instants.
	FindByDoctorBetween(physician, from, to string) ([]models.Appointment, error)

	// ListRecent returns appointments ordered by creation time, newest first.
	ListRecent(limit int) ([]models.Appointment, error)
}
