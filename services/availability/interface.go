package availability

import (
	"time"

	"careplus/models"
)

// BookingSource is the read-only slice of the appointment store the engine
// needs. Both queries must already exclude cancelled records.
type BookingSource interface {
	FindByDoctorAt(physician, schedule string) ([]models.Appointment, error)
	FindByDoctorBetween(physician, from, to string) ([]models.Appointment, error)
}

// Engine answers whether a (doctor, instant) pair can be booked and
// enumerates free fixed-grid slots within working hours.
type Engine interface {
	CheckAvailability(physician string, schedule any) models.AvailabilityResult
	AvailableSlots(physician string, day time.Time, slotMinutes int) []string
}
