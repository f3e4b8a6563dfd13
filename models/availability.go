package models

// AvailabilityResult is the outcome of a conflict check for a
// (doctor, instant) pair. When the slot is taken, ConflictingAppointment
// carries one of the blocking records for diagnostic display.
type AvailabilityResult struct {
	Available              bool         `json:"available"`
	ConflictingAppointment *Appointment `json:"conflictingAppointment,omitempty"`
}
