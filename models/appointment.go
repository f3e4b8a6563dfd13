package models

import "time"

// AppointmentStatus is the lifecycle state of an appointment record.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusPending   AppointmentStatus = "pending"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a booking of a doctor at a canonical instant.
// Schedule is always the normalized UTC instant string so that equality and
// range comparisons against stored records are exact.
type Appointment struct {
	ID                 string            `bson:"id" json:"id"`
	UserID             string            `bson:"user_id" json:"userId"`                                            // Directory user who requested the appointment
	PatientID          string            `bson:"patient_id" json:"patientId"`                                      // Patient profile reference
	PrimaryPhysician   string            `bson:"primary_physician" json:"primaryPhysician"`                        // Doctor identifier
	Schedule           string            `bson:"schedule" json:"schedule"`                                         // Normalized UTC instant
	Status             AppointmentStatus `bson:"status" json:"status"`                                             // scheduled | pending | cancelled
	Reason             string            `bson:"reason" json:"reason"`                                             // Patient-stated reason for the visit
	Note               string            `bson:"note,omitempty" json:"note,omitempty"`                             // Optional free-form note
	CancellationReason string            `bson:"cancellation_reason,omitempty" json:"cancellationReason,omitempty"`
	CreatedAt          time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt          time.Time         `bson:"updated_at" json:"updatedAt"`

	// Patient is joined in for dashboard views; it is never persisted on the
	// appointment document itself.
	Patient *Patient `bson:"-" json:"patient,omitempty"`
}

// RecentAppointments is the admin dashboard view: all recent appointments
// plus per-status counts.
type RecentAppointments struct {
	TotalCount     int           `json:"totalCount"`
	ScheduledCount int           `json:"scheduledCount"`
	PendingCount   int           `json:"pendingCount"`
	CancelledCount int           `json:"cancelledCount"`
	Documents      []Appointment `json:"documents"`
}
