package models

// ReminderPayload is the asynq task payload for a scheduled appointment
// reminder SMS.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	UserID        string `json:"userId"`
	Body          string `json:"body"`
	FireDate      string `json:"fireDate"`
}
