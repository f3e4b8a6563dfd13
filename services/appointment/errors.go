package appointment

import "careplus/models"

// ErrorCode classifies booking failures for the UI and notification layers.
type ErrorCode string

const (
	CodeSlotUnavailable ErrorCode = "SLOT_UNAVAILABLE"
	CodeRaceLost        ErrorCode = "RACE_CONDITION_CONFLICT"
	CodeCreationFailed  ErrorCode = "CREATION_FAILED"
)

// User-facing copy for each failure class.
const (
	MsgSlotUnavailable = "This time slot is no longer available. Please select another time."
	MsgRaceLost        = "This time slot was just booked by another user. Please refresh and select a different time."
	MsgCreationFailed  = "Failed to create appointment. Please try again or contact support."
)

// BookingError is a classified booking failure. For slot conflicts it also
// carries the appointment blocking the slot.
type BookingError struct {
	Code        ErrorCode
	Message     string
	Conflicting *models.Appointment
}

func (e *BookingError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func newSlotUnavailableError(conflicting *models.Appointment) *BookingError {
	return &BookingError{Code: CodeSlotUnavailable, Message: MsgSlotUnavailable, Conflicting: conflicting}
}

func newRaceLostError() *BookingError {
	return &BookingError{Code: CodeRaceLost, Message: MsgRaceLost}
}

func newCreationFailedError() *BookingError {
	return &BookingError{Code: CodeCreationFailed, Message: MsgCreationFailed}
}
