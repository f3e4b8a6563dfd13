package notification

import (
	"fmt"
	"time"

	"careplus/config"
)

const smsDateLayout = "Monday, January 2, 2006 at 3:04 PM"

// formatSMSDateTime renders a canonical instant for SMS copy in the clinic's
// configured display zone (UTC when none is set). The canonical form is
// machine-oriented; patients get a readable phrasing.
func formatSMSDateTime(schedule string) string {
	t, err := time.Parse(time.RFC3339Nano, schedule)
	if err != nil {
		return schedule
	}
	if name := config.AppConfig.SMSDisplayTimezone; name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			t = t.In(loc)
		}
	}
	return t.Format(smsDateLayout)
}

// ScheduleConfirmationSMS is the message sent when staff confirm an
// appointment.
func ScheduleConfirmationSMS(physician, schedule string) string {
	return fmt.Sprintf(
		"Hi there, it's CarePlus. Your appointment has been scheduled for %s with Dr. %s.",
		formatSMSDateTime(schedule), physician)
}

// CancellationSMS is the message sent when staff cancel an appointment.
func CancellationSMS(reason string) string {
	return fmt.Sprintf(
		"Hi there, it's CarePlus. We regret to inform you that your appointment has been cancelled for the following reason: %s",
		reason)
}

// ReminderSMS is the message scheduled ahead of a confirmed appointment.
func ReminderSMS(physician, schedule string) string {
	return fmt.Sprintf(
		"Hi there, it's CarePlus. This is a reminder of your upcoming appointment with Dr. %s on %s.",
		physician, formatSMSDateTime(schedule))
}
