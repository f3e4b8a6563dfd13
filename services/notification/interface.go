package notification

import "context"

// SMSService defines methods for sending SMS messages to directory users.
type SMSService interface {
	SendSMS(ctx context.Context, userID, body string) error
}
