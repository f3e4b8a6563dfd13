package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"careplus/config"
	"careplus/models"
	"careplus/services/notification"
	"careplus/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeSendReminder = "sms:reminder"

// NewReminderTask builds the asynq task for an appointment reminder.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler queues reminder SMS tasks on the Redis-backed
// asynq queue.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

// NewAsynqReminderScheduler creates a scheduler using the configured Redis
// reminder queue.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &AsynqReminderScheduler{Client: client}
}

// ScheduleReminder enqueues a reminder SMS to fire ahead of the appointment.
// Appointments too close to now are skipped rather than reminded late.
func (s *AsynqReminderScheduler) ScheduleReminder(appt *models.Appointment) error {
	scheduleAt, err := time.Parse(time.RFC3339Nano, appt.Schedule)
	if err != nil {
		return fmt.Errorf("cannot parse appointment schedule %q: %w", appt.Schedule, err)
	}

	lead := time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute
	fireAt := scheduleAt.Add(-lead)
	if !fireAt.After(time.Now()) {
		utils.GetLogger().Debug("Skipping reminder for near-term appointment",
			zap.String("appointmentID", appt.ID))
		return nil
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		UserID:        appt.UserID,
		Body:          notification.ReminderSMS(appt.PrimaryPhysician, appt.Schedule),
		FireDate:      appt.Schedule,
	}

	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder task: %w", err)
	}
	return nil
}
