package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	appointmentRepo "careplus/database/repository/appointment"
	patientRepo "careplus/database/repository/patient"
	"careplus/models"
	"careplus/services/availability"
	"careplus/services/notification"
	"careplus/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultAppointmentService is the production implementation of
// AppointmentService.
type DefaultAppointmentService struct {
	Repo      appointmentRepo.AppointmentRepository
	Patients  patientRepo.PatientRepository
	Engine    availability.Engine
	SMS       notification.SMSService
	Reminders ReminderScheduler
}

// Create books a new appointment with status pending. The availability
// pre-check and the storage uniqueness constraint together are the only
// concurrency defense: a conflicting record found up front maps to
// SLOT_UNAVAILABLE, a duplicate-key rejection at write time means another
// request won the slot between check and write and maps to
// RACE_CONDITION_CONFLICT.
func (s *DefaultAppointmentService) Create(input CreateAppointmentInput) (*models.Appointment, error) {
	normalized := availability.NormalizeSchedule(input.Schedule)

	check := s.Engine.CheckAvailability(input.PrimaryPhysician, normalized)
	if !check.Available {
		return nil, newSlotUnavailableError(check.ConflictingAppointment)
	}

	appt := &models.Appointment{
		ID:               uuid.New().String(),
		UserID:           input.UserID,
		PatientID:        input.PatientID,
		PrimaryPhysician: input.PrimaryPhysician,
		Schedule:         normalized,
		Status:           models.StatusPending,
		Reason:           input.Reason,
		Note:             input.Note,
	}

	if err := s.Repo.Create(appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrDuplicateSlot) {
			utils.GetLogger().Warn("Booking race lost at write time",
				zap.String("physician", input.PrimaryPhysician),
				zap.String("schedule", normalized))
			return nil, newRaceLostError()
		}
		utils.GetLogger().Error("Appointment creation failed", zap.Error(err))
		return nil, newCreationFailedError()
	}
	return appt, nil
}

// Get retrieves an appointment by ID.
func (s *DefaultAppointmentService) Get(id string) (*models.Appointment, error) {
	return s.Repo.GetByID(id)
}

// Update applies a staff operation to an existing appointment and notifies
// the patient by SMS. The operation set is closed; an unknown variant is a
// programming error.
func (s *DefaultAppointmentService) Update(id string, op UpdateOp) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	switch v := op.(type) {
	case ScheduleOp:
		return s.schedule(appt, v)
	case CancelOp:
		return s.cancel(appt, v)
	default:
		return nil, fmt.Errorf("unsupported appointment operation %T", op)
	}
}

func (s *DefaultAppointmentService) schedule(appt *models.Appointment, op ScheduleOp) (*models.Appointment, error) {
	physician := appt.PrimaryPhysician
	if op.PrimaryPhysician != "" {
		physician = op.PrimaryPhysician
	}
	schedule := appt.Schedule
	if op.Schedule != nil {
		schedule = availability.NormalizeSchedule(op.Schedule)
	}

	// Re-check only when the (doctor, instant) pair actually moves, otherwise
	// the appointment would conflict with itself. Changing either half of the
	// pair targets a slot this record does not hold yet.
	if physician != appt.PrimaryPhysician || schedule != appt.Schedule {
		check := s.Engine.CheckAvailability(physician, schedule)
		if !check.Available {
			return nil, newSlotUnavailableError(check.ConflictingAppointment)
		}
	}
	appt.PrimaryPhysician = physician
	appt.Schedule = schedule

	if op.Note != "" {
		appt.Note = op.Note
	}
	appt.Status = models.StatusScheduled

	if err := s.Repo.Update(appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrDuplicateSlot) {
			return nil, newRaceLostError()
		}
		return nil, fmt.Errorf("failed to schedule appointment %s: %w", appt.ID, err)
	}

	s.notify(appt.UserID, notification.ScheduleConfirmationSMS(appt.PrimaryPhysician, appt.Schedule))
	s.scheduleReminder(appt)
	return appt, nil
}

func (s *DefaultAppointmentService) cancel(appt *models.Appointment, op CancelOp) (*models.Appointment, error) {
	appt.Status = models.StatusCancelled
	appt.CancellationReason = op.Reason

	if err := s.Repo.Update(appt); err != nil {
		return nil, fmt.Errorf("failed to cancel appointment %s: %w", appt.ID, err)
	}

	s.notify(appt.UserID, notification.CancellationSMS(op.Reason))
	return appt, nil
}

// notify delivers an SMS best-effort; a failed send never rolls back the
// already-persisted update.
func (s *DefaultAppointmentService) notify(userID, body string) {
	if s.SMS == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := s.SMS.SendSMS(ctx, userID, body); err != nil {
		utils.GetLogger().Warn("Failed to send appointment SMS",
			zap.String("userID", userID), zap.Error(err))
	}
}

func (s *DefaultAppointmentService) scheduleReminder(appt *models.Appointment) {
	if s.Reminders == nil {
		return
	}
	if err := s.Reminders.ScheduleReminder(appt); err != nil {
		utils.GetLogger().Warn("Failed to queue appointment reminder",
			zap.String("appointmentID", appt.ID), zap.Error(err))
	}
}

// ListRecent returns the admin dashboard view: recent appointments joined
// with their patient records, plus per-status counts.
func (s *DefaultAppointmentService) ListRecent() (*models.RecentAppointments, error) {
	appts, err := s.Repo.ListRecent(0)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent appointments: %w", err)
	}

	recent := &models.RecentAppointments{
		TotalCount: len(appts),
		Documents:  appts,
	}
	patients := make(map[string]*models.Patient)
	for i := range recent.Documents {
		appt := &recent.Documents[i]
		switch appt.Status {
		case models.StatusScheduled:
			recent.ScheduledCount++
		case models.StatusPending:
			recent.PendingCount++
		case models.StatusCancelled:
			recent.CancelledCount++
		}
		appt.Patient = s.lookupPatient(patients, appt.PatientID)
	}
	return recent, nil
}

// lookupPatient resolves a patient record for the dashboard join, caching per
// call. A missing or unreadable record leaves the appointment bare rather
// than failing the whole list.
func (s *DefaultAppointmentService) lookupPatient(cache map[string]*models.Patient, patientID string) *models.Patient {
	if s.Patients == nil || patientID == "" {
		return nil
	}
	if p, seen := cache[patientID]; seen {
		return p
	}
	p, err := s.Patients.GetByID(patientID)
	if err != nil {
		utils.GetLogger().Warn("Failed to join patient into dashboard list",
			zap.String("patientID", patientID), zap.Error(err))
		p = nil
	}
	cache[patientID] = p
	return p
}
