package appointment

import (
	"context"
	"errors"
	"testing"

	appointmentRepo "careplus/database/repository/appointment"
	patientRepo "careplus/database/repository/patient"
	"careplus/models"
	"careplus/services/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRepo implements appointmentRepo.AppointmentRepository with
// overridable behavior per test.
type mockRepo struct {
	createFunc      func(appt *models.Appointment) error
	updateFunc      func(appt *models.Appointment) error
	getByIDFunc     func(id string) (*models.Appointment, error)
	findAtFunc      func(physician, schedule string) ([]models.Appointment, error)
	findBetweenFunc func(physician, from, to string) ([]models.Appointment, error)
	listRecentFunc  func(limit int) ([]models.Appointment, error)
}

func (m *mockRepo) Create(appt *models.Appointment) error {
	if m.createFunc != nil {
		return m.createFunc(appt)
	}
	return nil
}

func (m *mockRepo) Update(appt *models.Appointment) error {
	if m.updateFunc != nil {
		return m.updateFunc(appt)
	}
	return nil
}

func (m *mockRepo) GetByID(id string) (*models.Appointment, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(id)
	}
	return nil, appointmentRepo.ErrNotFound
}

func (m *mockRepo) FindByDoctorAt(physician, schedule string) ([]models.Appointment, error) {
	if m.findAtFunc != nil {
		return m.findAtFunc(physician, schedule)
	}
	return nil, nil
}

func (m *mockRepo) FindByDoctorBetween(physician, from, to string) ([]models.Appointment, error) {
	if m.findBetweenFunc != nil {
		return m.findBetweenFunc(physician, from, to)
	}
	return nil, nil
}

func (m *mockRepo) ListRecent(limit int) ([]models.Appointment, error) {
	if m.listRecentFunc != nil {
		return m.listRecentFunc(limit)
	}
	return nil, nil
}

// fakeSMS records every message it is asked to send.
type fakeSMS struct {
	sent []string
}

func (f *fakeSMS) SendSMS(_ context.Context, _ string, body string) error {
	f.sent = append(f.sent, body)
	return nil
}

// fakeReminders records every appointment queued for a reminder.
type fakeReminders struct {
	queued []string
}

func (f *fakeReminders) ScheduleReminder(appt *models.Appointment) error {
	f.queued = append(f.queued, appt.ID)
	return nil
}

func newTestService(repo *mockRepo) (*DefaultAppointmentService, *fakeSMS, *fakeReminders) {
	sms := &fakeSMS{}
	reminders := &fakeReminders{}
	svc := &DefaultAppointmentService{
		Repo: repo,
		Engine: &availability.DefaultEngine{
			Source:        repo,
			WorkStartHour: 9,
			WorkEndHour:   17,
			SlotMinutes:   30,
		},
		SMS:       sms,
		Reminders: reminders,
	}
	return svc, sms, reminders
}

func TestCreateBooksPendingAppointment(t *testing.T) {
	var stored *models.Appointment
	repo := &mockRepo{
		createFunc: func(appt *models.Appointment) error {
			stored = appt
			return nil
		},
	}
	svc, sms, reminders := newTestService(repo)

	appt, err := svc.Create(CreateAppointmentInput{
		UserID:           "user-1",
		PatientID:        "patient-1",
		PrimaryPhysician: "Dr. Mensah",
		Schedule:         "2026-03-01T09:30:00Z",
		Reason:           "Annual physical",
	})
	require.NoError(t, err)
	require.NotNil(t, appt)

	assert.NotEmpty(t, appt.ID)
	assert.Equal(t, models.StatusPending, appt.Status)
	assert.Equal(t, "2026-03-01T09:30:00.000Z", appt.Schedule)
	assert.Same(t, appt, stored)

	// Booking only records the request; confirmation messaging happens when
	// staff schedules it.
	assert.Empty(t, sms.sent)
	assert.Empty(t, reminders.queued)
}

func TestCreateRejectsTakenSlot(t *testing.T) {
	conflict := models.Appointment{
		ID:               "appt-1",
		PrimaryPhysician: "Dr. Mensah",
		Schedule:         "2026-03-01T09:30:00.000Z",
		Status:           models.StatusScheduled,
	}
	repo := &mockRepo{
		findAtFunc: func(physician, schedule string) ([]models.Appointment, error) {
			return []models.Appointment{conflict}, nil
		},
		createFunc: func(appt *models.Appointment) error {
			t.Fatal("Create must not reach the store when the pre-check finds a conflict")
			return nil
		},
	}
	svc, _, _ := newTestService(repo)

	_, err := svc.Create(CreateAppointmentInput{
		UserID:           "user-2",
		PatientID:        "patient-2",
		PrimaryPhysician: "Dr. Mensah",
		Schedule:         "2026-03-01T09:30:00Z",
		Reason:           "Follow-up",
	})
	require.Error(t, err)

	var bErr *BookingError
	require.ErrorAs(t, err, &bErr)
	assert.Equal(t, CodeSlotUnavailable, bErr.Code)
	assert.Equal(t, MsgSlotUnavailable, bErr.Message)
	require.NotNil(t, bErr.Conflicting)
	assert.Equal(t, "appt-1", bErr.Conflicting.ID)
}

func TestCreateLosesRaceAtWriteTime(t *testing.T) {
	repo := &mockRepo{
		createFunc: func(appt *models.Appointment) error {
			return appointmentRepo.ErrDuplicateSlot
		},
	}
	svc, _, _ := newTestService(repo)

	_, err := svc.Create(CreateAppointmentInput{
		UserID:           "user-3",
		PatientID:        "patient-3",
		PrimaryPhysician: "Dr. Mensah",
		Schedule:         "2026-03-01T10:00:00Z",
		Reason:           "Consultation",
	})
	require.Error(t, err)

	var bErr *BookingError
	require.ErrorAs(t, err, &bErr)
	assert.Equal(t, CodeRaceLost, bErr.Code)
	assert.Equal(t, MsgRaceLost, bErr.Message)
	assert.Nil(t, bErr.Conflicting)
}

func TestCreateFailsClosedOnCheckError(t *testing.T) {
	repo := &mockRepo{
		findAtFunc: func(physician, schedule string) ([]models.Appointment, error) {
			return nil, errors.New("connection reset")
		},
	}
	svc, _, _ := newTestService(repo)

	_, err := svc.Create(CreateAppointmentInput{
		UserID:           "user-4",
		PatientID:        "patient-4",
		PrimaryPhysician: "Dr. Mensah",
		Schedule:         "2026-03-01T11:00:00Z",
		Reason:           "Checkup",
	})
	require.Error(t, err)

	var bErr *BookingError
	require.ErrorAs(t, err, &bErr)
	assert.Equal(t, CodeSlotUnavailable, bErr.Code)
}

func TestCreateWrapsStoreFailure(t *testing.T) {
	repo := &mockRepo{
		createFunc: func(appt *models.Appointment) error {
			return errors.New("write concern timeout")
		},
	}
	svc, _, _ := newTestService(repo)

	_, err := svc.Create(CreateAppointmentInput{
		UserID:           "user-5",
		PatientID:        "patient-5",
		PrimaryPhysician: "Dr. Mensah",
		Schedule:         "2026-03-01T12:00:00Z",
		Reason:           "Checkup",
	})
	require.Error(t, err)

	var bErr *BookingError
	require.ErrorAs(t, err, &bErr)
	assert.Equal(t, CodeCreationFailed, bErr.Code)
	assert.Equal(t, MsgCreationFailed, bErr.Message)
}

func TestScheduleConfirmsAndNotifies(t *testing.T) {
	existing := &models.Appointment{
		ID:               "appt-2",
		UserID:           "user-6",
		PrimaryPhysician: "Dr. Mensah",
		Schedule:         "2026-03-01T09:00:00.000Z",
		Status:           models.StatusPending,
	}
	repo := &mockRepo{
		getByIDFunc: func(id string) (*models.Appointment, error) {
			return existing, nil
		},
	}
	svc, sms, reminders := newTestService(repo)

	updated, err := svc.Update("appt-2", ScheduleOp{Note: "Bring previous results"})
	require.NoError(t, err)

	assert.Equal(t, models.StatusScheduled, updated.Status)
	assert.Equal(t, "Bring previous results", updated.Note)
	require.Len(t, sms.sent, 1)
	assert.Contains(t, sms.sent[0], "has been scheduled")
	assert.Contains(t, sms.sent[0], "Dr. Mensah")
	assert.Equal(t, []string{"appt-2"}, reminders.queued)
}

func TestScheduleSameInstantSkipsConflictCheck(t *testing.T) {
	existing := &models.Appointment{
		ID:               "appt-3",
		UserID:           "user-7",
		PrimaryPhysician: "Dr. Mensah",
		Schedule:         "2026-03-01T09:00:00.000Z",
		Status:           models.StatusPending,
	}
	repo := &mockRepo{
		getByIDFunc: func(id string) (*models.Appointment, error) {
			return existing, nil
		},
		findAtFunc: func(physician, schedule string) ([]models.Appointment, error) {
			t.Fatal("confirming an unchanged instant must not conflict with itself")
			return nil, nil
		},
	}
	svc, _, _ := newTestService(repo)

	updated, err := svc.Update("appt-3", ScheduleOp{Schedule: "2026-03-01T09:00:00Z"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusScheduled, updated.Status)
	assert.Equal(t, "2026-03-01T09:00:00.000Z", updated.Schedule)
}

func TestScheduleToTakenInstantFails(t *testing.T) {
	existing := &models.Appointment{
		ID:               "appt-4",
		UserID:           "user-8",
		PrimaryPhysician: "Dr. Mensah",
		Schedule:         "2026-03-01T09:00:00.000Z",
		Status:           models.StatusPending,
	}
	repo := &mockRepo{
		getByIDFunc: func(id string) (*models.Appointment, error) {
			return existing, nil
		},
		findAtFunc: func(physician, schedule string) ([]models.Appointment, error) {
			return []models.Appointment{{ID: "other"}}, nil
		},
		updateFunc: func(appt *models.Appointment) error {
			t.Fatal("a failed re-check must not persist the move")
			return nil
		},
	}
	svc, sms, _ := newTestService(repo)

	_, err := svc.Update("appt-4", ScheduleOp{Schedule: "2026-03-01T10:00:00Z"})
	require.Error(t, err)

	var bErr *BookingError
	require.ErrorAs(t, err, &bErr)
	assert.Equal(t, CodeSlotUnavailable, bErr.Code)
	assert.Empty(t, sms.sent)
}

func TestScheduleToOtherDoctorSameInstantChecksConflict(t *testing.T) {
	existing := &models.Appointment{
		ID:               "appt-7",
		UserID:           "user-11",
		PrimaryPhysician: "Dr. Mensah",
		Schedule:         "2026-03-01T10:00:00.000Z",
		Status:           models.StatusPending,
	}
	taken := models.Appointment{
		ID:               "appt-8",
		PrimaryPhysician: "Dr. Okafor",
		Schedule:         "2026-03-01T10:00:00.000Z",
		Status:           models.StatusScheduled,
	}
	repo := &mockRepo{
		getByIDFunc: func(id string) (*models.Appointment, error) {
			return existing, nil
		},
		findAtFunc: func(physician, schedule string) ([]models.Appointment, error) {
			if physician == "Dr. Okafor" && schedule == "2026-03-01T10:00:00.000Z" {
				return []models.Appointment{taken}, nil
			}
			return nil, nil
		},
		updateFunc: func(appt *models.Appointment) error {
			t.Fatal("moving to an occupied doctor slot must not persist")
			return nil
		},
	}
	svc, sms, _ := newTestService(repo)

	_, err := svc.Update("appt-7", ScheduleOp{PrimaryPhysician: "Dr. Okafor"})
	require.Error(t, err)

	var bErr *BookingError
	require.ErrorAs(t, err, &bErr)
	assert.Equal(t, CodeSlotUnavailable, bErr.Code)
	require.NotNil(t, bErr.Conflicting)
	assert.Equal(t, "appt-8", bErr.Conflicting.ID)
	assert.Empty(t, sms.sent)
	// The record itself stays untouched by the failed move.
	assert.Equal(t, "Dr. Mensah", existing.PrimaryPhysician)
}

func TestScheduleToFreeDoctorSameInstant(t *testing.T) {
	existing := &models.Appointment{
		ID:               "appt-9",
		UserID:           "user-12",
		PrimaryPhysician: "Dr. Mensah",
		Schedule:         "2026-03-01T10:00:00.000Z",
		Status:           models.StatusPending,
	}
	var checkedPhysician string
	repo := &mockRepo{
		getByIDFunc: func(id string) (*models.Appointment, error) {
			return existing, nil
		},
		findAtFunc: func(physician, schedule string) ([]models.Appointment, error) {
			checkedPhysician = physician
			return nil, nil
		},
	}
	svc, _, _ := newTestService(repo)

	updated, err := svc.Update("appt-9", ScheduleOp{PrimaryPhysician: "Dr. Okafor"})
	require.NoError(t, err)

	assert.Equal(t, "Dr. Okafor", checkedPhysician)
	assert.Equal(t, "Dr. Okafor", updated.PrimaryPhysician)
	assert.Equal(t, models.StatusScheduled, updated.Status)
}

func TestCancelSetsReasonAndNotifies(t *testing.T) {
	existing := &models.Appointment{
		ID:               "appt-5",
		UserID:           "user-9",
		PrimaryPhysician: "Dr. Mensah",
		Schedule:         "2026-03-01T09:00:00.000Z",
		Status:           models.StatusScheduled,
	}
	repo := &mockRepo{
		getByIDFunc: func(id string) (*models.Appointment, error) {
			return existing, nil
		},
	}
	svc, sms, reminders := newTestService(repo)

	updated, err := svc.Update("appt-5", CancelOp{Reason: "Physician unavailable"})
	require.NoError(t, err)

	assert.Equal(t, models.StatusCancelled, updated.Status)
	assert.Equal(t, "Physician unavailable", updated.CancellationReason)
	require.Len(t, sms.sent, 1)
	assert.Contains(t, sms.sent[0], "has been cancelled")
	assert.Contains(t, sms.sent[0], "Physician unavailable")
	assert.Empty(t, reminders.queued)
}

func TestUpdateUnknownAppointment(t *testing.T) {
	svc, _, _ := newTestService(&mockRepo{})

	_, err := svc.Update("missing", CancelOp{Reason: "n/a"})
	assert.ErrorIs(t, err, appointmentRepo.ErrNotFound)
}

func TestListRecentCountsByStatus(t *testing.T) {
	repo := &mockRepo{
		listRecentFunc: func(limit int) ([]models.Appointment, error) {
			return []models.Appointment{
				{ID: "a", Status: models.StatusScheduled},
				{ID: "b", Status: models.StatusPending},
				{ID: "c", Status: models.StatusPending},
				{ID: "d", Status: models.StatusCancelled},
			}, nil
		},
	}
	svc, _, _ := newTestService(repo)

	recent, err := svc.ListRecent()
	require.NoError(t, err)

	assert.Equal(t, 4, recent.TotalCount)
	assert.Equal(t, 1, recent.ScheduledCount)
	assert.Equal(t, 2, recent.PendingCount)
	assert.Equal(t, 1, recent.CancelledCount)
	assert.Len(t, recent.Documents, 4)
}

type stubPatientRepo struct {
	patients map[string]*models.Patient
}

func (r *stubPatientRepo) Create(p *models.Patient) error { return nil }

func (r *stubPatientRepo) GetByID(id string) (*models.Patient, error) {
	if p, ok := r.patients[id]; ok {
		return p, nil
	}
	return nil, patientRepo.ErrNotFound
}

func (r *stubPatientRepo) GetByUserID(userID string) (*models.Patient, error) {
	return nil, patientRepo.ErrNotFound
}

func TestListRecentJoinsPatientRecords(t *testing.T) {
	repo := &mockRepo{
		listRecentFunc: func(limit int) ([]models.Appointment, error) {
			return []models.Appointment{
				{ID: "a", PatientID: "patient-1", Status: models.StatusScheduled},
				{ID: "b", PatientID: "patient-1", Status: models.StatusPending},
				{ID: "c", PatientID: "ghost", Status: models.StatusPending},
			}, nil
		},
	}
	svc, _, _ := newTestService(repo)
	svc.Patients = &stubPatientRepo{patients: map[string]*models.Patient{
		"patient-1": {ID: "patient-1", Name: "Adaeze Obi"},
	}}

	recent, err := svc.ListRecent()
	require.NoError(t, err)
	require.Len(t, recent.Documents, 3)

	require.NotNil(t, recent.Documents[0].Patient)
	assert.Equal(t, "Adaeze Obi", recent.Documents[0].Patient.Name)
	require.NotNil(t, recent.Documents[1].Patient)
	// A dangling patient reference leaves the row bare instead of failing
	// the whole list.
	assert.Nil(t, recent.Documents[2].Patient)
}

// inMemoryRepo mimics the store's status filter so cancelled records do not
// block their slot.
type inMemoryRepo struct {
	mockRepo
	appts []models.Appointment
}

func (r *inMemoryRepo) Create(appt *models.Appointment) error {
	for _, existing := range r.appts {
		if existing.PrimaryPhysician == appt.PrimaryPhysician &&
			existing.Schedule == appt.Schedule &&
			existing.Status != models.StatusCancelled {
			return appointmentRepo.ErrDuplicateSlot
		}
	}
	r.appts = append(r.appts, *appt)
	return nil
}

func (r *inMemoryRepo) FindByDoctorAt(physician, schedule string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, appt := range r.appts {
		if appt.PrimaryPhysician == physician && appt.Schedule == schedule &&
			appt.Status != models.StatusCancelled {
			out = append(out, appt)
		}
	}
	return out, nil
}

func TestCancelledAppointmentFreesItsSlot(t *testing.T) {
	repo := &inMemoryRepo{
		appts: []models.Appointment{{
			ID:               "appt-6",
			PrimaryPhysician: "Dr. Mensah",
			Schedule:         "2026-03-01T09:00:00.000Z",
			Status:           models.StatusCancelled,
		}},
	}
	sms := &fakeSMS{}
	svc := &DefaultAppointmentService{
		Repo: repo,
		Engine: &availability.DefaultEngine{
			Source:        repo,
			WorkStartHour: 9,
			WorkEndHour:   17,
			SlotMinutes:   30,
		},
		SMS: sms,
	}

	appt, err := svc.Create(CreateAppointmentInput{
		UserID:           "user-10",
		PatientID:        "patient-10",
		PrimaryPhysician: "Dr. Mensah",
		Schedule:         "2026-03-01T09:00:00Z",
		Reason:           "Rebooking a freed slot",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, appt.Status)
	assert.Len(t, repo.appts, 2)
}
