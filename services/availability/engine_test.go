package availability

import (
	"errors"
	"testing"
	"time"

	"careplus/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockBookingSource is a func-field test double for BookingSource.
type mockBookingSource struct {
	findAtFunc      func(physician, schedule string) ([]models.Appointment, error)
	findBetweenFunc func(physician, from, to string) ([]models.Appointment, error)
}

func (m *mockBookingSource) FindByDoctorAt(physician, schedule string) ([]models.Appointment, error) {
	if m.findAtFunc != nil {
		return m.findAtFunc(physician, schedule)
	}
	return nil, nil
}

func (m *mockBookingSource) FindByDoctorBetween(physician, from, to string) ([]models.Appointment, error) {
	if m.findBetweenFunc != nil {
		return m.findBetweenFunc(physician, from, to)
	}
	return nil, nil
}

func newTestEngine(source BookingSource) *DefaultEngine {
	return &DefaultEngine{
		Source:        source,
		WorkStartHour: 9,
		WorkEndHour:   17,
		SlotMinutes:   30,
	}
}

func TestCheckAvailability_FreeSlot(t *testing.T) {
	source := &mockBookingSource{
		findAtFunc: func(physician, schedule string) ([]models.Appointment, error) {
			return nil, nil
		},
	}
	engine := newTestEngine(source)

	result := engine.CheckAvailability("Dr. Green", "2026-03-01T10:00:00Z")

	assert.True(t, result.Available)
	assert.Nil(t, result.ConflictingAppointment)
}

func TestCheckAvailability_ConflictReturnsRecord(t *testing.T) {
	existing := models.Appointment{
		ID:               "appt-1",
		PrimaryPhysician: "Dr. Green",
		Schedule:         "2026-03-01T10:00:00.000Z",
		Status:           models.StatusPending,
	}
	source := &mockBookingSource{
		findAtFunc: func(physician, schedule string) ([]models.Appointment, error) {
			assert.Equal(t, "Dr. Green", physician)
			assert.Equal(t, "2026-03-01T10:00:00.000Z", schedule)
			return []models.Appointment{existing}, nil
		},
	}
	engine := newTestEngine(source)

	result := engine.CheckAvailability("Dr. Green", "2026-03-01T10:00:00Z")

	assert.False(t, result.Available)
	require.NotNil(t, result.ConflictingAppointment)
	assert.Equal(t, "appt-1", result.ConflictingAppointment.ID)
}

func TestCheckAvailability_StructuredScheduleMatchesTextual(t *testing.T) {
	var queried string
	source := &mockBookingSource{
		findAtFunc: func(physician, schedule string) ([]models.Appointment, error) {
			queried = schedule
			return nil, nil
		},
	}
	engine := newTestEngine(source)

	engine.CheckAvailability("Dr. Green", time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	assert.Equal(t, "2026-03-01T10:00:00.000Z", queried)
}

func TestCheckAvailability_ReadFailureFailsClosed(t *testing.T) {
	source := &mockBookingSource{
		findAtFunc: func(physician, schedule string) ([]models.Appointment, error) {
			return nil, errors.New("store unreachable")
		},
	}
	engine := newTestEngine(source)

	result := engine.CheckAvailability("Dr. Green", "2026-03-01T10:00:00Z")

	assert.False(t, result.Available)
	assert.Nil(t, result.ConflictingAppointment)
}

func TestAvailableSlots_EmptyDayFullGrid(t *testing.T) {
	source := &mockBookingSource{}
	engine := newTestEngine(source)
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	slots := engine.AvailableSlots("Dr. Green", day, 30)

	require.Len(t, slots, 16)
	assert.Equal(t, "2026-03-01T09:00:00.000Z", slots[0])
	assert.Equal(t, "2026-03-01T16:30:00.000Z", slots[len(slots)-1])
	for i := 1; i < len(slots); i++ {
		assert.Less(t, slots[i-1], slots[i], "slots must ascend")
	}
	for _, slot := range slots {
		parsed, err := time.Parse(time.RFC3339Nano, slot)
		require.NoError(t, err)
		assert.Less(t, parsed.Hour(), 17, "no slot may start at or after the end of working hours")
	}
}

func TestAvailableSlots_ExcludesBookedInstants(t *testing.T) {
	booked := "2026-03-01T10:00:00.000Z"
	source := &mockBookingSource{
		findBetweenFunc: func(physician, from, to string) ([]models.Appointment, error) {
			return []models.Appointment{
				{ID: "appt-1", PrimaryPhysician: physician, Schedule: booked, Status: models.StatusScheduled},
			}, nil
		},
	}
	engine := newTestEngine(source)
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	slots := engine.AvailableSlots("Dr. Green", day, 30)

	require.Len(t, slots, 15)
	assert.NotContains(t, slots, booked)
	assert.Contains(t, slots, "2026-03-01T09:30:00.000Z")
	assert.Contains(t, slots, "2026-03-01T10:30:00.000Z")
}

func TestAvailableSlots_QueriesWholeDayRange(t *testing.T) {
	var gotFrom, gotTo string
	source := &mockBookingSource{
		findBetweenFunc: func(physician, from, to string) ([]models.Appointment, error) {
			gotFrom, gotTo = from, to
			return nil, nil
		},
	}
	engine := newTestEngine(source)
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	engine.AvailableSlots("Dr. Green", day, 30)

	assert.Equal(t, "2026-03-01T00:00:00.000Z", gotFrom)
	assert.Equal(t, "2026-03-01T23:59:59.999Z", gotTo)
}

func TestAvailableSlots_ReadFailureYieldsEmpty(t *testing.T) {
	source := &mockBookingSource{
		findBetweenFunc: func(physician, from, to string) ([]models.Appointment, error) {
			return nil, errors.New("store unreachable")
		},
	}
	engine := newTestEngine(source)
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	slots := engine.AvailableSlots("Dr. Green", day, 30)

	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestAvailableSlots_PartialTrailingIntervalDropped(t *testing.T) {
	source := &mockBookingSource{}
	engine := newTestEngine(source)
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	// 50-minute slots: two per hour at :00 and :50, none generated at or
	// past the 17:00 boundary.
	slots := engine.AvailableSlots("Dr. Green", day, 50)

	require.NotEmpty(t, slots)
	assert.Equal(t, "2026-03-01T16:50:00.000Z", slots[len(slots)-1])
	for _, slot := range slots {
		parsed, err := time.Parse(time.RFC3339Nano, slot)
		require.NoError(t, err)
		assert.Less(t, parsed.Hour(), 17)
	}
}

func TestAvailableSlots_DefaultDurationWhenUnset(t *testing.T) {
	source := &mockBookingSource{}
	engine := newTestEngine(source)
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	slots := engine.AvailableSlots("Dr. Green", day, 0)

	assert.Len(t, slots, 16)
}
