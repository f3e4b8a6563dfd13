package availability

import (
	"time"

	"careplus/config"
	"careplus/models"
	"careplus/utils"

	"go.uber.org/zap"
)

// DefaultEngine computes availability by diffing the working-hours slot grid
// against the non-cancelled bookings the store holds for a doctor. It never
// caches: every call re-reads current state, and every read failure resolves
// to "not available" so an ambiguous answer can never cause a double-booking.
type DefaultEngine struct {
	Source        BookingSource
	WorkStartHour int
	WorkEndHour   int
	SlotMinutes   int
}

// NewDefaultEngine constructs an engine using the configured working hours
// and default slot duration.
func NewDefaultEngine(source BookingSource) *DefaultEngine {
	return &DefaultEngine{
		Source:        source,
		WorkStartHour: config.AppConfig.WorkStartHour,
		WorkEndHour:   config.AppConfig.WorkEndHour,
		SlotMinutes:   config.AppConfig.SlotDurationMinutes,
	}
}

// CheckAvailability reports whether the doctor is free at the given schedule.
// When the slot is taken the first conflicting record is returned for
// diagnostic display.
func (e *DefaultEngine) CheckAvailability(physician string, schedule any) models.AvailabilityResult {
	normalized := NormalizeSchedule(schedule)

	existing, err := e.Source.FindByDoctorAt(physician, normalized)
	if err != nil {
		// Fail closed: a slot we cannot verify is a slot we do not book.
		utils.GetLogger().Warn("Availability check failed, reporting slot as taken",
			zap.String("physician", physician),
			zap.String("schedule", normalized),
			zap.Error(err))
		return models.AvailabilityResult{Available: false}
	}

	if len(existing) == 0 {
		return models.AvailabilityResult{Available: true}
	}
	conflict := existing[0]
	return models.AvailabilityResult{Available: false, ConflictingAppointment: &conflict}
}

// AvailableSlots enumerates the free slot-start instants for the doctor on
// the given calendar day, ascending. slotMinutes <= 0 selects the configured
// default. A read failure yields an empty list rather than an error, so a
// degraded store can never suggest slots it might not actually have.
func (e *DefaultEngine) AvailableSlots(physician string, day time.Time, slotMinutes int) []string {
	if slotMinutes <= 0 {
		slotMinutes = e.SlotMinutes
	}

	year, month, dom := day.Date()
	loc := day.Location()
	startOfDay := time.Date(year, month, dom, 0, 0, 0, 0, loc)
	endOfDay := time.Date(year, month, dom, 23, 59, 59, 999000000, loc)

	booked, err := e.Source.FindByDoctorBetween(physician, NormalizeTime(startOfDay), NormalizeTime(endOfDay))
	if err != nil {
		utils.GetLogger().Warn("Slot lookup failed, reporting no free slots",
			zap.String("physician", physician),
			zap.String("date", startOfDay.Format("2006-01-02")),
			zap.Error(err))
		return []string{}
	}

	taken := make(map[string]struct{}, len(booked))
	for _, appt := range booked {
		taken[NormalizeSchedule(appt.Schedule)] = struct{}{}
	}

	// Grid generation order is ascending, so the result needs no sort. A slot
	// duration that does not divide the working window evenly simply leaves
	// the trailing partial interval ungenerated.
	slots := []string{}
	for hour := e.WorkStartHour; hour < e.WorkEndHour; hour++ {
		for minute := 0; minute < 60; minute += slotMinutes {
			candidate := NormalizeTime(time.Date(year, month, dom, hour, minute, 0, 0, loc))
			if _, ok := taken[candidate]; !ok {
				slots = append(slots, candidate)
			}
		}
	}
	return slots
}
