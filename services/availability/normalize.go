package availability

import "time"

// instantLayout is the canonical schedule representation: a UTC ISO-8601
// instant with millisecond precision. Every comparison and storage key in
// the booking path goes through this form, so two writers can never disagree
// on whether they target the same slot because of formatting or zone drift.
const instantLayout = "2006-01-02T15:04:05.000Z07:00"

// NormalizeTime converts a structured time value to the canonical instant.
func NormalizeTime(t time.Time) string {
	return t.UTC().Format(instantLayout)
}

// NormalizeSchedule converts either accepted schedule form (a structured
// time value or a textual timestamp) into the canonical instant string.
// It is pure and idempotent: canonical output fed back in reproduces itself.
//
// Textual input is expected to have passed request validation upstream;
// text that cannot be parsed maps to the zero instant rather than an error.
func NormalizeSchedule(schedule any) string {
	switch v := schedule.(type) {
	case time.Time:
		return NormalizeTime(v)
	case string:
		return normalizeText(v)
	default:
		return NormalizeTime(time.Time{})
	}
}

func normalizeText(s string) string {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return NormalizeTime(t)
	}
	// Bare wall-clock text without a zone designator is taken as UTC.
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return NormalizeTime(t)
	}
	return NormalizeTime(time.Time{})
}
