package schedule

import (
	"time"

	"shadow-sync/core/utils"
)

// TrimOneTime drops empty slots and events that have already ended at now,
// allowing grace after the end. The returned slice shares storage with events.
// Events without a start date are kept.
func TrimOneTime(events []Event, now time.Time, grace time.Duration) []Event {
	cutoff := float64(now.Add(-grace).Unix())
	kept := events[:0]
	for _, ev := range events {
		if ev == nil {
			continue
		}
		if end, ok := endOf(ev); ok && end < cutoff {
			continue
		}
		kept = append(kept, ev)
	}
	return kept
}

// dateOf reads a date field as epoch seconds.
func dateOf(ev Event, field string) (float64, bool) {
	switch v := ev[field].(type) {
	case string:
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return 0, false
		}
		return float64(ts.Unix()), true
	default:
		return utils.ToFloat(v)
	}
}

// endOf returns the moment an event stops being actionable.
func endOf(ev Event) (float64, bool) {
	if end, ok := dateOf(ev, FieldEndDate); ok {
		return end, true
	}
	start, ok := dateOf(ev, FieldStartDate)
	if !ok {
		return 0, false
	}
	if minutes, ok := utils.ToFloat(ev[FieldDuration]); ok {
		return start + minutes*60, true
	}
	return start, true
}
