package schedule

import (
	"math"
	"strconv"
	"strings"
	"time"

	"shadow-sync/core/apperror"
	"shadow-sync/core/utils"
)

// TranslateForStore rewrites a single event into the encoding persisted in the
// shadow. The event is modified in place.
func TranslateForStore(ev Event) error {
	if ev == nil {
		return nil
	}
	utils.RemoveEmptyStrings(ev)

	if raw, ok := ev[FieldDays]; ok {
		days, err := NormalizeDaysOfWeek(raw)
		if err != nil {
			return err
		}
		ev[FieldDays] = days
	}

	if raw, ok := ev[FieldStartTime].(string); ok {
		minutes, err := parseClock(raw)
		if err != nil {
			return err
		}
		ev[FieldStartTime] = minutes
	}

	for _, field := range []string{FieldStartDate, FieldEndDate} {
		raw, ok := ev[field].(string)
		if !ok {
			continue
		}
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return apperror.Validation("invalid %s %q: expected RFC 3339 or epoch seconds", field, raw)
		}
		ev[field] = ts.Unix()
	}
	return nil
}

// parseClock converts "HH:MM" into minutes after midnight.
func parseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, apperror.Validation("invalid start time %q: expected HH:MM", s)
	}
	h, errH := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, apperror.Validation("invalid start time %q: expected HH:MM", s)
	}
	return h*60 + m, nil
}

// LegacyTimezoneBound is the exclusive magnitude below which a timezone offset
// is read as hours instead of minutes.
const LegacyTimezoneBound = 15

// NormalizeTimezoneOffset converts a legacy hour-based offset into minutes.
// Offsets in (-15, 15) are hours and become round(v*60); anything else is
// already minutes. The second result reports whether a conversion happened.
func NormalizeTimezoneOffset(val any) (any, bool) {
	f, ok := utils.ToFloat(val)
	if !ok {
		return val, false
	}
	if f <= -LegacyTimezoneBound || f >= LegacyTimezoneBound {
		return val, false
	}
	return int(math.Floor(f*60 + 0.5)), true
}
