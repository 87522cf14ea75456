package schedule

import "time"

// Normalizer is the schedule library contract the reconcilers depend on.
type Normalizer interface {
	// CompareRecurring and CompareOneTime are stable total orders usable as
	// sort comparators.
	CompareRecurring(a, b Event) int
	CompareOneTime(a, b Event) int
	// CompareRecurringArrays and CompareOneTimeArrays return 0 iff both
	// arrays are semantically equal after normalization.
	CompareRecurringArrays(a, b []Event) int
	CompareOneTimeArrays(a, b []Event) int
	// TranslateForStore normalizes a single event's field encoding in place.
	TranslateForStore(ev Event) error
	// TrimOneTime drops one-time events that are no longer actionable.
	TrimOneTime(events []Event) []Event
	// NormalizeDaysOfWeek coerces any day-of-week encoding to ascending indices.
	NormalizeDaysOfWeek(val any) ([]int, error)
	DaysOfWeekBitmaskToArray(mask int) []int
}

// Options configures a Library.
type Options struct {
	// Now supplies the current time for trimming. Defaults to time.Now.
	Now func() time.Time
	// TrimGrace keeps one-time events for this long after they end.
	TrimGrace time.Duration
}

// Library is the default Normalizer.
type Library struct {
	now   func() time.Time
	grace time.Duration
}

var _ Normalizer = (*Library)(nil)

// New creates a Library.
func New(opts Options) *Library {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Library{now: now, grace: opts.TrimGrace}
}

func (l *Library) CompareRecurring(a, b Event) int { return CompareRecurring(a, b) }

func (l *Library) CompareOneTime(a, b Event) int { return CompareOneTime(a, b) }

func (l *Library) CompareRecurringArrays(a, b []Event) int { return CompareRecurringArrays(a, b) }

func (l *Library) CompareOneTimeArrays(a, b []Event) int { return CompareOneTimeArrays(a, b) }

func (l *Library) TranslateForStore(ev Event) error { return TranslateForStore(ev) }

func (l *Library) TrimOneTime(events []Event) []Event {
	return TrimOneTime(events, l.now(), l.grace)
}

func (l *Library) NormalizeDaysOfWeek(val any) ([]int, error) { return NormalizeDaysOfWeek(val) }

func (l *Library) DaysOfWeekBitmaskToArray(mask int) []int { return DaysOfWeekBitmaskToArray(mask) }
