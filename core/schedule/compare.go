package schedule

import (
	"encoding/json"
	"sort"
	"strings"

	"shadow-sync/core/utils"
)

// CompareRecurring is a total order over recurring events: first day, full day
// list, start time, duration, then the complete canonical encoding. Nil events
// sort last. It returns 0 only for identical events.
func CompareRecurring(a, b Event) int {
	if c, done := compareNil(a, b); done {
		return c
	}
	da, db := daysOf(a), daysOf(b)
	if c := compareFirst(da, db); c != 0 {
		return c
	}
	if c := compareInts(da, db); c != 0 {
		return c
	}
	if c := compareNumberField(a, b, FieldStartTime); c != 0 {
		return c
	}
	if c := compareNumberField(a, b, FieldDuration); c != 0 {
		return c
	}
	return strings.Compare(canonical(a), canonical(b))
}

// CompareOneTime is a total order over one-time events: start, effective end,
// then the complete canonical encoding. Nil events sort last.
func CompareOneTime(a, b Event) int {
	if c, done := compareNil(a, b); done {
		return c
	}
	sa, okA := dateOf(a, FieldStartDate)
	sb, okB := dateOf(b, FieldStartDate)
	if c := compareOptional(sa, okA, sb, okB); c != 0 {
		return c
	}
	ea, okA := endOf(a)
	eb, okB := endOf(b)
	if c := compareOptional(ea, okA, eb, okB); c != 0 {
		return c
	}
	return strings.Compare(canonical(a), canonical(b))
}

// SortRecurring stable-sorts events in place.
func SortRecurring(events []Event) {
	SortFunc(events, CompareRecurring)
}

// SortOneTime stable-sorts events in place.
func SortOneTime(events []Event) {
	SortFunc(events, CompareOneTime)
}

// SortFunc stable-sorts events in place with cmp.
func SortFunc(events []Event, cmp func(a, b Event) int) {
	sort.SliceStable(events, func(i, j int) bool {
		return cmp(events[i], events[j]) < 0
	})
}

// CompareRecurringArrays returns 0 iff both arrays hold the same recurring
// events after translation and sorting. Neither input is modified.
func CompareRecurringArrays(a, b []Event) int {
	return compareArrays(a, b, CompareRecurring)
}

// CompareOneTimeArrays returns 0 iff both arrays hold the same one-time events
// after translation and sorting. Neither input is modified.
func CompareOneTimeArrays(a, b []Event) int {
	return compareArrays(a, b, CompareOneTime)
}

func compareArrays(a, b []Event, cmp func(x, y Event) int) int {
	na, nb := prepared(a, cmp), prepared(b, cmp)
	if len(na) != len(nb) {
		if len(na) < len(nb) {
			return -1
		}
		return 1
	}
	for i := range na {
		if c := cmp(na[i], nb[i]); c != 0 {
			return c
		}
	}
	return 0
}

// prepared returns a translated, sorted copy of events.
func prepared(events []Event, cmp func(x, y Event) int) []Event {
	out := make([]Event, len(events))
	for i, ev := range events {
		if ev == nil {
			continue
		}
		cp := Event(utils.CloneMap(ev))
		if err := TranslateForStore(cp); err != nil {
			cp = Event(utils.CloneMap(ev))
		}
		out[i] = cp
	}
	SortFunc(out, cmp)
	return out
}

func compareNil(a, b Event) (int, bool) {
	switch {
	case a == nil && b == nil:
		return 0, true
	case a == nil:
		return 1, true
	case b == nil:
		return -1, true
	}
	return 0, false
}

func daysOf(ev Event) []int {
	raw, ok := ev[FieldDays]
	if !ok {
		return nil
	}
	days, err := NormalizeDaysOfWeek(raw)
	if err != nil {
		return nil
	}
	return days
}

// compareFirst orders by first day; events without days sort after.
func compareFirst(a, b []int) int {
	switch {
	case len(a) == 0 && len(b) == 0:
		return 0
	case len(a) == 0:
		return 1
	case len(b) == 0:
		return -1
	}
	return compareInt(a[0], b[0])
}

func compareInts(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareInt(a[i], b[i]); c != 0 {
			return c
		}
	}
	return compareInt(len(a), len(b))
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareNumberField(a, b Event, field string) int {
	fa, okA := utils.ToFloat(a[field])
	fb, okB := utils.ToFloat(b[field])
	return compareOptional(fa, okA, fb, okB)
}

// compareOptional orders present values first, then by value.
func compareOptional(a float64, okA bool, b float64, okB bool) int {
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return 1
	case !okB:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func canonical(ev Event) string {
	data, err := json.Marshal(map[string]any(ev))
	if err != nil {
		return ""
	}
	return string(data)
}
