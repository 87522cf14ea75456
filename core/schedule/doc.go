// Package schedule normalizes and compares the two schedule arrays carried in a
// device configuration: recurring weekly events (rcrEvntsCfg) and one-time
// dated events (oneEvntsCfg).
//
// Devices and cloud clients encode the same schedule in different ways: days
// of the week arrive as "1,3,5", [1,3,5], ["1","3","5"] or as a legacy bitmask;
// start times as minutes or "HH:MM"; dates as epoch seconds or RFC 3339. The
// package turns every variant into one canonical form so that two arrays can
// be compared for equality regardless of encoding or ordering.
//
// # Normalizer
//
// Reconcilers depend on the Normalizer interface. Library is the default
// implementation; its clock and trim grace period are injectable for tests.
//
//	n := schedule.New(schedule.Options{})
//	schedule.SortRecurring(events)
//	if n.CompareRecurringArrays(events, stored) == 0 {
//	    // unchanged, skip the write
//	}
package schedule
