// Package version implements the optimistic-concurrency gate for the desired
// section of a device shadow.
//
// The desired version (dsrdVrs) is a 32-bit counter in [1, MaxVersionNumber].
// Every accepted desired update advances it by one and the counter wraps back
// to 1 once the maximum is reached.
//
// # Gate
//
// Gate.Advance decides whether a caller-supplied version may update a shadow
// and what the next version will be. It performs no I/O: the read-then-write
// round trip against the shadow store is the serialization point, the gate
// only accepts or rejects.
//
//	gate := version.NewGate(version.MaxVersionNumber)
//	next, err := gate.Advance(stored, supplied)
//	if err != nil {
//	    return err // ValidationError
//	}
package version
