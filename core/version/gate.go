package version

import (
	"shadow-sync/core/apperror"
)

// MaxVersionNumber is the largest value a shadow version counter can hold.
const MaxVersionNumber = 2147483647

// Gate validates and advances desired-state versions.
type Gate struct {
	max int
}

// NewGate creates a gate that wraps at max. A non-positive max falls back to
// MaxVersionNumber.
func NewGate(max int) Gate {
	if max <= 0 {
		max = MaxVersionNumber
	}
	return Gate{max: max}
}

// Max returns the wrap-around limit of the gate.
func (g Gate) Max() int {
	return g.max
}

// Next returns the version following v, wrapping to 1 at the limit.
func (g Gate) Next(v int) int {
	if v >= g.max || v < 0 {
		return 1
	}
	return v + 1
}

// Advance decides whether an update carrying supplied may be applied to a
// shadow whose stored desired version is current, and returns the version the
// update must write.
//
// A nil or zero version counts as absent. Without a stored version any request
// is accepted. With one, the request must carry exactly the stored value.
func (g Gate) Advance(current, supplied *int) (int, error) {
	stored := present(current)
	given := present(supplied)

	if stored == nil {
		if given == nil {
			return 1, nil
		}
		return g.Next(*given), nil
	}

	if given == nil {
		return 0, apperror.Validation("update is missing a desired version; shadow desired version is %d", *stored)
	}
	if *given != *stored {
		return 0, apperror.Validation("desired version mismatch (concurrent modification): supplied %d, shadow has %d", *given, *stored)
	}
	return g.Next(*given), nil
}

func present(v *int) *int {
	if v == nil || *v == 0 {
		return nil
	}
	return v
}
