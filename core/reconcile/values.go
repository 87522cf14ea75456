package reconcile

import (
	"shadow-sync/core/apperror"
	"shadow-sync/core/utils"
)

// IntField reads an optional non-negative whole number. A nil value is
// absent; anything else that is not a whole number in [0, max] is rejected.
func IntField(name string, val any, max int) (*int, error) {
	if val == nil {
		return nil, nil
	}
	n, ok := utils.ToInt(val)
	if !ok {
		return nil, apperror.Validation("%s must be a whole number, got %v", name, val)
	}
	if n < 0 || n > max {
		return nil, apperror.Validation("%s must be between 0 and %d, got %d", name, max, n)
	}
	return &n, nil
}
