package schedule

import (
	"shadow-sync/core/apperror"
)

// Event field names on the wire.
const (
	FieldPosition  = "pos"
	FieldDays      = "dysOfWk"
	FieldStartTime = "strtTm"
	FieldDuration  = "drtn"
	FieldStartDate = "strtDtTm"
	FieldEndDate   = "endDtTm"
)

// Event is a single schedule entry. Apart from the fields above its payload is
// opaque. A nil Event is an empty slot.
type Event map[string]any

// AsEvents converts a decoded JSON array into events. Null elements become nil
// events; any other non-object element is rejected.
func AsEvents(field string, val any) ([]Event, error) {
	switch v := val.(type) {
	case []Event:
		return v, nil
	case []map[string]any:
		out := make([]Event, len(v))
		for i, e := range v {
			out[i] = e
		}
		return out, nil
	case []any:
		out := make([]Event, len(v))
		for i, e := range v {
			switch ev := e.(type) {
			case nil:
			case map[string]any:
				out[i] = ev
			case Event:
				out[i] = ev
			default:
				return nil, apperror.Validation("%s[%d] must be an object, got %T", field, i, e)
			}
		}
		return out, nil
	default:
		return nil, apperror.Validation("%s must be an array, got %T", field, val)
	}
}

// ToJSON converts events back into a plain JSON array, keeping empty slots as null.
func ToJSON(events []Event) []any {
	out := make([]any, len(events))
	for i, ev := range events {
		if ev != nil {
			out[i] = map[string]any(ev)
		}
	}
	return out
}
