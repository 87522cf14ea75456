package utils

import (
	"encoding/json"
	"math"
)

// ToFloat converts numeric values to float64 using explicit type switching.
// Strings, booleans and other kinds report false.
func ToFloat(val any) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case int16:
		return float64(v), true
	case int8:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint8:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// ToInt converts a numeric value holding a whole number to int.
// Fractional values and non-numeric kinds report false.
func ToInt(val any) (int, bool) {
	f, ok := ToFloat(val)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32*2 || f < math.MinInt32*2 {
		// Outside any version, slot or day range we deal with.
		return 0, false
	}
	return int(f), true
}

// IsNumber reports whether val is a numeric kind.
func IsNumber(val any) bool {
	_, ok := ToFloat(val)
	return ok
}

// Clone returns a deep copy of a decoded JSON value (maps, slices, scalars).
func Clone(val any) any {
	switch v := val.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = Clone(e)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = Clone(e)
		}
		return out
	case []int:
		return append([]int(nil), v...)
	default:
		return v
	}
}

// CloneMap returns a deep copy of m. A nil map stays nil.
func CloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	return Clone(m).(map[string]any)
}

// RemoveEmptyStrings recursively deletes map entries holding "".
func RemoveEmptyStrings(m map[string]any) map[string]any {
	for k, v := range m {
		switch t := v.(type) {
		case string:
			if t == "" {
				delete(m, k)
			}
		case map[string]any:
			RemoveEmptyStrings(t)
		case []any:
			for _, e := range t {
				if em, ok := e.(map[string]any); ok {
					RemoveEmptyStrings(em)
				}
			}
		}
	}
	return m
}
