package schedule

import (
	"sort"
	"strings"

	"shadow-sync/core/apperror"
	"shadow-sync/core/utils"

	"github.com/spf13/cast"
)

// DaysPerWeek is the number of day indices (0 = Sunday ... 6 = Saturday).
const DaysPerWeek = 7

// DaysOfWeekBitmaskToArray expands a bitmask (bit d set = day d) into an
// ascending list of day indices.
func DaysOfWeekBitmaskToArray(mask int) []int {
	days := []int{}
	for d := 0; d < DaysPerWeek; d++ {
		if mask&(1<<d) != 0 {
			days = append(days, d)
		}
	}
	return days
}

// DaysOfWeekArrayToBitmask folds day indices into a bitmask.
func DaysOfWeekArrayToBitmask(days []int) int {
	mask := 0
	for _, d := range days {
		if d >= 0 && d < DaysPerWeek {
			mask |= 1 << d
		}
	}
	return mask
}

// NormalizeDaysOfWeek coerces any supported day-of-week encoding into an
// ascending, duplicate-free list of day indices:
//   - "1,3,5"           comma separated string
//   - [1,3,5]           array of numbers
//   - ["1","3","5"]     array of numeric strings
//   - 42                legacy bitmask
func NormalizeDaysOfWeek(val any) ([]int, error) {
	var days []int

	switch v := val.(type) {
	case nil:
		return []int{}, nil
	case string:
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			d, err := cast.ToIntE(part)
			if err != nil {
				return nil, apperror.Validation("invalid day of week %q", part)
			}
			days = append(days, d)
		}
	case []int:
		days = append(days, v...)
	case []string:
		for _, s := range v {
			d, err := cast.ToIntE(strings.TrimSpace(s))
			if err != nil {
				return nil, apperror.Validation("invalid day of week %q", s)
			}
			days = append(days, d)
		}
	case []any:
		for _, e := range v {
			d, err := dayValue(e)
			if err != nil {
				return nil, err
			}
			days = append(days, d)
		}
	default:
		mask, ok := utils.ToInt(val)
		if !ok || mask < 0 || mask >= 1<<DaysPerWeek {
			return nil, apperror.Validation("invalid days of week bitmask %v", val)
		}
		return DaysOfWeekBitmaskToArray(mask), nil
	}

	return canonicalDays(days)
}

func dayValue(e any) (int, error) {
	if s, ok := e.(string); ok {
		d, err := cast.ToIntE(strings.TrimSpace(s))
		if err != nil {
			return 0, apperror.Validation("invalid day of week %q", s)
		}
		return d, nil
	}
	d, ok := utils.ToInt(e)
	if !ok {
		return 0, apperror.Validation("invalid day of week %v", e)
	}
	return d, nil
}

func canonicalDays(days []int) ([]int, error) {
	seen := make(map[int]struct{}, len(days))
	out := make([]int, 0, len(days))
	for _, d := range days {
		if d < 0 || d >= DaysPerWeek {
			return nil, apperror.Validation("day of week %d out of range", d)
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Ints(out)
	return out, nil
}
