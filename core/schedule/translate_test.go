package schedule

import (
	"testing"
	"time"

	"shadow-sync/core/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateForStore(t *testing.T) {
	ev := Event{
		FieldDays:      "5,1",
		FieldStartTime: "07:30",
		FieldStartDate: "2030-01-01T00:00:00Z",
		"label":        "",
		"lvl":          40.0,
	}
	require.NoError(t, TranslateForStore(ev))

	assert.Equal(t, []int{1, 5}, ev[FieldDays])
	assert.Equal(t, 450, ev[FieldStartTime])
	assert.Equal(t, int64(1893456000), ev[FieldStartDate])
	assert.NotContains(t, ev, "label")
	assert.Equal(t, 40.0, ev["lvl"])
}

func TestTranslateForStore_Bitmask(t *testing.T) {
	ev := Event{FieldDays: 42.0}
	require.NoError(t, TranslateForStore(ev))
	assert.Equal(t, []int{1, 3, 5}, ev[FieldDays])
}

func TestTranslateForStore_Invalid(t *testing.T) {
	for name, ev := range map[string]Event{
		"Clock": {FieldStartTime: "25:00"},
		"Date":  {FieldEndDate: "tomorrow"},
		"Days":  {FieldDays: "9"},
	} {
		t.Run(name, func(t *testing.T) {
			err := TranslateForStore(ev)
			require.Error(t, err)
			assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
		})
	}
	assert.NoError(t, TranslateForStore(nil))
}

func TestNormalizeTimezoneOffset(t *testing.T) {
	tests := []struct {
		name      string
		in        any
		want      any
		converted bool
	}{
		{"LegacyHours", 5.0, 300, true},
		{"LegacyIntHours", 5, 300, true},
		{"NegativeHalfHour", -3.5, -210, true},
		{"AlreadyMinutes", 300.0, 300.0, false},
		{"BoundaryIsMinutes", 15.0, 15.0, false},
		{"NegativeBoundaryIsMinutes", -15.0, -15.0, false},
		{"Zero", 0.0, 0, true},
		{"NotNumeric", "5", "5", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, converted := NormalizeTimezoneOffset(tt.in)
			assert.Equal(t, tt.converted, converted)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTrimOneTime(t *testing.T) {
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	past := Event{FieldStartDate: float64(now.Add(-2 * time.Hour).Unix())}
	running := Event{FieldStartDate: float64(now.Add(-30 * time.Minute).Unix()), FieldDuration: 60.0}
	endedWithEnd := Event{FieldStartDate: 0.0, FieldEndDate: now.Add(-time.Minute).Format(time.RFC3339)}
	future := Event{FieldStartDate: now.Add(time.Hour).Format(time.RFC3339)}
	undated := Event{"act": "on"}

	kept := TrimOneTime([]Event{past, nil, running, endedWithEnd, future, undated}, now, 0)
	assert.Equal(t, []Event{running, future, undated}, kept)

	kept = TrimOneTime([]Event{endedWithEnd}, now, 5*time.Minute)
	assert.Equal(t, []Event{endedWithEnd}, kept)
}

func TestLibrary_UsesClock(t *testing.T) {
	now := time.Unix(10_000, 0)
	lib := New(Options{Now: func() time.Time { return now }})

	kept := lib.TrimOneTime([]Event{{FieldStartDate: 9_000.0}, {FieldStartDate: 11_000.0}})
	assert.Len(t, kept, 1)
	assert.Equal(t, 11_000.0, kept[0][FieldStartDate])
}
