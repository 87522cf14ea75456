package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
		ok   bool
	}{
		{"Int", 5, 5, true},
		{"Float64Whole", float64(7), 7, true},
		{"Float64Fraction", 7.5, 0, false},
		{"JSONNumber", json.Number("12"), 12, true},
		{"String", "12", 0, false},
		{"Bool", true, 0, false},
		{"Nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToInt(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClone(t *testing.T) {
	src := map[string]any{
		"opsCfg": map[string]any{"tzOfst": 5.0},
		"list":   []any{map[string]any{"a": 1.0}, nil},
	}
	dst := CloneMap(src)
	dst["opsCfg"].(map[string]any)["tzOfst"] = 300
	dst["list"].([]any)[0].(map[string]any)["a"] = 2.0

	assert.Equal(t, 5.0, src["opsCfg"].(map[string]any)["tzOfst"])
	assert.Equal(t, 1.0, src["list"].([]any)[0].(map[string]any)["a"])
	assert.Nil(t, CloneMap(nil))
}

func TestRemoveEmptyStrings(t *testing.T) {
	m := map[string]any{
		"a": "",
		"b": "x",
		"c": map[string]any{"d": "", "e": 1},
		"f": []any{map[string]any{"g": ""}},
	}
	RemoveEmptyStrings(m)

	assert.NotContains(t, m, "a")
	assert.Equal(t, "x", m["b"])
	assert.Equal(t, map[string]any{"e": 1}, m["c"])
	assert.Equal(t, []any{map[string]any{}}, m["f"])
}
