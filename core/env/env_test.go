package env_test

import (
	"testing"

	"shadow-sync/core/env"

	"github.com/stretchr/testify/assert"
)

func TestInSameEnv(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"prod", "prod", true},
		{"prod", "Production", true},
		{" stage ", "staging", true},
		{"dev", "development", true},
		{"prod", "staging", false},
		{"custom-1", "CUSTOM-1", true},
		{"custom-1", "custom-2", false},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, env.InSameEnv(tt.a, tt.b))
		})
	}
}

func TestIsKnown(t *testing.T) {
	assert.True(t, env.IsKnown("Staging"))
	assert.True(t, env.IsKnown("qa"))
	assert.False(t, env.IsKnown("custom-1"))
	assert.False(t, env.IsKnown(""))
}
