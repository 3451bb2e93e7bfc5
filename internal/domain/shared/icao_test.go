package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerologix/charterplan/internal/domain/shared"
)

func TestValidICAO(t *testing.T) {
	tests := []struct {
		code  string
		valid bool
	}{
		{"KLAX", true},
		{"EGGW", true},
		{"7FL6", true},
		{"LAX", true},
		{"klax", false},
		{"KL", false},
		{"KLAXX", false},
		{"KL-X", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.valid, shared.ValidICAO(tt.code))
		})
	}
}

func TestNewICAO_Normalizes(t *testing.T) {
	code, err := shared.NewICAO("  klax ")

	require.NoError(t, err)
	assert.Equal(t, "KLAX", code)
}

func TestNewICAO_RejectsMalformed(t *testing.T) {
	_, err := shared.NewICAO("K!")

	require.Error(t, err)
	assert.Equal(t, shared.ErrCodeInvalidInput, shared.CodeOf(err))
}

func TestParseMode(t *testing.T) {
	for _, mode := range shared.AllModes() {
		parsed, err := shared.ParseMode(string(mode))
		require.NoError(t, err)
		assert.Equal(t, mode, parsed)
	}

	_, err := shared.ParseMode("fastest")
	assert.Error(t, err)
}
