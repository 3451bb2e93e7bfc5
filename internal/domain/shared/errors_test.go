package shared_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aerologix/charterplan/internal/domain/shared"
)

func TestCodeOf_TypedErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code shared.ErrorCode
	}{
		{"no route", shared.NewNoRouteError("KLAX", "PHNL", 320), shared.ErrCodeNoRoute},
		{"aircraft not found", shared.NewAircraftNotFoundError("N999ZZ"), shared.ErrCodeAircraftNotFound},
		{"unknown airport", shared.NewUnknownAirportError("ZZZZ"), shared.ErrCodeUnknownAirport},
		{"validation", shared.NewValidationError("margin_pct", "cannot be negative"), shared.ErrCodeInvalidInput},
		{"no candidate", shared.NewNoCandidateError(map[string]error{"N1": fmt.Errorf("boom")}), shared.ErrCodeNoCandidate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, shared.CodeOf(tt.err))
		})
	}
}

func TestCodeOf_UntypedError(t *testing.T) {
	assert.Equal(t, shared.ErrorCode(""), shared.CodeOf(fmt.Errorf("plain failure")))
}

func TestNoRouteError_CarriesShortfall(t *testing.T) {
	err := shared.NewNoRouteError("KLAX", "PHNL", 321.5)

	assert.Equal(t, "KLAX", err.From)
	assert.Equal(t, "PHNL", err.To)
	assert.InDelta(t, 321.5, err.ShortfallNM, 1e-9)
	assert.Contains(t, err.Error(), "KLAX")
	assert.Contains(t, err.Error(), "PHNL")
}

func TestValidationError_NamesField(t *testing.T) {
	err := shared.NewValidationError("tax_rate", "cannot be negative")

	assert.Equal(t, "tax_rate", err.Field)
	assert.Contains(t, err.Error(), "tax_rate")
}
