package types

import (
	"time"

	"github.com/aerologix/charterplan/internal/domain/planning"
)

// LegInput is one user-requested trip segment
type LegInput struct {
	From      string
	To        string
	Departure time.Time
}

// QuoteInput carries the caller's quotation parameters shared by the
// planning commands and queries
type QuoteInput struct {
	MarginPct         float64
	CateringRequested bool
	International     *bool
	FuelPriceOverride float64
}

// ComputeRoutePlanCommand computes one plan for (aircraft, legs, mode)
type ComputeRoutePlanCommand struct {
	AircraftTail string
	Legs         []LegInput
	Mode         string
	Quote        QuoteInput

	// StrictAirports fails with UNKNOWN_AIRPORT when a leg endpoint is
	// absent from the reference data instead of estimating
	StrictAirports bool

	// Persist stores the assembled plan as an immutable snapshot
	Persist bool
}

// ComputeRoutePlanResponse carries the assembled plan
type ComputeRoutePlanResponse struct {
	Plan *planning.RoutePlan
}

// CompareModesQuery computes all three modes and ranks them
type CompareModesQuery struct {
	AircraftTail string
	Legs         []LegInput
	Quote        QuoteInput
}

// RankedMode is one mode's outcome in a comparison
type RankedMode struct {
	Plan *planning.RoutePlan

	// Label explains the ranking position ("cheapest", "fastest", ...)
	Label string
}

// CompareModesResponse lists succeeding modes cheapest-first plus
// per-mode failures
type CompareModesResponse struct {
	Ranked      []RankedMode
	Recommended *planning.RoutePlan
	Failures    map[string]error
}

// SelectAircraftQuery ranks candidate aircraft for a trip.
// Empty Tails means every aircraft on file.
type SelectAircraftQuery struct {
	Tails []string
	Legs  []LegInput
	Quote QuoteInput
}

// SelectAircraftResponse carries the ranked fleet selection
type SelectAircraftResponse struct {
	Selection *planning.Selection
}

// Metrics records planning outcomes; the prometheus adapter implements it
type Metrics interface {
	ObservePlan(mode, outcome string, seconds float64, stops int)
}

// NopMetrics discards observations
type NopMetrics struct{}

func (NopMetrics) ObservePlan(mode, outcome string, seconds float64, stops int) {}
