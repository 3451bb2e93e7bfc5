package planning

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aerologix/charterplan/internal/domain/pricing"
	"github.com/aerologix/charterplan/internal/domain/routing"
	"github.com/aerologix/charterplan/internal/domain/shared"
	"github.com/aerologix/charterplan/internal/domain/weather"
)

// RoutePlan is the immutable output record of one (aircraft, legs,
// mode) computation. A new computation produces a new RoutePlan; stored
// copies are never mutated.
type RoutePlan struct {
	ID           string                  `json:"id"`
	AircraftTail string                  `json:"aircraft_tail"`
	Mode         shared.OptimizationMode `json:"mode"`

	Legs    []*routing.RouteLeg   `json:"legs"`
	Stops   []*routing.RefuelStop `json:"stops"`
	Weather []*weather.Assessment `json:"weather"`
	Notams  []*weather.Notam      `json:"notams"`

	Breakdown *pricing.Breakdown `json:"breakdown"`

	TotalDistanceNM    float64 `json:"total_distance_nm"`
	TotalFlightTimeHr  float64 `json:"total_flight_time_hr"`
	TotalGroundTimeMin int     `json:"total_ground_time_min"`

	RiskScore         float64 `json:"risk_score"`
	OnTimeProbability float64 `json:"on_time_probability"`

	Warnings []string `json:"warnings"`

	// ComputedAt is the only wall-clock-dependent field and is excluded
	// from the deterministic payload.
	ComputedAt time.Time `json:"computed_at"`
}

// Fingerprint serializes the deterministic payload (everything except
// ID and ComputedAt). Re-running a computation with identical inputs
// yields an identical fingerprint.
func (p *RoutePlan) Fingerprint() string {
	shadow := *p
	shadow.ID = ""
	shadow.ComputedAt = time.Time{}
	data, err := json.Marshal(&shadow)
	if err != nil {
		return ""
	}
	return string(data)
}

func (p *RoutePlan) String() string {
	return fmt.Sprintf("RoutePlan(%s, %s, %s, legs=%d)", p.ID, p.AircraftTail, p.Mode, len(p.Legs))
}

// Assembler packages itinerary, environmental report, and breakdown
// into one RoutePlan. Idempotent up to ID and timestamp: the numeric
// payload depends only on the inputs.
type Assembler struct {
	clock shared.Clock
	newID func() string
}

// NewAssembler creates an assembler stamping plans through the clock
func NewAssembler(clock shared.Clock) *Assembler {
	return &Assembler{clock: clock, newID: uuid.NewString}
}

// Assemble builds the final immutable record
func (a *Assembler) Assemble(it *routing.Itinerary, report *weather.Report, breakdown *pricing.Breakdown, mode shared.OptimizationMode) *RoutePlan {
	warnings := append(it.Warnings(), report.Warnings...)

	return &RoutePlan{
		ID:                 a.newID(),
		AircraftTail:       it.Aircraft().Tail,
		Mode:               mode,
		Legs:               it.Legs(),
		Stops:              it.Stops(),
		Weather:            report.Assessments,
		Notams:             report.Notams,
		Breakdown:          breakdown,
		TotalDistanceNM:    it.TotalDistanceNM(),
		TotalFlightTimeHr:  it.TotalFlightTimeHr(),
		TotalGroundTimeMin: it.TotalGroundTimeMin(),
		RiskScore:          report.RiskScore,
		OnTimeProbability:  report.OnTimeProbability,
		Warnings:           warnings,
		ComputedAt:         a.clock.Now(),
	}
}
