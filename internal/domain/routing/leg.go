package routing

import (
	"fmt"
	"time"

	"github.com/aerologix/charterplan/internal/domain/shared"
)

// Leg is a user-specified segment of the trip, the unit the expander consumes
type Leg struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Departure time.Time `json:"departure"`
}

// NewLeg creates a leg with ICAO validation
func NewLeg(from, to string, departure time.Time) (*Leg, error) {
	f, err := shared.NewICAO(from)
	if err != nil {
		return nil, err
	}
	t, err := shared.NewICAO(to)
	if err != nil {
		return nil, err
	}
	if f == t {
		return nil, shared.NewValidationError("to", "leg origin and destination are identical")
	}
	return &Leg{From: f, To: t, Departure: departure}, nil
}

// RouteLeg is a flyable segment. It may be a subdivision of a user Leg
// when a fuel stop was inserted; FuelStopSegment marks those.
type RouteLeg struct {
	From            string    `json:"from"`
	To              string    `json:"to"`
	Departure       time.Time `json:"departure"`
	DistanceNM      float64   `json:"distance_nm"`
	FlightTimeHr    float64   `json:"flight_time_hr"`
	FuelGal         float64   `json:"fuel_gal"`
	FuelCostUSD     float64   `json:"fuel_cost_usd"`
	FuelStopSegment bool      `json:"fuel_stop_segment"`
}

func (l *RouteLeg) String() string {
	induced := ""
	if l.FuelStopSegment {
		induced = " [FUEL STOP]"
	}
	return fmt.Sprintf("%s → %s (%.0fnm, %.1fh)%s", l.From, l.To, l.DistanceNM, l.FlightTimeHr, induced)
}

// RefuelStop is an airport inserted solely to extend reachable distance
type RefuelStop struct {
	ICAO          string  `json:"icao"`
	DetourNM      float64 `json:"detour_nm"`
	UpliftGal     float64 `json:"uplift_gal"`
	FuelCostUSD   float64 `json:"fuel_cost_usd"`
	FBOFeeUSD     float64 `json:"fbo_fee_usd"`
	GroundTimeMin int     `json:"ground_time_min"`
	Customs       bool    `json:"customs"`
	Deicing       bool    `json:"deicing"`
	Reason        string  `json:"reason"`
}

func (s *RefuelStop) String() string {
	return fmt.Sprintf("RefuelStop(%s, +%.0fnm, %dmin)", s.ICAO, s.DetourNM, s.GroundTimeMin)
}
