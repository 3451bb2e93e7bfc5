package routing

import (
	"fmt"
)

// Itinerary is the flyable expansion of an ordered list of user legs.
//
// Invariants, enforced at construction:
// - Consecutive legs of one trip segment form a connected path
// - No leg's distance exceeds the aircraft's usable range
// - Subdivided legs account for the full origin→destination geometry
//   (the original endpoints appear, in order, in the leg chain)
type Itinerary struct {
	aircraft      *Aircraft
	usableRangeNM float64
	legs          []*RouteLeg
	stops         []*RefuelStop
	warnings      []string
}

// NewItinerary creates an itinerary with invariant validation
func NewItinerary(aircraft *Aircraft, usableRangeNM float64, legs []*RouteLeg, stops []*RefuelStop, warnings []string) (*Itinerary, error) {
	it := &Itinerary{
		aircraft:      aircraft,
		usableRangeNM: usableRangeNM,
		legs:          legs,
		stops:         stops,
		warnings:      warnings,
	}
	if err := it.validate(); err != nil {
		return nil, err
	}
	return it, nil
}

func (it *Itinerary) validate() error {
	if len(it.legs) == 0 {
		return fmt.Errorf("itinerary has no legs")
	}
	stopSet := make(map[string]bool, len(it.stops))
	for _, s := range it.stops {
		stopSet[s.ICAO] = true
	}
	for i, leg := range it.legs {
		if leg.DistanceNM > it.usableRangeNM {
			return fmt.Errorf("leg %s → %s distance %.0fnm exceeds usable range %.0fnm",
				leg.From, leg.To, leg.DistanceNM, it.usableRangeNM)
		}
		// A fuel-stop-induced leg must connect to its predecessor through
		// an inserted stop; trip boundaries between user legs may jump.
		if i > 0 && leg.FuelStopSegment && it.legs[i-1].To != leg.From {
			return fmt.Errorf("legs not connected at fuel stop: %s → %s", it.legs[i-1].To, leg.From)
		}
		if leg.FuelStopSegment && !stopSet[leg.From] && !stopSet[leg.To] {
			return fmt.Errorf("fuel-stop segment %s → %s has no matching refuel stop", leg.From, leg.To)
		}
	}
	return nil
}

// Accessors return copies so callers cannot mutate the aggregate.

func (it *Itinerary) Aircraft() *Aircraft { return it.aircraft }

func (it *Itinerary) UsableRangeNM() float64 { return it.usableRangeNM }

func (it *Itinerary) Legs() []*RouteLeg {
	legs := make([]*RouteLeg, len(it.legs))
	copy(legs, it.legs)
	return legs
}

func (it *Itinerary) Stops() []*RefuelStop {
	stops := make([]*RefuelStop, len(it.stops))
	copy(stops, it.stops)
	return stops
}

func (it *Itinerary) Warnings() []string {
	warnings := make([]string, len(it.warnings))
	copy(warnings, it.warnings)
	return warnings
}

// Airports returns every ICAO the itinerary touches, in flight order,
// deduplicated. The environmental gate assesses exactly this set.
func (it *Itinerary) Airports() []string {
	seen := make(map[string]bool)
	var order []string
	add := func(icao string) {
		if !seen[icao] {
			seen[icao] = true
			order = append(order, icao)
		}
	}
	for _, leg := range it.legs {
		add(leg.From)
		add(leg.To)
	}
	return order
}

// TotalDistanceNM sums leg distances
func (it *Itinerary) TotalDistanceNM() float64 {
	total := 0.0
	for _, leg := range it.legs {
		total += leg.DistanceNM
	}
	return total
}

// TotalFlightTimeHr sums en-route hours
func (it *Itinerary) TotalFlightTimeHr() float64 {
	total := 0.0
	for _, leg := range it.legs {
		total += leg.FlightTimeHr
	}
	return total
}

// TotalGroundTimeMin sums ground minutes at refuel stops
func (it *Itinerary) TotalGroundTimeMin() int {
	total := 0
	for _, s := range it.stops {
		total += s.GroundTimeMin
	}
	return total
}

// TotalFuelCostUSD sums leg fuel cost
func (it *Itinerary) TotalFuelCostUSD() float64 {
	total := 0.0
	for _, leg := range it.legs {
		total += leg.FuelCostUSD
	}
	return total
}

func (it *Itinerary) String() string {
	return fmt.Sprintf("Itinerary(%s, legs=%d, stops=%d)", it.aircraft.Tail, len(it.legs), len(it.stops))
}
