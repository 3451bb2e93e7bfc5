package routing

import (
	"fmt"

	"github.com/aerologix/charterplan/internal/domain/geo"
	"github.com/aerologix/charterplan/internal/domain/shared"
)

// Config holds the routing constant tables. Injected, never embedded as
// literals, so test suites can override them at boundary conditions.
type Config struct {
	// Fraction of nominal range held back as fuel reserve
	ReserveFraction float64

	// Maximum added distance a refuel stop may cost over the direct path
	MaxDetourNM float64

	// Maximum refuel stops inserted into a single user leg
	MaxStopsPerLeg int

	// Ground time charged per refuel stop
	TurnaroundMin int

	// Fuel price used when an airport publishes none
	DefaultFuelPricePerGal float64

	// Caller-supplied price override; 0 means no override
	FuelPriceOverride float64

	// Minimum runway length per aircraft category
	MinRunwayFt map[Category]int

	// Balanced-mode stop scoring: dollar weight, time weight, and the
	// dollar value of one flight hour used to bring time into cost units
	BalancedCostWeight   float64
	BalancedTimeWeight   float64
	BalancedHourValueUSD float64
}

// Expander turns an ordered list of user legs into a flyable itinerary,
// inserting refuel stops where aircraft range is insufficient.
type Expander struct {
	resolver *geo.Resolver
	cfg      Config
}

// NewExpander creates an expander over the given airport reference data
func NewExpander(resolver *geo.Resolver, cfg Config) *Expander {
	return &Expander{resolver: resolver, cfg: cfg}
}

// Expand produces an itinerary in which no leg exceeds usable range.
// Fails with a NO_ROUTE error when some leg cannot be subdivided within
// the configured search bounds; that failure is terminal for this
// aircraft and surfaced to the caller, never silently relaxed.
func (e *Expander) Expand(aircraft *Aircraft, legs []*Leg, mode shared.OptimizationMode) (*Itinerary, error) {
	if aircraft == nil {
		return nil, shared.NewValidationError("aircraft", "cannot be nil")
	}
	if len(legs) == 0 {
		return nil, shared.NewValidationError("legs", "cannot be empty")
	}

	usable := aircraft.UsableRangeNM(e.cfg.ReserveFraction)

	var (
		routeLegs []*RouteLeg
		stops     []*RefuelStop
		warnings  []string
	)
	for _, leg := range legs {
		for _, icao := range []string{leg.From, leg.To} {
			if !e.resolver.Known(icao) {
				warnings = append(warnings,
					fmt.Sprintf("airport %s unknown, using fallback distance %.0fnm", icao, geo.FallbackDistanceNM))
			}
		}

		segLegs, segStops, err := e.expandSegment(aircraft, leg, leg.From, leg.To, usable, mode, 0)
		if err != nil {
			return nil, err
		}
		routeLegs = append(routeLegs, segLegs...)
		stops = append(stops, segStops...)
	}

	return NewItinerary(aircraft, usable, routeLegs, stops, warnings)
}

// expandSegment recursively subdivides from→to until every piece fits
// within usable range. depth counts stops already inserted for the
// originating user leg.
func (e *Expander) expandSegment(aircraft *Aircraft, origin *Leg, from, to string, usable float64, mode shared.OptimizationMode, depth int) ([]*RouteLeg, []*RefuelStop, error) {
	direct := e.resolver.Distance(from, to)
	if direct <= usable {
		return []*RouteLeg{e.newRouteLeg(aircraft, origin, from, to, direct, depth > 0)}, nil, nil
	}

	if depth >= e.cfg.MaxStopsPerLeg {
		return nil, nil, shared.NewNoRouteError(from, to, direct-usable)
	}

	best, runnerUp := e.selectStop(aircraft, from, to, direct, usable, mode)
	if best == nil {
		return nil, nil, shared.NewNoRouteError(from, to, direct-usable)
	}

	inbound := e.newRouteLeg(aircraft, origin, from, best.ICAO, e.resolver.Distance(from, best.ICAO), depth > 0)

	remainderLegs, remainderStops, err := e.expandSegment(aircraft, origin, best.ICAO, to, usable, mode, depth+1)
	if err != nil {
		return nil, nil, err
	}
	// Mark the outbound continuation as induced by this stop
	remainderLegs[0].FuelStopSegment = true

	reason := fmt.Sprintf("range-insufficiency: %s → %s is %.0fnm, usable range %.0fnm", from, to, direct, usable)
	if runnerUp != "" {
		reason += fmt.Sprintf("; chosen over %s", runnerUp)
	}

	stop := &RefuelStop{
		ICAO:          best.ICAO,
		DetourNM:      inbound.DistanceNM + e.resolver.Distance(best.ICAO, to) - direct,
		UpliftGal:     remainderLegs[0].FuelGal,
		FuelCostUSD:   remainderLegs[0].FuelGal * e.fuelPriceAt(best),
		FBOFeeUSD:     best.FBOFee,
		GroundTimeMin: e.cfg.TurnaroundMin,
		Customs:       best.HasCustoms,
		Deicing:       best.HasDeicing,
		Reason:        reason,
	}

	legs := append([]*RouteLeg{inbound}, remainderLegs...)
	stops := append([]*RefuelStop{stop}, remainderStops...)
	return legs, stops, nil
}

// selectStop searches airports within the bounded lateral detour of the
// great-circle path, filtered to fields with fuel and adequate runway.
// Returns the best candidate per the mode's objective plus the ICAO of
// the runner-up for diagnostics. Iteration over ICAO-sorted airports
// with a strict comparison makes ties deterministic.
func (e *Expander) selectStop(aircraft *Aircraft, from, to string, direct, usable float64, mode shared.OptimizationMode) (*geo.Airport, string) {
	minRunway := e.cfg.MinRunwayFt[aircraft.Category]

	var (
		best      *geo.Airport
		bestScore float64
		runnerUp  string
	)
	for _, cand := range e.resolver.Airports() {
		if cand.ICAO == from || cand.ICAO == to {
			continue
		}
		if !cand.HasFuel || cand.LongestRunwayFt < minRunway {
			continue
		}
		inbound := e.resolver.Distance(from, cand.ICAO)
		outbound := e.resolver.Distance(cand.ICAO, to)
		if inbound > usable {
			continue
		}
		// Forward progress: the stop must bring the destination closer,
		// or recursion could oscillate between the same pair of fields.
		if outbound >= direct {
			continue
		}
		detour := inbound + outbound - direct
		if detour > e.cfg.MaxDetourNM {
			continue
		}

		score := e.stopScore(aircraft, cand, detour, mode)
		if best == nil || score < bestScore {
			if best != nil {
				runnerUp = best.ICAO
			}
			best = cand
			bestScore = score
		}
	}
	return best, runnerUp
}

// stopScore is the per-mode objective for one candidate stop
func (e *Expander) stopScore(aircraft *Aircraft, cand *geo.Airport, detourNM float64, mode shared.OptimizationMode) float64 {
	detourHr := aircraft.FlightTimeHr(detourNM)
	detourCost := aircraft.FuelGal(detourHr)*e.fuelPriceAt(cand) + cand.FBOFee
	detourTime := detourHr + float64(e.cfg.TurnaroundMin)/60

	switch mode {
	case shared.ModeCost:
		return detourCost
	case shared.ModeTime:
		return detourTime
	default:
		return e.cfg.BalancedCostWeight*detourCost +
			e.cfg.BalancedTimeWeight*detourTime*e.cfg.BalancedHourValueUSD
	}
}

func (e *Expander) newRouteLeg(aircraft *Aircraft, origin *Leg, from, to string, distanceNM float64, induced bool) *RouteLeg {
	flightHr := aircraft.FlightTimeHr(distanceNM)
	fuelGal := aircraft.FuelGal(flightHr)

	price := e.cfg.DefaultFuelPricePerGal
	if ap, ok := e.resolver.Airport(from); ok {
		price = e.fuelPriceAt(ap)
	} else if e.cfg.FuelPriceOverride > 0 {
		price = e.cfg.FuelPriceOverride
	}

	return &RouteLeg{
		From:            from,
		To:              to,
		Departure:       origin.Departure,
		DistanceNM:      distanceNM,
		FlightTimeHr:    flightHr,
		FuelGal:         fuelGal,
		FuelCostUSD:     fuelGal * price,
		FuelStopSegment: induced,
	}
}

// fuelPriceAt resolves the price per gallon for an airport:
// caller override, then local published price, then the global default.
func (e *Expander) fuelPriceAt(ap *geo.Airport) float64 {
	if e.cfg.FuelPriceOverride > 0 {
		return e.cfg.FuelPriceOverride
	}
	if ap != nil && ap.FuelPricePerGal > 0 {
		return ap.FuelPricePerGal
	}
	return e.cfg.DefaultFuelPricePerGal
}
