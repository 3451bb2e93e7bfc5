package pricing

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/aerologix/charterplan/internal/domain/geo"
	"github.com/aerologix/charterplan/internal/domain/routing"
	"github.com/aerologix/charterplan/internal/domain/shared"
)

// InternationalScope selects how permit fees are accounted
type InternationalScope string

const (
	// ScopeItinerary charges once per foreign jurisdiction touched
	ScopeItinerary InternationalScope = "itinerary"
	// ScopeLegwise charges per leg that crosses a border
	ScopeLegwise InternationalScope = "legwise"
)

// Config holds the pricing constant tables. Injected configuration,
// not embedded literals.
type Config struct {
	TaxRate                float64
	DefaultFuelPricePerGal float64

	// FBOStopsOnly limits FBO fees to inserted refuel stops; by default
	// every touched airport (origin and destination included) bills once
	FBOStopsOnly bool

	InternationalScope InternationalScope
	PermitFees         map[string]float64 // country code → fee
	DefaultPermitFee   float64

	CrewOvernightPerNight float64
	CateringPerLeg        float64

	PeakDays      []string // "MM-DD" recurring calendar days
	PeakSurcharge float64
}

// Input carries the caller's quotation parameters
type Input struct {
	MarginPct         float64
	CateringRequested bool

	// International forces permit accounting on or off; nil derives it
	// from airport jurisdictions per the configured scope.
	International *bool

	// FuelPriceOverride replaces all per-airport pricing when positive
	FuelPriceOverride float64
}

// Engine converts a flyable itinerary into a full cost breakdown.
// Pure function of its inputs: identical itineraries always price to
// identical cents.
type Engine struct {
	resolver *geo.Resolver
	cfg      Config
}

// NewEngine creates a cost engine over the given airport reference data
func NewEngine(resolver *geo.Resolver, cfg Config) *Engine {
	return &Engine{resolver: resolver, cfg: cfg}
}

// Price produces the breakdown for an itinerary. Negative derived
// inputs are rejected, never clamped.
func (e *Engine) Price(it *routing.Itinerary, input Input) (*Breakdown, error) {
	if it == nil || len(it.Legs()) == 0 {
		return nil, shared.NewValidationError("itinerary", "cannot be empty")
	}
	if input.MarginPct < 0 {
		return nil, shared.NewValidationError("margin_pct", "cannot be negative")
	}
	if input.FuelPriceOverride < 0 {
		return nil, shared.NewValidationError("fuel_price_override", "cannot be negative")
	}
	if e.cfg.TaxRate < 0 {
		return nil, shared.NewValidationError("tax_rate", "cannot be negative")
	}

	legs := it.Legs()
	stops := it.Stops()
	aircraft := it.Aircraft()

	b := &Breakdown{
		MarginPct: decimal.NewFromFloat(input.MarginPct),
		TaxRate:   decimal.NewFromFloat(e.cfg.TaxRate),
	}

	// Fuel: per-leg burn priced at the departure field (or override)
	for _, leg := range legs {
		fuel, err := e.legFuelCost(leg, input.FuelPriceOverride)
		if err != nil {
			return nil, err
		}
		catering := decimal.Zero
		if input.CateringRequested {
			catering = cents(e.cfg.CateringPerLeg)
		}
		b.FuelCost = b.FuelCost.Add(fuel)
		b.Catering = b.Catering.Add(catering)
		b.Legs = append(b.Legs, LegItem{
			From:         leg.From,
			To:           leg.To,
			DistanceNM:   leg.DistanceNM,
			FlightTimeHr: leg.FlightTimeHr,
			FuelCost:     fuel,
			Catering:     catering,
		})
	}

	b.FBOFees = e.fboFees(it, stops)
	b.RepositioningCost, b.RepositioningHours = e.repositioning(aircraft, legs[0], input.FuelPriceOverride)
	b.PermitFees = e.permitFees(it, aircraft, input.International)
	b.CrewOvernight = e.crewOvernight(aircraft, legs)
	b.PeakSurcharge = e.peakSurcharge(legs)

	b.Subtotal = b.ItemizedSum()
	b.MarginAmount = b.Subtotal.Mul(b.MarginPct).Div(decimal.NewFromInt(100)).Round(2)
	b.Tax = b.Subtotal.Add(b.MarginAmount).Mul(b.TaxRate).Round(2)
	b.Total = b.Subtotal.Add(b.MarginAmount).Add(b.Tax)

	return b, nil
}

func (e *Engine) legFuelCost(leg *routing.RouteLeg, override float64) (decimal.Decimal, error) {
	price := e.fuelPriceAt(leg.From, override)
	if price < 0 {
		return decimal.Zero, shared.NewValidationError("fuel_price", fmt.Sprintf("negative fuel price at %s", leg.From))
	}
	return cents(leg.FuelGal * price), nil
}

// fboFees sums handling per airport. Default convention: every touched
// airport bills once, origin and destination included; stops-only mode
// bills inserted refuel stops alone.
func (e *Engine) fboFees(it *routing.Itinerary, stops []*routing.RefuelStop) decimal.Decimal {
	total := decimal.Zero
	if e.cfg.FBOStopsOnly {
		for _, stop := range stops {
			total = total.Add(cents(stop.FBOFeeUSD))
		}
		return total
	}
	for _, icao := range it.Airports() {
		if ap, ok := e.resolver.Airport(icao); ok {
			total = total.Add(cents(ap.FBOFee))
		}
	}
	return total
}

// repositioning prices the extra one-way leg from home base to the
// itinerary's first departure point, when they differ.
func (e *Engine) repositioning(aircraft *routing.Aircraft, first *routing.RouteLeg, override float64) (decimal.Decimal, float64) {
	if aircraft.HomeBase == first.From {
		return decimal.Zero, 0
	}
	dist := e.resolver.Distance(aircraft.HomeBase, first.From)
	hours := aircraft.FlightTimeHr(dist)
	cost := aircraft.FuelGal(hours) * e.fuelPriceAt(aircraft.HomeBase, override)
	return cents(cost), hours
}

// permitFees charges by jurisdiction. Itinerary scope bills each
// distinct foreign country once; legwise scope bills each border
// crossing at the destination country's rate.
func (e *Engine) permitFees(it *routing.Itinerary, aircraft *routing.Aircraft, force *bool) decimal.Decimal {
	if force != nil && !*force {
		return decimal.Zero
	}

	home := e.countryOf(aircraft.HomeBase)
	if home == "" {
		home = e.countryOf(it.Legs()[0].From)
	}

	total := decimal.Zero
	switch e.cfg.InternationalScope {
	case ScopeLegwise:
		for _, leg := range it.Legs() {
			from, to := e.countryOf(leg.From), e.countryOf(leg.To)
			if from != "" && to != "" && from != to {
				total = total.Add(cents(e.permitFeeFor(to)))
			}
		}
	default:
		foreign := make(map[string]bool)
		for _, icao := range it.Airports() {
			if c := e.countryOf(icao); c != "" && c != home {
				foreign[c] = true
			}
		}
		countries := make([]string, 0, len(foreign))
		for c := range foreign {
			countries = append(countries, c)
		}
		sort.Strings(countries)
		for _, c := range countries {
			total = total.Add(cents(e.permitFeeFor(c)))
		}
	}

	if total.IsZero() && force != nil && *force {
		total = cents(e.cfg.DefaultPermitFee)
	}
	return total
}

// crewOvernight applies when the itinerary spans more than one calendar
// day, or ends away from home base overnight.
func (e *Engine) crewOvernight(aircraft *routing.Aircraft, legs []*routing.RouteLeg) decimal.Decimal {
	days := make(map[string]bool)
	for _, leg := range legs {
		days[leg.Departure.UTC().Format("2006-01-02")] = true
	}
	nights := len(days) - 1
	if nights == 0 && legs[len(legs)-1].To != aircraft.HomeBase {
		nights = 1
	}
	return cents(e.cfg.CrewOvernightPerNight * float64(nights))
}

// peakSurcharge bills once per distinct high-demand calendar day flown
func (e *Engine) peakSurcharge(legs []*routing.RouteLeg) decimal.Decimal {
	peak := make(map[string]bool, len(e.cfg.PeakDays))
	for _, d := range e.cfg.PeakDays {
		peak[d] = true
	}
	charged := make(map[string]bool)
	total := decimal.Zero
	for _, leg := range legs {
		day := leg.Departure.UTC().Format("01-02")
		if peak[day] && !charged[day] {
			charged[day] = true
			total = total.Add(cents(e.cfg.PeakSurcharge))
		}
	}
	return total
}

func (e *Engine) permitFeeFor(country string) float64 {
	if fee, ok := e.cfg.PermitFees[country]; ok {
		return fee
	}
	return e.cfg.DefaultPermitFee
}

func (e *Engine) countryOf(icao string) string {
	if ap, ok := e.resolver.Airport(icao); ok {
		return ap.CountryCode
	}
	return ""
}

func (e *Engine) fuelPriceAt(icao string, override float64) float64 {
	if override > 0 {
		return override
	}
	if ap, ok := e.resolver.Airport(icao); ok && ap.FuelPricePerGal > 0 {
		return ap.FuelPricePerGal
	}
	return e.cfg.DefaultFuelPricePerGal
}

// cents converts a float dollar amount to a decimal rounded to cents
func cents(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}
