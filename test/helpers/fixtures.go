package helpers

import (
	"github.com/aerologix/charterplan/internal/adapters/environment"
	"github.com/aerologix/charterplan/internal/domain/geo"
	"github.com/aerologix/charterplan/internal/domain/planning"
	"github.com/aerologix/charterplan/internal/domain/pricing"
	"github.com/aerologix/charterplan/internal/domain/routing"
	"github.com/aerologix/charterplan/internal/domain/shared"
	"github.com/aerologix/charterplan/internal/domain/weather"
)

// CreateTestAirport builds an airport with fuel and a long runway;
// override fields on the result for specific scenarios
func CreateTestAirport(icao string, lat, lon float64) *geo.Airport {
	return &geo.Airport{
		ICAO:            icao,
		Name:            icao + " Test Field",
		Latitude:        lat,
		Longitude:       lon,
		CountryCode:     "US",
		LongestRunwayFt: 10000,
		HasFuel:         true,
		FuelPricePerGal: 6.00,
		FBOFee:          500,
	}
}

// TestAirports is a realistic transcontinental reference set. The
// KLAX→KJFK corridor has enough intermediate fields that any aircraft
// with at least 500nm usable range can cross it.
func TestAirports() []*geo.Airport {
	return []*geo.Airport{
		{ICAO: "KLAX", Name: "Los Angeles Intl", Latitude: 33.9425, Longitude: -118.4081, CountryCode: "US", LongestRunwayFt: 12091, HasFuel: true, FuelPricePerGal: 6.10, FBOFee: 750},
		{ICAO: "KPHX", Name: "Phoenix Sky Harbor", Latitude: 33.4343, Longitude: -112.0116, CountryCode: "US", LongestRunwayFt: 11489, HasFuel: true, FuelPricePerGal: 5.95, FBOFee: 450},
		{ICAO: "KABQ", Name: "Albuquerque Sunport", Latitude: 35.0402, Longitude: -106.6091, CountryCode: "US", LongestRunwayFt: 13793, HasFuel: true, FuelPricePerGal: 5.70, FBOFee: 350},
		{ICAO: "KDEN", Name: "Denver Intl", Latitude: 39.8617, Longitude: -104.6731, CountryCode: "US", LongestRunwayFt: 16000, HasFuel: true, FuelPricePerGal: 5.80, FBOFee: 600, HasDeicing: true},
		{ICAO: "KICT", Name: "Wichita Eisenhower", Latitude: 37.6499, Longitude: -97.4331, CountryCode: "US", LongestRunwayFt: 10301, HasFuel: true, FuelPricePerGal: 5.50, FBOFee: 400},
		{ICAO: "KSTL", Name: "St Louis Lambert", Latitude: 38.7487, Longitude: -90.3700, CountryCode: "US", LongestRunwayFt: 11019, HasFuel: true, FuelPricePerGal: 5.90, FBOFee: 500},
		{ICAO: "KPIT", Name: "Pittsburgh Intl", Latitude: 40.4915, Longitude: -80.2329, CountryCode: "US", LongestRunwayFt: 11500, HasFuel: true, FuelPricePerGal: 6.00, FBOFee: 550},
		{ICAO: "KJFK", Name: "John F Kennedy Intl", Latitude: 40.6413, Longitude: -73.7781, CountryCode: "US", LongestRunwayFt: 14511, HasFuel: true, FuelPricePerGal: 7.20, FBOFee: 900, HasCustoms: true},
		{ICAO: "KTEB", Name: "Teterboro", Latitude: 40.8501, Longitude: -74.0608, CountryCode: "US", LongestRunwayFt: 7000, HasFuel: true, FuelPricePerGal: 7.50, FBOFee: 1200},
		{ICAO: "CYYZ", Name: "Toronto Pearson", Latitude: 43.6777, Longitude: -79.6248, CountryCode: "CA", LongestRunwayFt: 11120, HasFuel: true, FuelPricePerGal: 7.80, FBOFee: 950, HasCustoms: true, HasDeicing: true},
		{ICAO: "EGGW", Name: "London Luton", Latitude: 51.8747, Longitude: -0.3683, CountryCode: "GB", LongestRunwayFt: 7087, HasFuel: true, FuelPricePerGal: 8.90, FBOFee: 1400, HasCustoms: true, HasDeicing: true},
	}
}

// TestResolver builds a resolver over the realistic airport set
func TestResolver() *geo.Resolver {
	return geo.NewResolver(TestAirports())
}

// CreateTestAircraft builds an aircraft with sensible defaults for the
// given range
func CreateTestAircraft(tail string, category routing.Category, rangeNM float64, homeBase string) *routing.Aircraft {
	return &routing.Aircraft{
		Tail:           tail,
		Category:       category,
		RangeNM:        rangeNM,
		CruiseSpeedKts: 440,
		FuelBurnGPH:    220,
		HomeBase:       homeBase,
		Seats:          8,
	}
}

// TestFleet is a mixed-capability candidate set for selection tests
func TestFleet() []*routing.Aircraft {
	return []*routing.Aircraft{
		{Tail: "N100CP", Category: routing.CategoryLight, RangeNM: 2000, CruiseSpeedKts: 440, FuelBurnGPH: 220, HomeBase: "KLAX", Seats: 7},
		{Tail: "N200CP", Category: routing.CategoryMidsize, RangeNM: 3000, CruiseSpeedKts: 460, FuelBurnGPH: 280, HomeBase: "KTEB", Seats: 8},
		{Tail: "N300CP", Category: routing.CategoryHeavy, RangeNM: 6000, CruiseSpeedKts: 480, FuelBurnGPH: 450, HomeBase: "KTEB", Seats: 14},
		{Tail: "N400CP", Category: routing.CategoryTurboprop, RangeNM: 1200, CruiseSpeedKts: 280, FuelBurnGPH: 110, HomeBase: "KICT", Seats: 8},
	}
}

// TestRoutingConfig mirrors the production defaults
func TestRoutingConfig() routing.Config {
	return routing.Config{
		ReserveFraction:        0.10,
		MaxDetourNM:            250,
		MaxStopsPerLeg:         5,
		TurnaroundMin:          45,
		DefaultFuelPricePerGal: 6.50,
		MinRunwayFt: map[routing.Category]int{
			routing.CategoryTurboprop: 3500,
			routing.CategoryLight:     4000,
			routing.CategoryMidsize:   5000,
			routing.CategorySuperMid:  5500,
			routing.CategoryHeavy:     6000,
			routing.CategoryUltraLong: 6500,
		},
		BalancedCostWeight:   0.5,
		BalancedTimeWeight:   0.5,
		BalancedHourValueUSD: 1500,
	}
}

// TestGateConfig mirrors the production defaults
func TestGateConfig() weather.GateConfig {
	return weather.GateConfig{
		NogoPenalty:     0.35,
		MarginalPenalty: 0.10,
		CriticalPenalty: 0.25,
		CautionPenalty:  0.08,
		RiskWeight:      0.55,
		StopWeight:      0.03,
	}
}

// TestPricingConfig mirrors the production defaults
func TestPricingConfig() pricing.Config {
	return pricing.Config{
		TaxRate:                0.075,
		DefaultFuelPricePerGal: 6.50,
		InternationalScope:     pricing.ScopeItinerary,
		PermitFees:             map[string]float64{"CA": 450, "MX": 600, "BS": 350, "GB": 750, "FR": 800},
		DefaultPermitFee:       500,
		CrewOvernightPerNight:  850,
		CateringPerLeg:         400,
		PeakDays:               []string{"12-24", "12-25", "12-31", "01-01", "07-04", "11-26"},
		PeakSurcharge:          1500,
	}
}

// NewTestOptimizer wires a full planning pipeline over the realistic
// airport set and the given environmental source
func NewTestOptimizer(source weather.Source) *planning.Optimizer {
	if source == nil {
		source = environment.Empty()
	}
	resolver := TestResolver()
	gate := weather.NewGate(source, TestGateConfig())
	engine := pricing.NewEngine(resolver, TestPricingConfig())
	assembler := planning.NewAssembler(shared.NewRealClock())
	return planning.NewOptimizer(resolver, TestRoutingConfig(), gate, engine, assembler)
}
