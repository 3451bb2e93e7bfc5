package pricing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerologix/charterplan/internal/domain/pricing"
	"github.com/aerologix/charterplan/internal/domain/routing"
	"github.com/aerologix/charterplan/test/helpers"
)

var offPeakDeparture = time.Date(2026, 9, 12, 9, 0, 0, 0, time.UTC)

func legAt(from, to string, distanceNM float64, departure time.Time, induced bool) *routing.RouteLeg {
	return &routing.RouteLeg{
		From:            from,
		To:              to,
		Departure:       departure,
		DistanceNM:      distanceNM,
		FlightTimeHr:    distanceNM / 440,
		FuelGal:         distanceNM / 2,
		FuelStopSegment: induced,
	}
}

// crossCountry is KLAX → KICT → KJFK with the stop at KICT, flown by
// an aircraft based at KLAX
func crossCountry(t *testing.T) *routing.Itinerary {
	t.Helper()
	aircraft := helpers.CreateTestAircraft("N100CP", routing.CategoryLight, 2000, "KLAX")
	stops := []*routing.RefuelStop{{ICAO: "KICT", GroundTimeMin: 45, FBOFeeUSD: 400}}

	it, err := routing.NewItinerary(aircraft, 1800, []*routing.RouteLeg{
		legAt("KLAX", "KICT", 1043, offPeakDeparture, false),
		legAt("KICT", "KJFK", 1120, offPeakDeparture, true),
	}, stops, nil)
	require.NoError(t, err)
	return it
}

func newEngine(cfg pricing.Config) *pricing.Engine {
	return pricing.NewEngine(helpers.TestResolver(), cfg)
}

func TestPrice_MoneyIdentitiesHoldExactly(t *testing.T) {
	engine := newEngine(helpers.TestPricingConfig())

	b, err := engine.Price(crossCountry(t), pricing.Input{MarginPct: 15, CateringRequested: true})
	require.NoError(t, err)

	// Subtotal re-adds the itemization with no drift
	assert.True(t, b.Subtotal.Equal(b.ItemizedSum()),
		"subtotal %s != itemized %s", b.Subtotal, b.ItemizedSum())

	// Margin and tax recompute from their stated bases
	expectedMargin := b.Subtotal.Mul(decimal.NewFromInt(15)).Div(decimal.NewFromInt(100)).Round(2)
	assert.True(t, b.MarginAmount.Equal(expectedMargin))
	expectedTax := b.Subtotal.Add(b.MarginAmount).Mul(b.TaxRate).Round(2)
	assert.True(t, b.Tax.Equal(expectedTax))

	// The headline number is the exact sum, never a re-rounding
	assert.True(t, b.Total.Equal(b.Subtotal.Add(b.MarginAmount).Add(b.Tax)),
		"total %s != %s + %s + %s", b.Total, b.Subtotal, b.MarginAmount, b.Tax)
}

func TestPrice_FuelPricedAtDepartureField(t *testing.T) {
	engine := newEngine(helpers.TestPricingConfig())

	b, err := engine.Price(crossCountry(t), pricing.Input{MarginPct: 15})
	require.NoError(t, err)

	// 521.5gal at KLAX's 6.10 plus 560gal at KICT's 5.50
	expected := decimal.NewFromFloat(1043.0 / 2 * 6.10).Round(2).
		Add(decimal.NewFromFloat(1120.0 / 2 * 5.50).Round(2))
	assert.True(t, b.FuelCost.Equal(expected), "fuel %s != %s", b.FuelCost, expected)
}

func TestPrice_FuelOverrideReplacesAllFieldPrices(t *testing.T) {
	engine := newEngine(helpers.TestPricingConfig())

	b, err := engine.Price(crossCountry(t), pricing.Input{MarginPct: 15, FuelPriceOverride: 5.00})
	require.NoError(t, err)

	expected := decimal.NewFromFloat(1043.0 / 2 * 5.00).Round(2).
		Add(decimal.NewFromFloat(1120.0 / 2 * 5.00).Round(2))
	assert.True(t, b.FuelCost.Equal(expected))
}

func TestPrice_HigherMarginRaisesTotal(t *testing.T) {
	engine := newEngine(helpers.TestPricingConfig())
	it := crossCountry(t)

	low, err := engine.Price(it, pricing.Input{MarginPct: 15})
	require.NoError(t, err)
	high, err := engine.Price(it, pricing.Input{MarginPct: 20})
	require.NoError(t, err)

	assert.True(t, low.Subtotal.Equal(high.Subtotal))
	assert.True(t, high.MarginAmount.GreaterThan(low.MarginAmount))
	assert.True(t, high.Total.GreaterThan(low.Total))
}

func TestPrice_RejectsNegativeInputs(t *testing.T) {
	engine := newEngine(helpers.TestPricingConfig())
	it := crossCountry(t)

	_, err := engine.Price(it, pricing.Input{MarginPct: -1})
	assert.Error(t, err)

	_, err = engine.Price(it, pricing.Input{MarginPct: 15, FuelPriceOverride: -2})
	assert.Error(t, err)

	badTax := helpers.TestPricingConfig()
	badTax.TaxRate = -0.075
	_, err = newEngine(badTax).Price(it, pricing.Input{MarginPct: 15})
	assert.Error(t, err)
}

func TestPrice_FBOFeesBillEveryTouchedAirport(t *testing.T) {
	engine := newEngine(helpers.TestPricingConfig())

	b, err := engine.Price(crossCountry(t), pricing.Input{MarginPct: 15})
	require.NoError(t, err)

	// KLAX 750 + KICT 400 + KJFK 900
	assert.True(t, b.FBOFees.Equal(decimal.NewFromInt(2050)), "fbo %s", b.FBOFees)
}

func TestPrice_FBOFeesStopsOnlyConvention(t *testing.T) {
	cfg := helpers.TestPricingConfig()
	cfg.FBOStopsOnly = true
	engine := newEngine(cfg)

	b, err := engine.Price(crossCountry(t), pricing.Input{MarginPct: 15})
	require.NoError(t, err)

	assert.True(t, b.FBOFees.Equal(decimal.NewFromInt(400)))
}

func TestPrice_NoRepositioningFromHomeBase(t *testing.T) {
	engine := newEngine(helpers.TestPricingConfig())

	b, err := engine.Price(crossCountry(t), pricing.Input{MarginPct: 15})
	require.NoError(t, err)

	assert.True(t, b.RepositioningCost.IsZero())
	assert.Zero(t, b.RepositioningHours)
}

func TestPrice_RepositioningWhenAwayFromHome(t *testing.T) {
	engine := newEngine(helpers.TestPricingConfig())
	aircraft := helpers.CreateTestAircraft("N200CP", routing.CategoryMidsize, 3000, "KTEB")

	it, err := routing.NewItinerary(aircraft, 2700,
		[]*routing.RouteLeg{legAt("KLAX", "KDEN", 749, offPeakDeparture, false)}, nil, nil)
	require.NoError(t, err)

	b, err := engine.Price(it, pricing.Input{MarginPct: 15})
	require.NoError(t, err)

	assert.True(t, b.RepositioningCost.GreaterThan(decimal.Zero))
	assert.Greater(t, b.RepositioningHours, 4.0)
}

func TestPrice_PermitFeeOncePerForeignCountry(t *testing.T) {
	engine := newEngine(helpers.TestPricingConfig())
	aircraft := helpers.CreateTestAircraft("N200CP", routing.CategoryMidsize, 3000, "KTEB")

	it, err := routing.NewItinerary(aircraft, 2700, []*routing.RouteLeg{
		legAt("KTEB", "CYYZ", 310, offPeakDeparture, false),
		legAt("CYYZ", "KTEB", 310, offPeakDeparture, false),
	}, nil, nil)
	require.NoError(t, err)

	b, err := engine.Price(it, pricing.Input{MarginPct: 15})
	require.NoError(t, err)

	// Canada billed once for the round trip
	assert.True(t, b.PermitFees.Equal(decimal.NewFromInt(450)), "permits %s", b.PermitFees)
}

func TestPrice_PermitFeesLegwiseScope(t *testing.T) {
	cfg := helpers.TestPricingConfig()
	cfg.InternationalScope = pricing.ScopeLegwise
	engine := newEngine(cfg)
	aircraft := helpers.CreateTestAircraft("N200CP", routing.CategoryMidsize, 3000, "KTEB")

	it, err := routing.NewItinerary(aircraft, 2700, []*routing.RouteLeg{
		legAt("KTEB", "CYYZ", 310, offPeakDeparture, false),
		legAt("CYYZ", "KTEB", 310, offPeakDeparture, false),
	}, nil, nil)
	require.NoError(t, err)

	b, err := engine.Price(it, pricing.Input{MarginPct: 15})
	require.NoError(t, err)

	// Each crossing bills the destination country: CA 450, then the US
	// rate falls back to the default 500
	assert.True(t, b.PermitFees.Equal(decimal.NewFromInt(950)))
}

func TestPrice_InternationalForcedOff(t *testing.T) {
	engine := newEngine(helpers.TestPricingConfig())
	aircraft := helpers.CreateTestAircraft("N200CP", routing.CategoryMidsize, 3000, "KTEB")

	it, err := routing.NewItinerary(aircraft, 2700,
		[]*routing.RouteLeg{legAt("KTEB", "CYYZ", 310, offPeakDeparture, false)}, nil, nil)
	require.NoError(t, err)

	off := false
	b, err := engine.Price(it, pricing.Input{MarginPct: 15, International: &off})
	require.NoError(t, err)

	assert.True(t, b.PermitFees.IsZero())
}

func TestPrice_InternationalForcedOnDomesticTrip(t *testing.T) {
	engine := newEngine(helpers.TestPricingConfig())

	on := true
	b, err := engine.Price(crossCountry(t), pricing.Input{MarginPct: 15, International: &on})
	require.NoError(t, err)

	// Nothing foreign touched, so the forced flag bills the default fee
	assert.True(t, b.PermitFees.Equal(decimal.NewFromInt(500)))
}

func TestPrice_CrewOvernightRules(t *testing.T) {
	engine := newEngine(helpers.TestPricingConfig())
	aircraft := helpers.CreateTestAircraft("N100CP", routing.CategoryLight, 2000, "KLAX")
	day2 := offPeakDeparture.Add(24 * time.Hour)
	day3 := offPeakDeparture.Add(48 * time.Hour)

	tests := []struct {
		name   string
		legs   []*routing.RouteLeg
		nights int64
	}{
		{
			"same day out and back",
			[]*routing.RouteLeg{
				legAt("KLAX", "KPHX", 318, offPeakDeparture, false),
				legAt("KPHX", "KLAX", 318, offPeakDeparture, false),
			},
			0,
		},
		{
			"same day ending away from home",
			[]*routing.RouteLeg{legAt("KLAX", "KPHX", 318, offPeakDeparture, false)},
			1,
		},
		{
			"two day round trip",
			[]*routing.RouteLeg{
				legAt("KLAX", "KPHX", 318, offPeakDeparture, false),
				legAt("KPHX", "KLAX", 318, day2, false),
			},
			1,
		},
		{
			"three day tour",
			[]*routing.RouteLeg{
				legAt("KLAX", "KPHX", 318, offPeakDeparture, false),
				legAt("KPHX", "KDEN", 520, day2, false),
				legAt("KDEN", "KLAX", 749, day3, false),
			},
			2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, err := routing.NewItinerary(aircraft, 1800, tt.legs, nil, nil)
			require.NoError(t, err)

			b, err := engine.Price(it, pricing.Input{MarginPct: 15})
			require.NoError(t, err)

			expected := decimal.NewFromInt(tt.nights * 850)
			assert.True(t, b.CrewOvernight.Equal(expected),
				"overnight %s != %s", b.CrewOvernight, expected)
		})
	}
}

func TestPrice_PeakSurchargeOncePerPeakDay(t *testing.T) {
	engine := newEngine(helpers.TestPricingConfig())
	aircraft := helpers.CreateTestAircraft("N100CP", routing.CategoryLight, 2000, "KLAX")
	christmasEve := time.Date(2026, 12, 24, 8, 0, 0, 0, time.UTC)
	christmas := time.Date(2026, 12, 25, 8, 0, 0, 0, time.UTC)

	it, err := routing.NewItinerary(aircraft, 1800, []*routing.RouteLeg{
		legAt("KLAX", "KPHX", 318, christmasEve, false),
		legAt("KPHX", "KDEN", 520, christmas, false),
		legAt("KDEN", "KICT", 450, christmas, false),
	}, nil, nil)
	require.NoError(t, err)

	b, err := engine.Price(it, pricing.Input{MarginPct: 15})
	require.NoError(t, err)

	// Two distinct peak days, the repeated one billed once
	assert.True(t, b.PeakSurcharge.Equal(decimal.NewFromInt(3000)))
}

func TestPrice_PeakSurchargeMatchesUTCCalendarDay(t *testing.T) {
	engine := newEngine(helpers.TestPricingConfig())
	aircraft := helpers.CreateTestAircraft("N100CP", routing.CategoryLight, 2000, "KLAX")
	pacific := time.FixedZone("UTC-8", -8*3600)
	// 22:00 local on the 23rd is already December 24th in UTC
	departure := time.Date(2026, 12, 23, 22, 0, 0, 0, pacific)

	it, err := routing.NewItinerary(aircraft, 1800, []*routing.RouteLeg{
		legAt("KLAX", "KPHX", 318, departure, false),
	}, nil, nil)
	require.NoError(t, err)

	b, err := engine.Price(it, pricing.Input{MarginPct: 15})
	require.NoError(t, err)

	// Same UTC day the overnight rule already uses
	assert.True(t, b.PeakSurcharge.Equal(decimal.NewFromInt(1500)))
}

func TestPrice_CateringPerLegWhenRequested(t *testing.T) {
	engine := newEngine(helpers.TestPricingConfig())
	it := crossCountry(t)

	with, err := engine.Price(it, pricing.Input{MarginPct: 15, CateringRequested: true})
	require.NoError(t, err)
	without, err := engine.Price(it, pricing.Input{MarginPct: 15})
	require.NoError(t, err)

	assert.True(t, with.Catering.Equal(decimal.NewFromInt(800)))
	assert.True(t, without.Catering.IsZero())
	require.Len(t, with.Legs, 2)
	assert.True(t, with.Legs[0].Catering.Equal(decimal.NewFromInt(400)))
}

func TestPrice_DeterministicToTheCent(t *testing.T) {
	engine := newEngine(helpers.TestPricingConfig())
	it := crossCountry(t)
	input := pricing.Input{MarginPct: 17.5, CateringRequested: true}

	first, err := engine.Price(it, input)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		next, err := engine.Price(it, input)
		require.NoError(t, err)
		assert.True(t, first.Total.Equal(next.Total))
		assert.True(t, first.Subtotal.Equal(next.Subtotal))
	}
}
