package routing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerologix/charterplan/internal/domain/routing"
	"github.com/aerologix/charterplan/test/helpers"
)

func routeLeg(from, to string, distanceNM float64, induced bool) *routing.RouteLeg {
	return &routing.RouteLeg{
		From:            from,
		To:              to,
		Departure:       testDeparture,
		DistanceNM:      distanceNM,
		FlightTimeHr:    distanceNM / 440,
		FuelGal:         distanceNM / 2,
		FuelCostUSD:     distanceNM * 3,
		FuelStopSegment: induced,
	}
}

func TestNewItinerary_RejectsOverRangeLeg(t *testing.T) {
	aircraft := helpers.CreateTestAircraft("N100CP", routing.CategoryLight, 2000, "KLAX")

	_, err := routing.NewItinerary(aircraft, 1800,
		[]*routing.RouteLeg{routeLeg("KLAX", "KJFK", 2145, false)}, nil, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "usable range")
}

func TestNewItinerary_RejectsDisconnectedFuelStopLeg(t *testing.T) {
	aircraft := helpers.CreateTestAircraft("N100CP", routing.CategoryLight, 2000, "KLAX")
	stops := []*routing.RefuelStop{{ICAO: "KICT", GroundTimeMin: 45}}

	_, err := routing.NewItinerary(aircraft, 1800, []*routing.RouteLeg{
		routeLeg("KLAX", "KICT", 1043, false),
		routeLeg("KDEN", "KJFK", 1392, true),
	}, stops, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not connected")
}

func TestNewItinerary_RejectsFuelStopLegWithoutStop(t *testing.T) {
	aircraft := helpers.CreateTestAircraft("N100CP", routing.CategoryLight, 2000, "KLAX")

	_, err := routing.NewItinerary(aircraft, 1800, []*routing.RouteLeg{
		routeLeg("KLAX", "KICT", 1043, false),
		routeLeg("KICT", "KJFK", 1120, true),
	}, nil, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no matching refuel stop")
}

func TestItinerary_TotalsAndAirports(t *testing.T) {
	aircraft := helpers.CreateTestAircraft("N100CP", routing.CategoryLight, 2000, "KLAX")
	stops := []*routing.RefuelStop{{ICAO: "KICT", GroundTimeMin: 45, FBOFeeUSD: 400}}

	it, err := routing.NewItinerary(aircraft, 1800, []*routing.RouteLeg{
		routeLeg("KLAX", "KICT", 1043, false),
		routeLeg("KICT", "KJFK", 1120, true),
	}, stops, nil)
	require.NoError(t, err)

	assert.InDelta(t, 2163, it.TotalDistanceNM(), 1e-9)
	assert.InDelta(t, 2163.0/440, it.TotalFlightTimeHr(), 1e-9)
	assert.Equal(t, 45, it.TotalGroundTimeMin())
	assert.InDelta(t, 2163*3, it.TotalFuelCostUSD(), 1e-9)
	assert.Equal(t, []string{"KLAX", "KICT", "KJFK"}, it.Airports())
}

func TestItinerary_AccessorsReturnCopies(t *testing.T) {
	aircraft := helpers.CreateTestAircraft("N100CP", routing.CategoryLight, 2000, "KLAX")

	it, err := routing.NewItinerary(aircraft, 1800,
		[]*routing.RouteLeg{routeLeg("KLAX", "KICT", 1043, false)}, nil, nil)
	require.NoError(t, err)

	legs := it.Legs()
	legs[0] = routeLeg("KJFK", "KLAX", 100, false)

	assert.Equal(t, "KLAX", it.Legs()[0].From)
}
