package weather_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerologix/charterplan/internal/adapters/environment"
	"github.com/aerologix/charterplan/internal/domain/weather"
	"github.com/aerologix/charterplan/test/helpers"
)

func assessment(icao string, status weather.Status) *weather.Assessment {
	return &weather.Assessment{ICAO: icao, Status: status, CeilingFt: 2500, VisibilitySM: 6, WindKts: 12}
}

func notam(id, icao string, severity weather.Severity) *weather.Notam {
	return &weather.Notam{ID: id, ICAO: icao, Type: "RWY", Severity: severity, Text: "runway work in progress"}
}

func TestAssess_AllClear(t *testing.T) {
	source := environment.NewSnapshot([]*weather.Assessment{
		assessment("KLAX", weather.StatusGo),
		assessment("KJFK", weather.StatusGo),
	}, nil)
	gate := weather.NewGate(source, helpers.TestGateConfig())

	report := gate.Assess([]string{"KLAX", "KJFK"}, 0)

	assert.Zero(t, report.RiskScore)
	assert.InDelta(t, 1.0, report.OnTimeProbability, 1e-9)
	assert.Len(t, report.Assessments, 2)
	assert.Empty(t, report.Warnings)
}

func TestAssess_AccumulatesPenalties(t *testing.T) {
	// One marginal field plus a caution NOTAM: 0.10 + 0.08
	source := environment.NewSnapshot(
		[]*weather.Assessment{
			assessment("KLAX", weather.StatusGo),
			assessment("KJFK", weather.StatusMarginal),
		},
		[]*weather.Notam{notam("A1001/26", "KJFK", weather.SeverityCaution)},
	)
	gate := weather.NewGate(source, helpers.TestGateConfig())

	report := gate.Assess([]string{"KLAX", "KJFK"}, 1)

	assert.InDelta(t, 0.18, report.RiskScore, 1e-9)
	// 1 - 0.55×0.18 - 0.03×1
	assert.InDelta(t, 1-0.55*0.18-0.03, report.OnTimeProbability, 1e-9)
	require.Len(t, report.Notams, 1)
}

func TestAssess_RiskScoreClampedToOne(t *testing.T) {
	source := environment.NewSnapshot(
		[]*weather.Assessment{
			assessment("KLAX", weather.StatusNogo),
			assessment("KICT", weather.StatusNogo),
			assessment("KJFK", weather.StatusNogo),
		},
		[]*weather.Notam{notam("A1002/26", "KICT", weather.SeverityCritical)},
	)
	gate := weather.NewGate(source, helpers.TestGateConfig())

	report := gate.Assess([]string{"KLAX", "KICT", "KJFK"}, 2)

	assert.Equal(t, 1.0, report.RiskScore)
	assert.GreaterOrEqual(t, report.OnTimeProbability, 0.0)
	assert.LessOrEqual(t, report.OnTimeProbability, 1.0)
}

func TestAssess_MissingDataWarnsInsteadOfFailing(t *testing.T) {
	gate := weather.NewGate(environment.Empty(), helpers.TestGateConfig())

	report := gate.Assess([]string{"KLAX", "KJFK"}, 0)

	assert.Zero(t, report.RiskScore)
	require.Len(t, report.Warnings, 2)
	assert.Contains(t, report.Warnings[0], "KLAX")
	assert.Contains(t, report.Warnings[1], "KJFK")
}

func TestOnTimeProbability_MonotoneInRiskAndStops(t *testing.T) {
	gate := weather.NewGate(environment.Empty(), helpers.TestGateConfig())

	prev := 2.0
	for _, risk := range []float64{0, 0.25, 0.5, 0.75, 1} {
		p := gate.OnTimeProbability(risk, 1)
		assert.Less(t, p, prev)
		prev = p
	}

	prev = 2.0
	for stops := 0; stops <= 5; stops++ {
		p := gate.OnTimeProbability(0.2, stops)
		assert.Less(t, p, prev)
		prev = p
	}
}

func TestOnTimeProbability_InputBounds(t *testing.T) {
	gate := weather.NewGate(environment.Empty(), helpers.TestGateConfig())

	assert.InDelta(t, 1.0, gate.OnTimeProbability(-3, 0), 1e-9)
	assert.Equal(t, 0.0, gate.OnTimeProbability(5, 100))
	assert.InDelta(t, 1.0, gate.OnTimeProbability(0, -2), 1e-9)
}
