package weather

import (
	"fmt"

	"github.com/aerologix/charterplan/pkg/utils"
)

// Source supplies pre-fetched environmental data keyed by ICAO.
// Data may be stale or missing; the gate tolerates absence.
type Source interface {
	WeatherFor(icao string) (*Assessment, bool)
	NotamsFor(icao string) []*Notam
}

// GateConfig holds the risk penalty and on-time curve parameters.
// The curve is tunable; monotonicity and [0,1] bounds are the contract.
type GateConfig struct {
	NogoPenalty     float64
	MarginalPenalty float64
	CriticalPenalty float64
	CautionPenalty  float64

	// On-time probability = clamp[0,1](1 - RiskWeight×risk - StopWeight×stops)
	RiskWeight float64
	StopWeight float64
}

// Report is the gate's output for one itinerary
type Report struct {
	Assessments       []*Assessment `json:"assessments"`
	Notams            []*Notam      `json:"notams"`
	RiskScore         float64       `json:"risk_score"`
	OnTimeProbability float64       `json:"on_time_probability"`
	Warnings          []string      `json:"warnings"`
}

// Gate attaches environmental risk to an itinerary's airports
type Gate struct {
	source Source
	cfg    GateConfig
}

// NewGate creates an environmental gate over the given data source
func NewGate(source Source, cfg GateConfig) *Gate {
	return &Gate{source: source, cfg: cfg}
}

// Assess evaluates every airport the itinerary touches and aggregates a
// composite risk score plus an on-time probability. Missing data is
// degraded, not fatal: the airport contributes no penalty and a warning
// is attached instead.
func (g *Gate) Assess(airports []string, stopCount int) *Report {
	report := &Report{}

	penalty := 0.0
	for _, icao := range airports {
		assessment, ok := g.source.WeatherFor(icao)
		if !ok {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("no weather data for %s, treating risk as neutral", icao))
		} else {
			report.Assessments = append(report.Assessments, assessment)
			switch assessment.Status {
			case StatusNogo:
				penalty += g.cfg.NogoPenalty
			case StatusMarginal:
				penalty += g.cfg.MarginalPenalty
			}
		}

		for _, notam := range g.source.NotamsFor(icao) {
			report.Notams = append(report.Notams, notam)
			switch notam.Severity {
			case SeverityCritical:
				penalty += g.cfg.CriticalPenalty
			case SeverityCaution:
				penalty += g.cfg.CautionPenalty
			}
		}
	}

	report.RiskScore = utils.Clamp01(penalty)
	report.OnTimeProbability = g.OnTimeProbability(report.RiskScore, stopCount)
	return report
}

// OnTimeProbability derives schedule reliability from risk and stop
// count. Monotonically non-increasing in both, bounded to [0,1].
func (g *Gate) OnTimeProbability(riskScore float64, stopCount int) float64 {
	risk := utils.Clamp01(riskScore)
	if stopCount < 0 {
		stopCount = 0
	}
	return utils.Clamp01(1 - g.cfg.RiskWeight*risk - g.cfg.StopWeight*float64(stopCount))
}
