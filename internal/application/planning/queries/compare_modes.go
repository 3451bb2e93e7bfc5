package queries

import (
	"context"
	"fmt"
	"sort"

	"github.com/aerologix/charterplan/internal/application/mediator"
	"github.com/aerologix/charterplan/internal/application/planning/commands"
	planningTypes "github.com/aerologix/charterplan/internal/application/planning/types"
	"github.com/aerologix/charterplan/internal/domain/planning"
	"github.com/aerologix/charterplan/internal/domain/shared"
)

// Type aliases for convenience
type CompareModesQuery = planningTypes.CompareModesQuery
type CompareModesResponse = planningTypes.CompareModesResponse

// CompareModesHandler computes all three optimization modes for one
// aircraft and ranks them for a human or automated chooser
type CompareModesHandler struct {
	aircraftRepo planning.AircraftRepository
	optimizer    *planning.Optimizer
}

// NewCompareModesHandler creates a new compare modes handler
func NewCompareModesHandler(aircraftRepo planning.AircraftRepository, optimizer *planning.Optimizer) *CompareModesHandler {
	return &CompareModesHandler{aircraftRepo: aircraftRepo, optimizer: optimizer}
}

// Handle executes the compare modes query
func (h *CompareModesHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*CompareModesQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type %T", request)
	}

	aircraft, legs, err := commands.LoadPlanInputs(ctx, h.aircraftRepo, query.AircraftTail, query.Legs)
	if err != nil {
		return nil, err
	}

	results := h.optimizer.ComputeAllModes(ctx, planning.Request{
		Aircraft:          aircraft,
		Legs:              legs,
		MarginPct:         query.Quote.MarginPct,
		CateringRequested: query.Quote.CateringRequested,
		International:     query.Quote.International,
		FuelPriceOverride: query.Quote.FuelPriceOverride,
	})

	resp := &CompareModesResponse{Failures: make(map[string]error)}
	var plans []*planning.RoutePlan
	for _, res := range results {
		if res.Err != nil {
			resp.Failures[string(res.Mode)] = res.Err
			continue
		}
		plans = append(plans, res.Plan)
	}
	if len(plans) == 0 {
		return nil, shared.NewNoCandidateError(resp.Failures)
	}

	// Cheapest first; mode name breaks exact-total ties deterministically
	sort.SliceStable(plans, func(i, j int) bool {
		ti, tj := plans[i].Breakdown.Total, plans[j].Breakdown.Total
		if !ti.Equal(tj) {
			return ti.LessThan(tj)
		}
		return plans[i].Mode < plans[j].Mode
	})

	for _, plan := range plans {
		resp.Ranked = append(resp.Ranked, planningTypes.RankedMode{
			Plan:  plan,
			Label: labelFor(plan, plans),
		})
		if plan.Mode == shared.ModeBalanced {
			resp.Recommended = plan
		}
	}
	if resp.Recommended == nil {
		resp.Recommended = plans[0]
	}

	return resp, nil
}

// labelFor names the plan's standout property within the comparison set
func labelFor(plan *planning.RoutePlan, all []*planning.RoutePlan) string {
	cheapest, fastest := true, true
	planTime := plan.TotalFlightTimeHr + float64(plan.TotalGroundTimeMin)/60
	for _, other := range all {
		if other == plan {
			continue
		}
		if other.Breakdown.Total.LessThan(plan.Breakdown.Total) {
			cheapest = false
		}
		otherTime := other.TotalFlightTimeHr + float64(other.TotalGroundTimeMin)/60
		if otherTime < planTime {
			fastest = false
		}
	}
	switch {
	case cheapest && fastest:
		return "cheapest and fastest"
	case cheapest:
		return "cheapest"
	case fastest:
		return "fastest"
	default:
		return "balanced tradeoff"
	}
}
