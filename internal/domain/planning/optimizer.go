package planning

import (
	"context"
	"sync"

	"github.com/aerologix/charterplan/internal/domain/geo"
	"github.com/aerologix/charterplan/internal/domain/pricing"
	"github.com/aerologix/charterplan/internal/domain/routing"
	"github.com/aerologix/charterplan/internal/domain/shared"
	"github.com/aerologix/charterplan/internal/domain/weather"
)

// Request is one unit of plan computation
type Request struct {
	Aircraft          *routing.Aircraft
	Legs              []*routing.Leg
	Mode              shared.OptimizationMode
	MarginPct         float64
	CateringRequested bool
	International     *bool
	FuelPriceOverride float64

	// StrictAirports fails the computation when a leg endpoint is not
	// in the reference data instead of estimating with fallbacks
	StrictAirports bool
}

// ModeResult is the outcome of one mode's computation in a fan-out
type ModeResult struct {
	Mode shared.OptimizationMode
	Plan *RoutePlan
	Err  error
}

// Optimizer runs expansion, environmental gating, and pricing under a
// given objective mode. Stateless: concurrent computations share no
// mutable state.
type Optimizer struct {
	resolver   *geo.Resolver
	routingCfg routing.Config
	gate       *weather.Gate
	engine     *pricing.Engine
	assembler  *Assembler
}

// NewOptimizer wires the pipeline components together
func NewOptimizer(resolver *geo.Resolver, routingCfg routing.Config, gate *weather.Gate, engine *pricing.Engine, assembler *Assembler) *Optimizer {
	return &Optimizer{
		resolver:   resolver,
		routingCfg: routingCfg,
		gate:       gate,
		engine:     engine,
		assembler:  assembler,
	}
}

// ComputePlan produces one RoutePlan for (aircraft, legs, mode).
// Feasibility and input errors come back as typed results so callers
// can exclude a failing unit without aborting a candidate set.
func (o *Optimizer) ComputePlan(ctx context.Context, req Request) (*RoutePlan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if req.StrictAirports {
		for _, leg := range req.Legs {
			for _, icao := range []string{leg.From, leg.To} {
				if !o.resolver.Known(icao) {
					return nil, shared.NewUnknownAirportError(icao)
				}
			}
		}
	}

	cfg := o.routingCfg
	cfg.FuelPriceOverride = req.FuelPriceOverride

	expander := routing.NewExpander(o.resolver, cfg)
	it, err := expander.Expand(req.Aircraft, req.Legs, req.Mode)
	if err != nil {
		return nil, err
	}

	report := o.gate.Assess(it.Airports(), len(it.Stops()))

	breakdown, err := o.engine.Price(it, pricing.Input{
		MarginPct:         req.MarginPct,
		CateringRequested: req.CateringRequested,
		International:     req.International,
		FuelPriceOverride: req.FuelPriceOverride,
	})
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		// Caller aborted; a partially assembled plan is not a result.
		return nil, err
	}

	return o.assembler.Assemble(it, report, breakdown, req.Mode), nil
}

// ComputeAllModes fans out the three objective modes concurrently and
// collects every result, success or failure, per mode. A failing mode
// does not abort its siblings.
func (o *Optimizer) ComputeAllModes(ctx context.Context, req Request) []ModeResult {
	modes := shared.AllModes()
	results := make([]ModeResult, len(modes))

	var wg sync.WaitGroup
	for i, mode := range modes {
		wg.Add(1)
		go func(i int, mode shared.OptimizationMode) {
			defer wg.Done()
			modeReq := req
			modeReq.Mode = mode
			plan, err := o.ComputePlan(ctx, modeReq)
			results[i] = ModeResult{Mode: mode, Plan: plan, Err: err}
		}(i, mode)
	}
	wg.Wait()

	return results
}
