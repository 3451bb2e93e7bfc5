package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/aerologix/charterplan/internal/application/mediator"
	planningTypes "github.com/aerologix/charterplan/internal/application/planning/types"
	"github.com/aerologix/charterplan/internal/domain/planning"
	"github.com/aerologix/charterplan/internal/domain/routing"
	"github.com/aerologix/charterplan/internal/domain/shared"
)

// Type aliases for convenience
type ComputeRoutePlanCommand = planningTypes.ComputeRoutePlanCommand
type ComputeRoutePlanResponse = planningTypes.ComputeRoutePlanResponse

// ComputeRoutePlanHandler handles plan computation commands
type ComputeRoutePlanHandler struct {
	aircraftRepo planning.AircraftRepository
	planRepo     planning.RoutePlanRepository
	optimizer    *planning.Optimizer
	metrics      planningTypes.Metrics
}

// NewComputeRoutePlanHandler creates a new compute route plan handler
func NewComputeRoutePlanHandler(
	aircraftRepo planning.AircraftRepository,
	planRepo planning.RoutePlanRepository,
	optimizer *planning.Optimizer,
	metrics planningTypes.Metrics,
) *ComputeRoutePlanHandler {
	if metrics == nil {
		metrics = planningTypes.NopMetrics{}
	}
	return &ComputeRoutePlanHandler{
		aircraftRepo: aircraftRepo,
		planRepo:     planRepo,
		optimizer:    optimizer,
		metrics:      metrics,
	}
}

// Handle executes the compute route plan command
func (h *ComputeRoutePlanHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*ComputeRoutePlanCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type %T", request)
	}

	mode, err := shared.ParseMode(cmd.Mode)
	if err != nil {
		return nil, err
	}

	aircraft, legs, err := LoadPlanInputs(ctx, h.aircraftRepo, cmd.AircraftTail, cmd.Legs)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	plan, err := h.optimizer.ComputePlan(ctx, planning.Request{
		Aircraft:          aircraft,
		Legs:              legs,
		Mode:              mode,
		MarginPct:         cmd.Quote.MarginPct,
		CateringRequested: cmd.Quote.CateringRequested,
		International:     cmd.Quote.International,
		FuelPriceOverride: cmd.Quote.FuelPriceOverride,
		StrictAirports:    cmd.StrictAirports,
	})
	elapsed := time.Since(started).Seconds()
	if err != nil {
		h.metrics.ObservePlan(string(mode), string(shared.CodeOf(err)), elapsed, 0)
		return nil, err
	}
	h.metrics.ObservePlan(string(mode), "ok", elapsed, len(plan.Stops))

	if cmd.Persist && h.planRepo != nil {
		if err := h.planRepo.Save(ctx, plan); err != nil {
			return nil, fmt.Errorf("failed to persist plan: %w", err)
		}
	}

	return &ComputeRoutePlanResponse{Plan: plan}, nil
}

// LoadPlanInputs resolves the aircraft and builds validated legs.
// Shared by the planning commands and queries.
func LoadPlanInputs(ctx context.Context, repo planning.AircraftRepository, tail string, inputs []planningTypes.LegInput) (*routing.Aircraft, []*routing.Leg, error) {
	if len(inputs) == 0 {
		return nil, nil, shared.NewValidationError("legs", "cannot be empty")
	}

	aircraft, err := repo.FindByTail(ctx, tail)
	if err != nil {
		return nil, nil, err
	}
	if aircraft == nil {
		return nil, nil, shared.NewAircraftNotFoundError(tail)
	}

	legs, err := BuildLegs(inputs)
	if err != nil {
		return nil, nil, err
	}
	return aircraft, legs, nil
}

// BuildLegs validates raw leg inputs into domain legs
func BuildLegs(inputs []planningTypes.LegInput) ([]*routing.Leg, error) {
	legs := make([]*routing.Leg, 0, len(inputs))
	for _, in := range inputs {
		leg, err := routing.NewLeg(in.From, in.To, in.Departure)
		if err != nil {
			return nil, err
		}
		legs = append(legs, leg)
	}
	return legs, nil
}
