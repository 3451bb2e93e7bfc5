package queries

import (
	"context"
	"fmt"

	"github.com/aerologix/charterplan/internal/application/mediator"
	"github.com/aerologix/charterplan/internal/application/planning/commands"
	planningTypes "github.com/aerologix/charterplan/internal/application/planning/types"
	"github.com/aerologix/charterplan/internal/domain/planning"
	"github.com/aerologix/charterplan/internal/domain/routing"
	"github.com/aerologix/charterplan/internal/domain/shared"
)

// Type aliases for convenience
type SelectAircraftQuery = planningTypes.SelectAircraftQuery
type SelectAircraftResponse = planningTypes.SelectAircraftResponse

// SelectAircraftHandler ranks candidate aircraft for a trip by their
// balanced-mode plan cost
type SelectAircraftHandler struct {
	aircraftRepo planning.AircraftRepository
	selector     *planning.FleetSelector
}

// NewSelectAircraftHandler creates a new select aircraft handler
func NewSelectAircraftHandler(aircraftRepo planning.AircraftRepository, selector *planning.FleetSelector) *SelectAircraftHandler {
	return &SelectAircraftHandler{aircraftRepo: aircraftRepo, selector: selector}
}

// Handle executes the select aircraft query
func (h *SelectAircraftHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*SelectAircraftQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type %T", request)
	}

	legs, err := commands.BuildLegs(query.Legs)
	if err != nil {
		return nil, err
	}

	candidates, err := h.loadCandidates(ctx, query.Tails)
	if err != nil {
		return nil, err
	}

	selection, err := h.selector.Select(ctx, candidates, planning.Request{
		Legs:              legs,
		MarginPct:         query.Quote.MarginPct,
		CateringRequested: query.Quote.CateringRequested,
		International:     query.Quote.International,
		FuelPriceOverride: query.Quote.FuelPriceOverride,
	})
	if err != nil {
		return nil, err
	}

	return &SelectAircraftResponse{Selection: selection}, nil
}

func (h *SelectAircraftHandler) loadCandidates(ctx context.Context, tails []string) ([]*routing.Aircraft, error) {
	if len(tails) == 0 {
		return h.aircraftRepo.ListAll(ctx)
	}
	candidates := make([]*routing.Aircraft, 0, len(tails))
	for _, tail := range tails {
		aircraft, err := h.aircraftRepo.FindByTail(ctx, tail)
		if err != nil {
			return nil, err
		}
		if aircraft == nil {
			return nil, shared.NewAircraftNotFoundError(tail)
		}
		candidates = append(candidates, aircraft)
	}
	return candidates, nil
}
