package planning

import (
	"context"

	"github.com/aerologix/charterplan/internal/domain/geo"
	"github.com/aerologix/charterplan/internal/domain/routing"
)

// AirportRepository is read-only airport reference data access
type AirportRepository interface {
	FindByICAO(ctx context.Context, icao string) (*geo.Airport, error)
	ListAll(ctx context.Context) ([]*geo.Airport, error)
	Save(ctx context.Context, airport *geo.Airport) error
}

// AircraftRepository is read-only aircraft reference data access
type AircraftRepository interface {
	FindByTail(ctx context.Context, tail string) (*routing.Aircraft, error)
	ListAll(ctx context.Context) ([]*routing.Aircraft, error)
	Save(ctx context.Context, aircraft *routing.Aircraft) error
}

// RoutePlanRepository is an append-only store of assembled plans.
// Persisted plans are immutable historical facts; re-pricing diffs a
// stored plan against a fresh computation, it never updates one.
type RoutePlanRepository interface {
	Save(ctx context.Context, plan *RoutePlan) error
	FindByID(ctx context.Context, id string) (*RoutePlan, error)
	ListByTail(ctx context.Context, tail string) ([]*RoutePlan, error)
}
