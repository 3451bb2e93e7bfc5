package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerologix/charterplan/internal/adapters/persistence"
	"github.com/aerologix/charterplan/internal/domain/planning"
	"github.com/aerologix/charterplan/internal/domain/routing"
	"github.com/aerologix/charterplan/internal/domain/shared"
	"github.com/aerologix/charterplan/test/helpers"
)

func computePlan(t *testing.T) *planning.RoutePlan {
	t.Helper()
	leg, err := routing.NewLeg("KLAX", "KJFK", time.Date(2026, 9, 12, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	plan, err := helpers.NewTestOptimizer(nil).ComputePlan(context.Background(), planning.Request{
		Aircraft:  helpers.CreateTestAircraft("N100CP", routing.CategoryLight, 2000, "KLAX"),
		Legs:      []*routing.Leg{leg},
		Mode:      shared.ModeBalanced,
		MarginPct: 15,
	})
	require.NoError(t, err)
	return plan
}

func TestRoutePlanRepository_SaveAndFind(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormRoutePlanRepository(db)
	plan := computePlan(t)

	// Act
	require.NoError(t, repo.Save(context.Background(), plan))

	// Assert: the snapshot round-trips with its deterministic payload intact
	found, err := repo.FindByID(context.Background(), plan.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, plan.ID, found.ID)
	assert.Equal(t, plan.AircraftTail, found.AircraftTail)
	assert.Equal(t, plan.Mode, found.Mode)
	assert.True(t, plan.Breakdown.Total.Equal(found.Breakdown.Total))
	assert.Equal(t, plan.Fingerprint(), found.Fingerprint())
}

func TestRoutePlanRepository_AppendOnly(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormRoutePlanRepository(db)
	plan := computePlan(t)

	require.NoError(t, repo.Save(context.Background(), plan))

	// A second insert under the same ID must fail, not overwrite
	err := repo.Save(context.Background(), plan)
	assert.Error(t, err)
}

func TestRoutePlanRepository_FindMissingReturnsNil(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormRoutePlanRepository(db)

	found, err := repo.FindByID(context.Background(), "nonexistent")

	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestRoutePlanRepository_ListByTailNewestFirst(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormRoutePlanRepository(db)

	older := computePlan(t)
	older.ComputedAt = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	newer := computePlan(t)
	newer.ComputedAt = time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(context.Background(), older))
	require.NoError(t, repo.Save(context.Background(), newer))

	plans, err := repo.ListByTail(context.Background(), "N100CP")

	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, newer.ID, plans[0].ID)
	assert.Equal(t, older.ID, plans[1].ID)

	none, err := repo.ListByTail(context.Background(), "N999ZZ")
	require.NoError(t, err)
	assert.Empty(t, none)
}
