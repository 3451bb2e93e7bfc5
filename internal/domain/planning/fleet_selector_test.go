package planning_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerologix/charterplan/internal/domain/planning"
	"github.com/aerologix/charterplan/internal/domain/routing"
	"github.com/aerologix/charterplan/internal/domain/shared"
	"github.com/aerologix/charterplan/test/helpers"
)

func selectorRequest(t *testing.T, from, to string) planning.Request {
	t.Helper()
	leg, err := routing.NewLeg(from, to, testDeparture)
	require.NoError(t, err)
	return planning.Request{Legs: []*routing.Leg{leg}, MarginPct: 15}
}

func TestSelect_RanksCheapestFirst(t *testing.T) {
	selector := planning.NewFleetSelector(helpers.NewTestOptimizer(nil), 4)

	// Every fixture aircraft can fly KLAX → KDEN directly
	selection, err := selector.Select(context.Background(), helpers.TestFleet(), selectorRequest(t, "KLAX", "KDEN"))

	require.NoError(t, err)
	assert.Empty(t, selection.Failures)
	require.Len(t, selection.Ranked, 4)

	for i := 1; i < len(selection.Ranked); i++ {
		prev := selection.Ranked[i-1].Plan.Breakdown.Total
		curr := selection.Ranked[i].Plan.Breakdown.Total
		assert.True(t, prev.LessThanOrEqual(curr),
			"ranking not cheapest-first: %s before %s", prev, curr)
	}
	assert.Equal(t, selection.Ranked[0], selection.Best())
}

func TestSelect_ExcludesInfeasibleCandidates(t *testing.T) {
	selector := planning.NewFleetSelector(helpers.NewTestOptimizer(nil), 4)

	// Only the heavy has transatlantic legs; the rest fail on range
	selection, err := selector.Select(context.Background(), helpers.TestFleet(), selectorRequest(t, "KJFK", "EGGW"))

	require.NoError(t, err)
	require.Len(t, selection.Ranked, 1)
	assert.Equal(t, "N300CP", selection.Best().Aircraft.Tail)

	require.Len(t, selection.Failures, 3)
	for tail, failure := range selection.Failures {
		assert.Equal(t, shared.ErrCodeNoRoute, shared.CodeOf(failure), "tail %s", tail)
	}
}

func TestSelect_NoCandidateWhenAllFail(t *testing.T) {
	selector := planning.NewFleetSelector(helpers.NewTestOptimizer(nil), 4)
	smallFleet := helpers.TestFleet()[:2] // light and midsize only

	_, err := selector.Select(context.Background(), smallFleet, selectorRequest(t, "KJFK", "EGGW"))

	require.Error(t, err)
	assert.Equal(t, shared.ErrCodeNoCandidate, shared.CodeOf(err))
	noCandidate, ok := err.(*shared.NoCandidateError)
	require.True(t, ok)
	assert.Len(t, noCandidate.Failures, 2)
}

func TestSelect_EmptyCandidateSetRejected(t *testing.T) {
	selector := planning.NewFleetSelector(helpers.NewTestOptimizer(nil), 4)

	_, err := selector.Select(context.Background(), nil, selectorRequest(t, "KLAX", "KDEN"))

	assert.Equal(t, shared.ErrCodeInvalidInput, shared.CodeOf(err))
}

func TestSelect_DeterministicUnderConcurrency(t *testing.T) {
	// Worker pool sizes must not change the ranking
	req := selectorRequest(t, "KLAX", "KJFK")

	var baseline []string
	for _, workers := range []int{1, 2, 8} {
		selector := planning.NewFleetSelector(helpers.NewTestOptimizer(nil), workers)
		selection, err := selector.Select(context.Background(), helpers.TestFleet(), req)
		require.NoError(t, err)

		tails := make([]string, len(selection.Ranked))
		for i, c := range selection.Ranked {
			tails[i] = c.Aircraft.Tail
		}
		if baseline == nil {
			baseline = tails
		} else {
			assert.Equal(t, baseline, tails)
		}
	}
}

func TestSelect_RespectsCancelledContext(t *testing.T) {
	selector := planning.NewFleetSelector(helpers.NewTestOptimizer(nil), 4)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := selector.Select(ctx, helpers.TestFleet(), selectorRequest(t, "KLAX", "KDEN"))

	assert.ErrorIs(t, err, context.Canceled)
}
