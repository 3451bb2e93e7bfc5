package planning

import (
	"context"
	"sort"
	"sync"

	"github.com/aerologix/charterplan/internal/domain/routing"
	"github.com/aerologix/charterplan/internal/domain/shared"
	"github.com/aerologix/charterplan/pkg/utils"
)

// CandidateResult pairs an aircraft with its balanced-mode plan
type CandidateResult struct {
	Aircraft *routing.Aircraft
	Plan     *RoutePlan
}

// Selection is the ranked outcome of a fleet selection run
type Selection struct {
	// Ranked candidates, cheapest balanced-mode total first
	Ranked []*CandidateResult

	// Failures by tail number; a NO_ROUTE here excluded the candidate
	// without failing the selection
	Failures map[string]error
}

// Best returns the top-ranked candidate
func (s *Selection) Best() *CandidateResult {
	if len(s.Ranked) == 0 {
		return nil
	}
	return s.Ranked[0]
}

// FleetSelector ranks candidate aircraft for a trip by their
// balanced-mode plan cost. Candidate computations are independent and
// run on a bounded worker pool.
type FleetSelector struct {
	optimizer  *Optimizer
	maxWorkers int
}

// NewFleetSelector creates a selector with the given fan-out cap
func NewFleetSelector(optimizer *Optimizer, maxWorkers int) *FleetSelector {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &FleetSelector{optimizer: optimizer, maxWorkers: maxWorkers}
}

// Select computes the balanced plan per candidate and ranks by total
// cost. A candidate failing with NO_ROUTE is excluded, not fatal; the
// selection fails with NO_CANDIDATE only when every candidate fails.
func (f *FleetSelector) Select(ctx context.Context, candidates []*routing.Aircraft, req Request) (*Selection, error) {
	if len(candidates) == 0 {
		return nil, shared.NewValidationError("candidates", "cannot be empty")
	}

	type outcome struct {
		aircraft *routing.Aircraft
		plan     *RoutePlan
		err      error
	}

	workers := utils.Min(f.maxWorkers, len(candidates))

	sem := make(chan struct{}, workers)
	outcomes := make([]outcome, len(candidates))

	var wg sync.WaitGroup
	for i, aircraft := range candidates {
		wg.Add(1)
		go func(i int, aircraft *routing.Aircraft) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			candidateReq := req
			candidateReq.Aircraft = aircraft
			candidateReq.Mode = shared.ModeBalanced
			plan, err := f.optimizer.ComputePlan(ctx, candidateReq)
			outcomes[i] = outcome{aircraft: aircraft, plan: plan, err: err}
		}(i, aircraft)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	selection := &Selection{Failures: make(map[string]error)}
	for _, out := range outcomes {
		if out.err != nil {
			selection.Failures[out.aircraft.Tail] = out.err
			continue
		}
		selection.Ranked = append(selection.Ranked, &CandidateResult{Aircraft: out.aircraft, Plan: out.plan})
	}

	if len(selection.Ranked) == 0 {
		return nil, shared.NewNoCandidateError(selection.Failures)
	}

	// Cheapest first; tail number breaks ties deterministically
	sort.SliceStable(selection.Ranked, func(i, j int) bool {
		ti := selection.Ranked[i].Plan.Breakdown.Total
		tj := selection.Ranked[j].Plan.Breakdown.Total
		if !ti.Equal(tj) {
			return ti.LessThan(tj)
		}
		return selection.Ranked[i].Aircraft.Tail < selection.Ranked[j].Aircraft.Tail
	})

	return selection, nil
}
