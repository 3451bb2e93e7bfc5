package steps

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"github.com/aerologix/charterplan/internal/adapters/persistence"
	"github.com/aerologix/charterplan/internal/application/planning/queries"
	"github.com/aerologix/charterplan/internal/application/planning/types"
	"github.com/aerologix/charterplan/internal/domain/planning"
	"github.com/aerologix/charterplan/internal/domain/shared"
	"github.com/aerologix/charterplan/internal/infrastructure/database"
	"github.com/aerologix/charterplan/test/helpers"
)

type fleetSelectionContext struct {
	aircraftRepo *persistence.GormAircraftRepository
	handler      *queries.SelectAircraftHandler

	selection *planning.Selection
	err       error
}

func (ctx *fleetSelectionContext) reset() {
	ctx.selection = nil
	ctx.err = nil

	db, err := database.NewTestConnection()
	if err != nil {
		panic(fmt.Errorf("failed to open test database: %w", err))
	}

	ctx.aircraftRepo = persistence.NewGormAircraftRepository(db)
	selector := planning.NewFleetSelector(helpers.NewTestOptimizer(nil), 4)
	ctx.handler = queries.NewSelectAircraftHandler(ctx.aircraftRepo, selector)
}

func (ctx *fleetSelectionContext) theStandardTestFleet() error {
	for _, aircraft := range helpers.TestFleet() {
		if err := ctx.aircraftRepo.Save(context.Background(), aircraft); err != nil {
			return err
		}
	}
	return nil
}

func (ctx *fleetSelectionContext) selectFor(tails []string, from, to string) error {
	ctx.selection = nil
	ctx.err = nil

	query := &queries.SelectAircraftQuery{
		Tails: tails,
		Legs: []types.LegInput{
			{From: from, To: to, Departure: scenarioDeparture},
		},
		Quote: types.QuoteInput{MarginPct: 15},
	}

	response, err := ctx.handler.Handle(context.Background(), query)
	if err != nil {
		ctx.err = err
		return nil
	}
	ctx.selection = response.(*queries.SelectAircraftResponse).Selection
	return nil
}

func (ctx *fleetSelectionContext) iSelectAnAircraft(from, to string) error {
	return ctx.selectFor(nil, from, to)
}

func (ctx *fleetSelectionContext) iSelectAmong(tails, from, to string) error {
	return ctx.selectFor(strings.Split(tails, ","), from, to)
}

func (ctx *fleetSelectionContext) requireSelection() error {
	if ctx.err != nil {
		return fmt.Errorf("expected a selection but it failed: %v", ctx.err)
	}
	if ctx.selection == nil {
		return errors.New("expected a selection but none was computed")
	}
	return nil
}

func (ctx *fleetSelectionContext) candidatesShouldBeRanked(count int) error {
	if err := ctx.requireSelection(); err != nil {
		return err
	}
	if len(ctx.selection.Ranked) != count {
		return fmt.Errorf("expected %d ranked candidates, got %d", count, len(ctx.selection.Ranked))
	}
	return nil
}

func (ctx *fleetSelectionContext) rankedCandidatesShouldBeOrderedByTotal() error {
	if err := ctx.requireSelection(); err != nil {
		return err
	}
	for i := 1; i < len(ctx.selection.Ranked); i++ {
		prev := ctx.selection.Ranked[i-1].Plan.Breakdown.Total
		cur := ctx.selection.Ranked[i].Plan.Breakdown.Total
		if prev.GreaterThan(cur) {
			return fmt.Errorf("ranking not cheapest first: %s before %s", prev, cur)
		}
	}
	return nil
}

func (ctx *fleetSelectionContext) theBestCandidateShouldBe(tail string) error {
	if err := ctx.requireSelection(); err != nil {
		return err
	}
	best := ctx.selection.Best()
	if best == nil {
		return errors.New("no best candidate in selection")
	}
	if best.Aircraft.Tail != tail {
		return fmt.Errorf("expected best candidate %s, got %s", tail, best.Aircraft.Tail)
	}
	return nil
}

func (ctx *fleetSelectionContext) candidatesShouldBeExcludedWithCode(count int, code string) error {
	if err := ctx.requireSelection(); err != nil {
		return err
	}
	if len(ctx.selection.Failures) != count {
		return fmt.Errorf("expected %d excluded candidates, got %d", count, len(ctx.selection.Failures))
	}
	for tail, failure := range ctx.selection.Failures {
		if got := string(shared.CodeOf(failure)); got != code {
			return fmt.Errorf("expected %s excluded with %s, got %s", tail, code, got)
		}
	}
	return nil
}

func (ctx *fleetSelectionContext) selectionShouldFailWithCode(code string) error {
	if ctx.err == nil {
		return fmt.Errorf("expected selection to fail with %s but it succeeded", code)
	}
	if got := string(shared.CodeOf(ctx.err)); got != code {
		return fmt.Errorf("expected error code %s, got %s (%v)", code, got, ctx.err)
	}
	return nil
}

func InitializeFleetSelectionScenario(sc *godog.ScenarioContext) {
	fleetCtx := &fleetSelectionContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		fleetCtx.reset()
		return ctx, nil
	})

	sc.Step(`^the standard test fleet$`, fleetCtx.theStandardTestFleet)
	sc.Step(`^I select an aircraft for a trip from "([^"]*)" to "([^"]*)"$`, fleetCtx.iSelectAnAircraft)
	sc.Step(`^I select among "([^"]*)" for a trip from "([^"]*)" to "([^"]*)"$`, fleetCtx.iSelectAmong)
	sc.Step(`^(\d+) candidates? should be ranked$`, fleetCtx.candidatesShouldBeRanked)
	sc.Step(`^the ranked candidates should be ordered by total cheapest first$`, fleetCtx.rankedCandidatesShouldBeOrderedByTotal)
	sc.Step(`^the best candidate should be "([^"]*)"$`, fleetCtx.theBestCandidateShouldBe)
	sc.Step(`^(\d+) candidates? should be excluded with code "([^"]*)"$`, fleetCtx.candidatesShouldBeExcludedWithCode)
	sc.Step(`^selection should fail with code "([^"]*)"$`, fleetCtx.selectionShouldFailWithCode)
}
