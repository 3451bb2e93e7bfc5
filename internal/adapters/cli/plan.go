package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aerologix/charterplan/internal/application/planning/types"
)

var (
	planTail     string
	planMode     string
	planLegs     []string
	planMargin   float64
	planCatering bool
	planIntl     string
	planFuel     float64
	planPersist  bool
	planStrict   bool
)

// NewPlanCommand computes and prints a route plan with a quote
func NewPlanCommand() *cobra.Command {
	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute a route plan and quote for one aircraft",
		RunE:  runPlan,
	}

	planCmd.PersistentFlags().StringVar(&planTail, "aircraft", "", "aircraft tail number (required)")
	planCmd.PersistentFlags().StringArrayVar(&planLegs, "leg", nil, "trip leg as FROM:TO:DEPARTURE (repeatable)")
	planCmd.PersistentFlags().Float64Var(&planMargin, "margin", 15, "margin percentage applied to the subtotal")
	planCmd.PersistentFlags().BoolVar(&planCatering, "catering", false, "include catering on every leg")
	planCmd.PersistentFlags().StringVar(&planIntl, "international", "", "force international handling on or off (auto when unset)")
	planCmd.PersistentFlags().Float64Var(&planFuel, "fuel-price", 0, "override fuel price per gallon at every airport")
	_ = planCmd.MarkPersistentFlagRequired("aircraft")

	planCmd.Flags().StringVar(&planMode, "mode", "balanced", "optimization mode: cost, time, or balanced")
	planCmd.Flags().BoolVar(&planPersist, "save", false, "persist the plan snapshot")
	planCmd.Flags().BoolVar(&planStrict, "strict-airports", false, "fail with UNKNOWN_AIRPORT instead of estimating unknown leg endpoints")

	planCmd.AddCommand(newPlanCompareCommand())
	planCmd.AddCommand(newPlanHistoryCommand())
	return planCmd
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	legs, err := parseLegFlags(planLegs)
	if err != nil {
		return err
	}
	quote, err := buildQuoteInput()
	if err != nil {
		return err
	}

	response, err := a.med.Send(ctx, &types.ComputeRoutePlanCommand{
		AircraftTail:   planTail,
		Legs:           legs,
		Mode:           planMode,
		Quote:          quote,
		StrictAirports: planStrict,
		Persist:        planPersist,
	})
	if err != nil {
		return err
	}

	printPlan(response.(*types.ComputeRoutePlanResponse).Plan)
	return nil
}

func newPlanCompareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Compute all three optimization modes and rank them",
		RunE:  runPlanCompare,
	}
}

func runPlanCompare(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	legs, err := parseLegFlags(planLegs)
	if err != nil {
		return err
	}
	quote, err := buildQuoteInput()
	if err != nil {
		return err
	}

	response, err := a.med.Send(ctx, &types.CompareModesQuery{
		AircraftTail: planTail,
		Legs:         legs,
		Quote:        quote,
	})
	if err != nil {
		return err
	}

	comparison := response.(*types.CompareModesResponse)
	for i, ranked := range comparison.Ranked {
		fmt.Printf("#%d (%s)\n", i+1, ranked.Label)
		printPlan(ranked.Plan)
	}
	for mode, failure := range comparison.Failures {
		fmt.Printf("mode %s failed: %v\n", mode, failure)
	}
	if comparison.Recommended != nil {
		fmt.Printf("Recommended: %s mode, total %s\n",
			comparison.Recommended.Mode, comparison.Recommended.Breakdown.Total.StringFixed(2))
	}
	return nil
}

func newPlanHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List stored plan snapshots for an aircraft, newest first",
		RunE:  runPlanHistory,
	}
}

func runPlanHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	plans, err := a.planRepo.ListByTail(ctx, planTail)
	if err != nil {
		return err
	}
	if len(plans) == 0 {
		fmt.Printf("no stored plans for %s\n", planTail)
		return nil
	}
	for _, plan := range plans {
		fmt.Printf("%s  %s  %s mode  %d legs  total %s  computed %s\n",
			plan.ID, plan.AircraftTail, plan.Mode, len(plan.Legs),
			plan.Breakdown.Total.StringFixed(2),
			plan.ComputedAt.Format(time.RFC3339))
	}
	return nil
}

func buildQuoteInput() (types.QuoteInput, error) {
	quote := types.QuoteInput{
		MarginPct:         planMargin,
		CateringRequested: planCatering,
		FuelPriceOverride: planFuel,
	}
	switch planIntl {
	case "":
	case "on":
		force := true
		quote.International = &force
	case "off":
		force := false
		quote.International = &force
	default:
		return quote, fmt.Errorf("invalid --international value %q, expected on or off", planIntl)
	}
	return quote, nil
}
