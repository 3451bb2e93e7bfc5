package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aerologix/charterplan/internal/application/planning/types"
)

var (
	fleetTails    []string
	fleetLegs     []string
	fleetMargin   float64
	fleetCatering bool
)

// NewFleetCommand ranks candidate aircraft for a trip
func NewFleetCommand() *cobra.Command {
	fleetCmd := &cobra.Command{
		Use:   "fleet",
		Short: "Fleet-wide planning operations",
	}

	selectCmd := &cobra.Command{
		Use:   "select",
		Short: "Rank aircraft by total quoted price for a trip",
		RunE:  runFleetSelect,
	}
	selectCmd.Flags().StringSliceVar(&fleetTails, "aircraft", nil, "candidate tail numbers (all aircraft when omitted)")
	selectCmd.Flags().StringArrayVar(&fleetLegs, "leg", nil, "trip leg as FROM:TO:DEPARTURE (repeatable)")
	selectCmd.Flags().Float64Var(&fleetMargin, "margin", 15, "margin percentage applied to the subtotal")
	selectCmd.Flags().BoolVar(&fleetCatering, "catering", false, "include catering on every leg")

	fleetCmd.AddCommand(selectCmd)
	return fleetCmd
}

func runFleetSelect(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	legs, err := parseLegFlags(fleetLegs)
	if err != nil {
		return err
	}

	response, err := a.med.Send(ctx, &types.SelectAircraftQuery{
		Tails: fleetTails,
		Legs:  legs,
		Quote: types.QuoteInput{MarginPct: fleetMargin, CateringRequested: fleetCatering},
	})
	if err != nil {
		return err
	}

	selection := response.(*types.SelectAircraftResponse).Selection
	for i, candidate := range selection.Ranked {
		fmt.Printf("#%d %s (%s)  total=%s  stops=%d  flight=%.1fh\n",
			i+1, candidate.Aircraft.Tail, candidate.Aircraft.Category,
			candidate.Plan.Breakdown.Total.StringFixed(2),
			len(candidate.Plan.Stops), candidate.Plan.TotalFlightTimeHr)
	}
	for tail, failure := range selection.Failures {
		fmt.Printf("%s excluded: %v\n", tail, failure)
	}
	return nil
}
