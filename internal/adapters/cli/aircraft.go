package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aerologix/charterplan/internal/domain/routing"
)

// NewAircraftCommand manages fleet reference data
func NewAircraftCommand() *cobra.Command {
	aircraftCmd := &cobra.Command{
		Use:   "aircraft",
		Short: "Fleet reference data operations",
	}

	importCmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import or update aircraft from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE:  runAircraftImport,
	}

	aircraftCmd.AddCommand(importCmd)
	return aircraftCmd
}

// CSV columns: tail,category,range_nm,cruise_kts,burn_gph,home_base,seats
func runAircraftImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	file, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = 7
	reader.TrimLeadingSpace = true

	imported := 0
	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if line == 1 && strings.EqualFold(record[0], "tail") {
			continue
		}

		aircraft, err := aircraftFromRecord(record)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if err := a.aircraftRepo.Save(ctx, aircraft); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		imported++
	}

	fmt.Printf("Imported %d aircraft\n", imported)
	return nil
}

func aircraftFromRecord(record []string) (*routing.Aircraft, error) {
	category, err := routing.ParseCategory(record[1])
	if err != nil {
		return nil, err
	}
	rangeNM, err := strconv.ParseFloat(record[2], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid range %q", record[2])
	}
	cruise, err := strconv.ParseFloat(record[3], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid cruise speed %q", record[3])
	}
	burn, err := strconv.ParseFloat(record[4], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid fuel burn %q", record[4])
	}
	seats, err := strconv.Atoi(record[6])
	if err != nil {
		return nil, fmt.Errorf("invalid seat count %q", record[6])
	}
	return routing.NewAircraft(record[0], category, rangeNM, cruise, burn, record[5], seats)
}
