package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aerologix/charterplan/internal/domain/geo"
)

// NewAirportsCommand manages airport reference data
func NewAirportsCommand() *cobra.Command {
	airportsCmd := &cobra.Command{
		Use:   "airports",
		Short: "Airport reference data operations",
	}

	importCmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import or update airports from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE:  runAirportsImport,
	}

	airportsCmd.AddCommand(importCmd)
	return airportsCmd
}

// CSV columns: icao,name,lat,lon,country,runway_ft,has_fuel,fuel_price,fbo_fee,customs,deicing
func runAirportsImport(cmd *cobra.Command, args []string) error {
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
	reader.FieldsPerRecord = 11
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
		if line == 1 && strings.EqualFold(record[0], "icao") {
			continue
		}

		airport, err := airportFromRecord(record)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if err := a.airportRepo.Save(ctx, airport); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		imported++
	}

	fmt.Printf("Imported %d airports\n", imported)
	return nil
}

func airportFromRecord(record []string) (*geo.Airport, error) {
	lat, err := strconv.ParseFloat(record[2], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude %q", record[2])
	}
	lon, err := strconv.ParseFloat(record[3], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude %q", record[3])
	}

	airport, err := geo.NewAirport(record[0], lat, lon)
	if err != nil {
		return nil, err
	}
	airport.Name = record[1]
	airport.CountryCode = strings.ToUpper(strings.TrimSpace(record[4]))

	if airport.LongestRunwayFt, err = strconv.Atoi(record[5]); err != nil {
		return nil, fmt.Errorf("invalid runway length %q", record[5])
	}
	if airport.HasFuel, err = parseBoolColumn(record[6]); err != nil {
		return nil, err
	}
	if airport.FuelPricePerGal, err = strconv.ParseFloat(record[7], 64); err != nil {
		return nil, fmt.Errorf("invalid fuel price %q", record[7])
	}
	if airport.FBOFee, err = strconv.ParseFloat(record[8], 64); err != nil {
		return nil, fmt.Errorf("invalid FBO fee %q", record[8])
	}
	if airport.HasCustoms, err = parseBoolColumn(record[9]); err != nil {
		return nil, err
	}
	if airport.HasDeicing, err = parseBoolColumn(record[10]); err != nil {
		return nil, err
	}
	return airport, nil
}

func parseBoolColumn(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "y":
		return true, nil
	case "0", "false", "no", "n", "":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", value)
}
