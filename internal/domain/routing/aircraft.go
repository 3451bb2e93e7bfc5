package routing

import (
	"fmt"

	"github.com/aerologix/charterplan/internal/domain/shared"
)

// Category buckets aircraft by size and performance. The category keys
// the minimum-runway table used when filtering refuel stop candidates.
type Category string

const (
	CategoryTurboprop Category = "turboprop"
	CategoryLight     Category = "light"
	CategoryMidsize   Category = "midsize"
	CategorySuperMid  Category = "supermid"
	CategoryHeavy     Category = "heavy"
	CategoryUltraLong Category = "ultralong"
)

// ParseCategory converts a string into an aircraft Category
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryTurboprop, CategoryLight, CategoryMidsize,
		CategorySuperMid, CategoryHeavy, CategoryUltraLong:
		return Category(s), nil
	default:
		return "", shared.NewValidationError("category", fmt.Sprintf("unknown aircraft category %q", s))
	}
}

// Aircraft is read-only input to routing; one aircraft is selected per plan.
type Aircraft struct {
	Tail           string   `json:"tail"`
	Category       Category `json:"category"`
	RangeNM        float64  `json:"range_nm"`
	CruiseSpeedKts float64  `json:"cruise_speed_kts"`
	FuelBurnGPH    float64  `json:"fuel_burn_gph"`
	HomeBase       string   `json:"home_base"`
	Seats          int      `json:"seats"`
}

// NewAircraft creates an aircraft with validation
func NewAircraft(tail string, category Category, rangeNM, cruiseSpeedKts, fuelBurnGPH float64, homeBase string, seats int) (*Aircraft, error) {
	if tail == "" {
		return nil, shared.NewValidationError("tail", "cannot be empty")
	}
	if rangeNM <= 0 {
		return nil, shared.NewValidationError("range_nm", "must be positive")
	}
	if cruiseSpeedKts <= 0 {
		return nil, shared.NewValidationError("cruise_speed_kts", "must be positive")
	}
	if fuelBurnGPH <= 0 {
		return nil, shared.NewValidationError("fuel_burn_gph", "must be positive")
	}
	base, err := shared.NewICAO(homeBase)
	if err != nil {
		return nil, err
	}
	return &Aircraft{
		Tail:           tail,
		Category:       category,
		RangeNM:        rangeNM,
		CruiseSpeedKts: cruiseSpeedKts,
		FuelBurnGPH:    fuelBurnGPH,
		HomeBase:       base,
		Seats:          seats,
	}, nil
}

// UsableRangeNM is the nominal range reduced by the fuel-reserve
// fraction. Routing never plans to the theoretical maximum.
func (a *Aircraft) UsableRangeNM(reserveFraction float64) float64 {
	return a.RangeNM * (1 - reserveFraction)
}

// FlightTimeHr converts a distance into en-route hours at cruise speed
func (a *Aircraft) FlightTimeHr(distanceNM float64) float64 {
	return distanceNM / a.CruiseSpeedKts
}

// FuelGal returns gallons burned over the given en-route hours
func (a *Aircraft) FuelGal(flightTimeHr float64) float64 {
	return flightTimeHr * a.FuelBurnGPH
}

func (a *Aircraft) String() string {
	return fmt.Sprintf("Aircraft(%s, %s, %.0fnm)", a.Tail, a.Category, a.RangeNM)
}
