package geo

import (
	"fmt"

	"github.com/aerologix/charterplan/internal/domain/shared"
)

// Airport represents immutable airport reference data.
// Looked up by ICAO code, never mutated by the planning core.
type Airport struct {
	ICAO            string  `json:"icao"`
	Name            string  `json:"name"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	CountryCode     string  `json:"country_code"`
	LongestRunwayFt int     `json:"longest_runway_ft"`
	HasFuel         bool    `json:"has_fuel"`
	FuelPricePerGal float64 `json:"fuel_price_per_gal"` // USD; 0 means unknown, fall back to default
	FBOFee          float64 `json:"fbo_fee"`            // USD per handling
	HasCustoms      bool    `json:"has_customs"`
	HasDeicing      bool    `json:"has_deicing"`
}

// NewAirport creates an airport with validation
func NewAirport(icao string, lat, lon float64) (*Airport, error) {
	code, err := shared.NewICAO(icao)
	if err != nil {
		return nil, err
	}
	if lat < -90 || lat > 90 {
		return nil, shared.NewValidationError("latitude", fmt.Sprintf("out of range: %f", lat))
	}
	if lon < -180 || lon > 180 {
		return nil, shared.NewValidationError("longitude", fmt.Sprintf("out of range: %f", lon))
	}
	return &Airport{ICAO: code, Latitude: lat, Longitude: lon}, nil
}

func (a *Airport) String() string {
	return fmt.Sprintf("Airport(%s)", a.ICAO)
}
