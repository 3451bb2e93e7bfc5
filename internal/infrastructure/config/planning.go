package config

import (
	"github.com/aerologix/charterplan/internal/domain/pricing"
	"github.com/aerologix/charterplan/internal/domain/routing"
	"github.com/aerologix/charterplan/internal/domain/weather"
)

// RoutingConfig holds the leg expansion constant tables
type RoutingConfig struct {
	// Fraction of nominal range held back as fuel reserve
	ReserveFraction float64 `mapstructure:"reserve_fraction" validate:"min=0,max=0.5"`

	// Maximum added distance a refuel stop may cost over the direct path
	MaxDetourNM float64 `mapstructure:"max_detour_nm" validate:"min=0"`

	// Maximum refuel stops inserted into a single user leg
	MaxStopsPerLeg int `mapstructure:"max_stops_per_leg" validate:"min=1"`

	// Ground time charged per refuel stop
	TurnaroundMin int `mapstructure:"turnaround_min" validate:"min=0"`

	// Fuel price used when an airport publishes none
	DefaultFuelPricePerGal float64 `mapstructure:"default_fuel_price_per_gal" validate:"min=0"`

	// Minimum runway length per aircraft category
	MinRunwayFt map[string]int `mapstructure:"min_runway_ft"`

	// Balanced-mode stop scoring weights
	BalancedCostWeight   float64 `mapstructure:"balanced_cost_weight" validate:"min=0"`
	BalancedTimeWeight   float64 `mapstructure:"balanced_time_weight" validate:"min=0"`
	BalancedHourValueUSD float64 `mapstructure:"balanced_hour_value_usd" validate:"min=0"`
}

// ToDomain converts to the routing domain config
func (c RoutingConfig) ToDomain() routing.Config {
	minRunway := make(map[routing.Category]int, len(c.MinRunwayFt))
	for category, ft := range c.MinRunwayFt {
		minRunway[routing.Category(category)] = ft
	}
	return routing.Config{
		ReserveFraction:        c.ReserveFraction,
		MaxDetourNM:            c.MaxDetourNM,
		MaxStopsPerLeg:         c.MaxStopsPerLeg,
		TurnaroundMin:          c.TurnaroundMin,
		DefaultFuelPricePerGal: c.DefaultFuelPricePerGal,
		MinRunwayFt:            minRunway,
		BalancedCostWeight:     c.BalancedCostWeight,
		BalancedTimeWeight:     c.BalancedTimeWeight,
		BalancedHourValueUSD:   c.BalancedHourValueUSD,
	}
}

// EnvironmentConfig holds the environmental gate parameters
type EnvironmentConfig struct {
	// Path to the injected weather/NOTAM snapshot file
	SnapshotPath string `mapstructure:"snapshot_path"`

	NogoPenalty     float64 `mapstructure:"nogo_penalty" validate:"min=0,max=1"`
	MarginalPenalty float64 `mapstructure:"marginal_penalty" validate:"min=0,max=1"`
	CriticalPenalty float64 `mapstructure:"critical_penalty" validate:"min=0,max=1"`
	CautionPenalty  float64 `mapstructure:"caution_penalty" validate:"min=0,max=1"`

	RiskWeight float64 `mapstructure:"risk_weight" validate:"min=0,max=1"`
	StopWeight float64 `mapstructure:"stop_weight" validate:"min=0,max=1"`
}

// ToDomain converts to the gate domain config
func (c EnvironmentConfig) ToDomain() weather.GateConfig {
	return weather.GateConfig{
		NogoPenalty:     c.NogoPenalty,
		MarginalPenalty: c.MarginalPenalty,
		CriticalPenalty: c.CriticalPenalty,
		CautionPenalty:  c.CautionPenalty,
		RiskWeight:      c.RiskWeight,
		StopWeight:      c.StopWeight,
	}
}

// PricingConfig holds the cost engine constant tables
type PricingConfig struct {
	TaxRate                float64 `mapstructure:"tax_rate" validate:"min=0"`
	DefaultFuelPricePerGal float64 `mapstructure:"default_fuel_price_per_gal" validate:"min=0"`

	// FBOStopsOnly limits FBO fees to refuel stops; by default every
	// touched airport bills once
	FBOStopsOnly bool `mapstructure:"fbo_stops_only"`

	// "itinerary" or "legwise" permit fee accounting
	InternationalScope string `mapstructure:"international_scope" validate:"oneof=itinerary legwise"`

	// Permit fee table by country code plus the default tier
	PermitFees       map[string]float64 `mapstructure:"permit_fees"`
	DefaultPermitFee float64            `mapstructure:"default_permit_fee" validate:"min=0"`

	CrewOvernightPerNight float64 `mapstructure:"crew_overnight_per_night" validate:"min=0"`
	CateringPerLeg        float64 `mapstructure:"catering_per_leg" validate:"min=0"`

	// Recurring high-demand calendar days as "MM-DD"
	PeakDays      []string `mapstructure:"peak_days"`
	PeakSurcharge float64  `mapstructure:"peak_surcharge" validate:"min=0"`
}

// ToDomain converts to the pricing domain config
func (c PricingConfig) ToDomain() pricing.Config {
	return pricing.Config{
		TaxRate:                c.TaxRate,
		DefaultFuelPricePerGal: c.DefaultFuelPricePerGal,
		FBOStopsOnly:           c.FBOStopsOnly,
		InternationalScope:     pricing.InternationalScope(c.InternationalScope),
		PermitFees:             c.PermitFees,
		DefaultPermitFee:       c.DefaultPermitFee,
		CrewOvernightPerNight:  c.CrewOvernightPerNight,
		CateringPerLeg:         c.CateringPerLeg,
		PeakDays:               c.PeakDays,
		PeakSurcharge:          c.PeakSurcharge,
	}
}

// PlanningConfig holds optimizer fan-out limits
type PlanningConfig struct {
	// Worker pool cap for fleet selection fan-out
	MaxWorkers int `mapstructure:"max_workers" validate:"min=1"`
}
