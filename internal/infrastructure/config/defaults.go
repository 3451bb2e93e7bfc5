package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "charterplan"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "charterplan"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "charterplan.db"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 25
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 5
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Routing defaults: 10% fuel reserve, 250nm detour bound, 45min turnaround
	if cfg.Routing.ReserveFraction == 0 {
		cfg.Routing.ReserveFraction = 0.10
	}
	if cfg.Routing.MaxDetourNM == 0 {
		cfg.Routing.MaxDetourNM = 250
	}
	if cfg.Routing.MaxStopsPerLeg == 0 {
		cfg.Routing.MaxStopsPerLeg = 5
	}
	if cfg.Routing.TurnaroundMin == 0 {
		cfg.Routing.TurnaroundMin = 45
	}
	if cfg.Routing.DefaultFuelPricePerGal == 0 {
		cfg.Routing.DefaultFuelPricePerGal = 6.50
	}
	if len(cfg.Routing.MinRunwayFt) == 0 {
		cfg.Routing.MinRunwayFt = map[string]int{
			"turboprop": 3500,
			"light":     4000,
			"midsize":   5000,
			"supermid":  5500,
			"heavy":     6000,
			"ultralong": 6500,
		}
	}
	if cfg.Routing.BalancedCostWeight == 0 {
		cfg.Routing.BalancedCostWeight = 0.5
	}
	if cfg.Routing.BalancedTimeWeight == 0 {
		cfg.Routing.BalancedTimeWeight = 0.5
	}
	if cfg.Routing.BalancedHourValueUSD == 0 {
		cfg.Routing.BalancedHourValueUSD = 1500
	}

	// Environmental gate defaults
	if cfg.Environment.NogoPenalty == 0 {
		cfg.Environment.NogoPenalty = 0.35
	}
	if cfg.Environment.MarginalPenalty == 0 {
		cfg.Environment.MarginalPenalty = 0.10
	}
	if cfg.Environment.CriticalPenalty == 0 {
		cfg.Environment.CriticalPenalty = 0.25
	}
	if cfg.Environment.CautionPenalty == 0 {
		cfg.Environment.CautionPenalty = 0.08
	}
	if cfg.Environment.RiskWeight == 0 {
		cfg.Environment.RiskWeight = 0.55
	}
	if cfg.Environment.StopWeight == 0 {
		cfg.Environment.StopWeight = 0.03
	}

	// Pricing defaults
	if cfg.Pricing.TaxRate == 0 {
		cfg.Pricing.TaxRate = 0.075
	}
	if cfg.Pricing.DefaultFuelPricePerGal == 0 {
		cfg.Pricing.DefaultFuelPricePerGal = cfg.Routing.DefaultFuelPricePerGal
	}
	if cfg.Pricing.InternationalScope == "" {
		cfg.Pricing.InternationalScope = "itinerary"
	}
	if len(cfg.Pricing.PermitFees) == 0 {
		cfg.Pricing.PermitFees = map[string]float64{
			"CA": 450,
			"MX": 600,
			"BS": 350,
			"GB": 750,
			"FR": 800,
		}
	}
	if cfg.Pricing.DefaultPermitFee == 0 {
		cfg.Pricing.DefaultPermitFee = 500
	}
	if cfg.Pricing.CrewOvernightPerNight == 0 {
		cfg.Pricing.CrewOvernightPerNight = 850
	}
	if cfg.Pricing.CateringPerLeg == 0 {
		cfg.Pricing.CateringPerLeg = 400
	}
	if len(cfg.Pricing.PeakDays) == 0 {
		cfg.Pricing.PeakDays = []string{
			"01-01", "07-04", "11-26", "11-27", "12-24", "12-25", "12-31",
		}
	}
	if cfg.Pricing.PeakSurcharge == 0 {
		cfg.Pricing.PeakSurcharge = 1500
	}

	// Planning defaults
	if cfg.Planning.MaxWorkers == 0 {
		cfg.Planning.MaxWorkers = 4
	}
}
