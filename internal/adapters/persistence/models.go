package persistence

import (
	"time"
)

// AirportModel represents the airports table.
// Reference data: written by imports, read-only to the planning core.
type AirportModel struct {
	ICAO            string  `gorm:"column:icao;primaryKey"`
	Name            string  `gorm:"column:name"`
	Latitude        float64 `gorm:"column:latitude;not null"`
	Longitude       float64 `gorm:"column:longitude;not null"`
	CountryCode     string  `gorm:"column:country_code;size:2;index"`
	LongestRunwayFt int     `gorm:"column:longest_runway_ft;not null;default:0"`
	HasFuel         int     `gorm:"column:has_fuel;not null;default:0"` // 0 or 1 (SQLite compatible)
	FuelPricePerGal float64 `gorm:"column:fuel_price_per_gal;not null;default:0"`
	FBOFee          float64 `gorm:"column:fbo_fee;not null;default:0"`
	HasCustoms      int     `gorm:"column:has_customs;not null;default:0"`
	HasDeicing      int     `gorm:"column:has_deicing;not null;default:0"`
}

func (AirportModel) TableName() string {
	return "airports"
}

// AircraftModel represents the aircraft table
type AircraftModel struct {
	Tail           string  `gorm:"column:tail;primaryKey"`
	Category       string  `gorm:"column:category;not null"`
	RangeNM        float64 `gorm:"column:range_nm;not null"`
	CruiseSpeedKts float64 `gorm:"column:cruise_speed_kts;not null"`
	FuelBurnGPH    float64 `gorm:"column:fuel_burn_gph;not null"`
	HomeBase       string  `gorm:"column:home_base;not null"`
	Seats          int     `gorm:"column:seats;not null;default:0"`
}

func (AircraftModel) TableName() string {
	return "aircraft"
}

// RoutePlanModel represents the route_plans table.
// Rows are immutable historical facts: inserted once, never updated.
// The full deterministic payload is stored as a JSON snapshot so a
// later re-pricing can diff it against a fresh computation.
type RoutePlanModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	AircraftTail string    `gorm:"column:aircraft_tail;index;not null"`
	Mode         string    `gorm:"column:mode;not null"`
	TotalUSD     string    `gorm:"column:total_usd;not null"`
	RiskScore    float64   `gorm:"column:risk_score;not null"`
	Payload      string    `gorm:"column:payload;type:text;not null"` // JSON snapshot
	ComputedAt   time.Time `gorm:"column:computed_at;not null"`
}

func (RoutePlanModel) TableName() string {
	return "route_plans"
}
