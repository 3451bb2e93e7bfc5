package pricing

import (
	"github.com/shopspring/decimal"
)

// LegItem is the per-leg line of the itemization
type LegItem struct {
	From         string          `json:"from"`
	To           string          `json:"to"`
	DistanceNM   float64         `json:"distance_nm"`
	FlightTimeHr float64         `json:"flight_time_hr"`
	FuelCost     decimal.Decimal `json:"fuel_cost"`
	Catering     decimal.Decimal `json:"catering"`
}

// Breakdown is the full cost decomposition for one itinerary. All
// amounts are USD rounded to the cent, and the identities
//
//	Subtotal = FuelCost + FBOFees + RepositioningCost + PermitFees +
//	           CrewOvernight + Catering + PeakSurcharge
//	Total    = Subtotal + MarginAmount + Tax
//
// hold exactly for every produced breakdown.
type Breakdown struct {
	FuelCost           decimal.Decimal `json:"fuel_cost"`
	FBOFees            decimal.Decimal `json:"fbo_fees"`
	RepositioningCost  decimal.Decimal `json:"repositioning_cost"`
	RepositioningHours float64         `json:"repositioning_hours"`
	PermitFees         decimal.Decimal `json:"permit_fees"`
	CrewOvernight      decimal.Decimal `json:"crew_overnight"`
	Catering           decimal.Decimal `json:"catering"`
	PeakSurcharge      decimal.Decimal `json:"peak_surcharge"`

	Subtotal     decimal.Decimal `json:"subtotal"`
	MarginPct    decimal.Decimal `json:"margin_pct"`
	MarginAmount decimal.Decimal `json:"margin_amount"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
	Tax          decimal.Decimal `json:"tax"`
	Total        decimal.Decimal `json:"total"`

	Legs []LegItem `json:"legs"`
}

// ItemizedSum re-adds the cost fields; equals Subtotal by construction
func (b *Breakdown) ItemizedSum() decimal.Decimal {
	return b.FuelCost.
		Add(b.FBOFees).
		Add(b.RepositioningCost).
		Add(b.PermitFees).
		Add(b.CrewOvernight).
		Add(b.Catering).
		Add(b.PeakSurcharge)
}
