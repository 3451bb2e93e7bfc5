package weather

import "fmt"

// Status is the go/no-go classification for an airport
type Status string

const (
	StatusGo       Status = "go"
	StatusMarginal Status = "marginal"
	StatusNogo     Status = "nogo"
)

// Assessment is injected per-airport weather data. This core only
// consumes it; fetching lives with an external collaborator.
type Assessment struct {
	ICAO           string  `json:"icao"`
	Status         Status  `json:"status"`
	CeilingFt      int     `json:"ceiling_ft"`
	VisibilitySM   float64 `json:"visibility_sm"`
	WindKts        int     `json:"wind_kts"`
	IcingRisk      bool    `json:"icing_risk"`
	ConvectiveRisk string  `json:"convective_risk"` // none/isolated/scattered/widespread
}

func (a *Assessment) String() string {
	return fmt.Sprintf("Weather(%s: %s)", a.ICAO, a.Status)
}

// Severity classifies an airspace notice
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityCaution  Severity = "caution"
	SeverityCritical Severity = "critical"
)

// Notam is a notice to air missions affecting one airport
type Notam struct {
	ID       string   `json:"id"`
	ICAO     string   `json:"icao"`
	Type     string   `json:"type"`
	Severity Severity `json:"severity"`
	Text     string   `json:"text"`
}

func (n *Notam) String() string {
	return fmt.Sprintf("Notam(%s, %s, %s)", n.ID, n.ICAO, n.Severity)
}
