package geo

import (
	"math"
	"sort"

	"github.com/aerologix/charterplan/internal/domain/shared"
)

const (
	// EarthRadiusNM is the mean spherical Earth radius in nautical miles
	EarthRadiusNM = 3440.065

	// FallbackDistanceNM is returned when either airport is missing from
	// reference data. Routing degrades gracefully for the long tail of
	// small fields instead of failing the whole computation.
	FallbackDistanceNM = 500.0
)

// Resolver answers distance queries over a fixed set of airports.
// Pure function of the reference data it is built from; no side effects.
type Resolver struct {
	airports map[string]*Airport
}

// NewResolver builds a resolver over the given airports, keyed by ICAO
func NewResolver(airports []*Airport) *Resolver {
	index := make(map[string]*Airport, len(airports))
	for _, ap := range airports {
		index[ap.ICAO] = ap
	}
	return &Resolver{airports: index}
}

// Known reports whether the airport has coordinate data. Callers warn,
// not fail, when operating on fallback distances.
func (r *Resolver) Known(icao string) bool {
	_, ok := r.airports[shared.NormalizeICAO(icao)]
	return ok
}

// Airport returns the reference record for an ICAO code
func (r *Resolver) Airport(icao string) (*Airport, bool) {
	ap, ok := r.airports[shared.NormalizeICAO(icao)]
	return ap, ok
}

// Airports returns all known airports sorted by ICAO code.
// The stable order keeps downstream candidate searches deterministic.
func (r *Resolver) Airports() []*Airport {
	out := make([]*Airport, 0, len(r.airports))
	for _, ap := range r.airports {
		out = append(out, ap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ICAO < out[j].ICAO })
	return out
}

// Distance returns the great-circle distance in nautical miles between
// two airports. Returns FallbackDistanceNM when either code is unknown.
func (r *Resolver) Distance(icaoA, icaoB string) float64 {
	a, okA := r.airports[shared.NormalizeICAO(icaoA)]
	b, okB := r.airports[shared.NormalizeICAO(icaoB)]
	if !okA || !okB {
		return FallbackDistanceNM
	}
	return Haversine(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}

// Haversine computes the great-circle distance in nautical miles
// between two coordinates on a spherical Earth.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	h := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda

	return 2 * EarthRadiusNM * math.Asin(math.Min(1, math.Sqrt(h)))
}
