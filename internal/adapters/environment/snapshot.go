package environment

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aerologix/charterplan/internal/domain/shared"
	"github.com/aerologix/charterplan/internal/domain/weather"
)

// Snapshot is pre-fetched environmental data keyed by ICAO. An external
// collaborator produces the file; this adapter only reads it, keeping
// the planning core deterministic given the data.
type Snapshot struct {
	weatherByICAO map[string]*weather.Assessment
	notamsByICAO  map[string][]*weather.Notam
}

type snapshotFile struct {
	Weather []*weather.Assessment `json:"weather"`
	Notams  []*weather.Notam      `json:"notams"`
}

// LoadSnapshot reads a weather/NOTAM snapshot from a JSON file
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read environment snapshot: %w", err)
	}
	var file snapshotFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("malformed environment snapshot %s: %w", path, err)
	}
	return NewSnapshot(file.Weather, file.Notams), nil
}

// NewSnapshot builds an in-memory source from already-fetched data
func NewSnapshot(assessments []*weather.Assessment, notams []*weather.Notam) *Snapshot {
	s := &Snapshot{
		weatherByICAO: make(map[string]*weather.Assessment, len(assessments)),
		notamsByICAO:  make(map[string][]*weather.Notam),
	}
	for _, a := range assessments {
		s.weatherByICAO[shared.NormalizeICAO(a.ICAO)] = a
	}
	for _, n := range notams {
		icao := shared.NormalizeICAO(n.ICAO)
		s.notamsByICAO[icao] = append(s.notamsByICAO[icao], n)
	}
	return s
}

// Empty returns a snapshot with no data; every airport rates neutral
func Empty() *Snapshot {
	return NewSnapshot(nil, nil)
}

// WeatherFor implements weather.Source
func (s *Snapshot) WeatherFor(icao string) (*weather.Assessment, bool) {
	a, ok := s.weatherByICAO[shared.NormalizeICAO(icao)]
	return a, ok
}

// NotamsFor implements weather.Source
func (s *Snapshot) NotamsFor(icao string) []*weather.Notam {
	return s.notamsByICAO[shared.NormalizeICAO(icao)]
}
