package environment_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerologix/charterplan/internal/adapters/environment"
)

const snapshotJSON = `{
  "weather": [
    {"icao": "KJFK", "status": "marginal", "ceiling_ft": 800, "visibility_sm": 2.5, "wind_kts": 22},
    {"icao": "KLAX", "status": "go", "ceiling_ft": 12000, "visibility_sm": 10, "wind_kts": 8}
  ],
  "notams": [
    {"id": "A1001/26", "icao": "KJFK", "type": "RWY", "severity": "caution", "text": "RWY 13L/31R closed"}
  ]
}`

func writeSnapshot(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "environment.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSnapshot_ParsesWeatherAndNotams(t *testing.T) {
	source, err := environment.LoadSnapshot(writeSnapshot(t, snapshotJSON))
	require.NoError(t, err)

	jfk, ok := source.WeatherFor("KJFK")
	require.True(t, ok)
	assert.Equal(t, "marginal", string(jfk.Status))
	assert.Equal(t, 800, jfk.CeilingFt)

	notams := source.NotamsFor("kjfk")
	require.Len(t, notams, 1)
	assert.Equal(t, "A1001/26", notams[0].ID)

	_, ok = source.WeatherFor("KDEN")
	assert.False(t, ok)
	assert.Empty(t, source.NotamsFor("KDEN"))
}

func TestLoadSnapshot_MissingFile(t *testing.T) {
	_, err := environment.LoadSnapshot("/nonexistent/environment.json")
	assert.Error(t, err)
}

func TestLoadSnapshot_MalformedJSON(t *testing.T) {
	_, err := environment.LoadSnapshot(writeSnapshot(t, "{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed")
}

func TestEmpty_AnswersNeutrally(t *testing.T) {
	source := environment.Empty()

	_, ok := source.WeatherFor("KLAX")
	assert.False(t, ok)
	assert.Empty(t, source.NotamsFor("KLAX"))
}
