package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/disaster")
	t.Setenv("OPENWEATHER_API_KEY", "test-key")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 0.1, cfg.GridCellSizeDeg)
	assert.Equal(t, 3, cfg.MinReportCount)
	assert.Equal(t, 0.6, cfg.MinConfidence)
	assert.Equal(t, 9.0, cfg.VarianceThreshold)
	assert.Equal(t, 40.0, cfg.TravelSpeedKmh)
	assert.Equal(t, 0.6, cfg.SafetyWeight)
	assert.Equal(t, 0.4, cfg.CapacityWeight)
	assert.Equal(t, 3, cfg.TopShelters)
	assert.Equal(t, 0.5, cfg.RiskAlertThreshold)
	assert.Equal(t, 50000, cfg.ZonePopulation)
	assert.Equal(t, 5*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, time.Minute, cfg.RetryInterval)
	assert.False(t, cfg.SimulationMode)
	assert.NotEmpty(t, cfg.Locations)
}

func TestLoadConfig_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("OPENWEATHER_API_KEY", "test-key")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadConfig_WeatherKeyOptionalInSimulationMode(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/disaster")
	t.Setenv("OPENWEATHER_API_KEY", "")
	t.Setenv("SIMULATION_MODE", "true")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.True(t, cfg.SimulationMode)
}

func TestLoadConfig_RequiresWeatherKeyWithoutSimulation(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/disaster")
	t.Setenv("OPENWEATHER_API_KEY", "")
	t.Setenv("SIMULATION_MODE", "false")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENWEATHER_API_KEY")
}

func TestLoadConfig_ParsesAPIKeys(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/disaster")
	t.Setenv("OPENWEATHER_API_KEY", "test-key")
	t.Setenv("API_KEYS", "key-one, key-two")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, []string{"key-one", "key-two"}, cfg.APIKeys)
}

func TestLoadConfig_ParsesMonitoredLocations(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/disaster")
	t.Setenv("OPENWEATHER_API_KEY", "test-key")
	t.Setenv("MONITORED_LOCATIONS", "Mumbai:19.076:72.8777; Delhi:28.6139:77.209")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	require.Len(t, cfg.Locations, 2)
	assert.Equal(t, MonitoredLocation{Name: "Mumbai", Latitude: 19.076, Longitude: 72.8777}, cfg.Locations[0])
	assert.Equal(t, "Delhi", cfg.Locations[1].Name)
}

func TestParseLocations_InvalidFormat(t *testing.T) {
	_, err := parseLocations("Mumbai:19.076")

	require.Error(t, err)
}

func TestParseLocations_InvalidLatitude(t *testing.T) {
	_, err := parseLocations("Mumbai:abc:72.8777")

	require.Error(t, err)
}

func TestParseLocations_EmptyList(t *testing.T) {
	_, err := parseLocations(" ; ")

	require.Error(t, err)
}
