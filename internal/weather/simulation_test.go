package weather

import (
	"context"
	"testing"

	"github.com/shenikar/disaster_response_system/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLocations = []config.MonitoredLocation{
	{Name: "Mumbai", Latitude: 19.0760, Longitude: 72.8777},
	{Name: "Delhi", Latitude: 28.6139, Longitude: 77.2090},
}

func TestSimulatedProvider_OneObservationPerLocation(t *testing.T) {
	provider := NewSimulatedProvider(42)

	observations, err := provider.Fetch(context.Background(), testLocations)

	require.NoError(t, err)
	require.Len(t, observations, 2)
	assert.Equal(t, "Mumbai", observations[0].Location)
	assert.Equal(t, 19.0760, observations[0].Latitude)
	assert.Equal(t, "Delhi", observations[1].Location)
}

func TestSimulatedProvider_ValuesWithinRanges(t *testing.T) {
	provider := NewSimulatedProvider(1)

	for i := 0; i < 20; i++ {
		observations, err := provider.Fetch(context.Background(), testLocations)
		require.NoError(t, err)

		for _, obs := range observations {
			assert.GreaterOrEqual(t, obs.Temperature, 15.0)
			assert.Less(t, obs.Temperature, 43.0)
			assert.GreaterOrEqual(t, obs.Humidity, 10.0)
			assert.Less(t, obs.Humidity, 95.0)
			assert.GreaterOrEqual(t, obs.WindSpeed, 0.0)
			assert.Less(t, obs.WindSpeed, 40.0)
			assert.GreaterOrEqual(t, obs.Pressure, 940.0)
			assert.Less(t, obs.Pressure, 1020.0)
			assert.GreaterOrEqual(t, obs.Precipitation, 0.0)
			assert.Less(t, obs.Precipitation, 60.0)
			assert.NotEmpty(t, obs.Condition)
		}
	}
}

func TestSimulatedProvider_DeterministicForSameSeed(t *testing.T) {
	first, err := NewSimulatedProvider(7).Fetch(context.Background(), testLocations)
	require.NoError(t, err)
	second, err := NewSimulatedProvider(7).Fetch(context.Background(), testLocations)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Temperature, second[i].Temperature)
		assert.Equal(t, first[i].Pressure, second[i].Pressure)
		assert.Equal(t, first[i].Precipitation, second[i].Precipitation)
		assert.Equal(t, first[i].Condition, second[i].Condition)
	}
}
