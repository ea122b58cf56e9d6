package weather

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shenikar/disaster_response_system/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	client := NewClient("test-key", 5*time.Second, logger)
	client.baseURL = serverURL
	return client
}

func TestClient_Fetch_Success(t *testing.T) {
	// Подготовка: фейковый OpenWeatherMap
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"main": {"temp": 31.5, "humidity": 70, "pressure": 1008},
			"wind": {"speed": 12.3, "deg": 180},
			"rain": {"1h": 4.2},
			"weather": [{"main": "Rain"}],
			"visibility": 8000
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	// Действие
	observations, err := client.Fetch(context.Background(), []config.MonitoredLocation{
		{Name: "Mumbai", Latitude: 19.0760, Longitude: 72.8777},
	})

	// Проверки
	require.NoError(t, err)
	require.Len(t, observations, 1)
	obs := observations[0]
	assert.Equal(t, "Mumbai", obs.Location)
	assert.Equal(t, 31.5, obs.Temperature)
	assert.Equal(t, 70.0, obs.Humidity)
	assert.Equal(t, 1008.0, obs.Pressure)
	assert.Equal(t, 12.3, obs.WindSpeed)
	assert.Equal(t, 4.2, obs.Precipitation)
	assert.Equal(t, "Rain", obs.Condition)
	assert.Equal(t, 8.0, obs.VisibilityKm)
}

func TestClient_Fetch_SkipsFailedLocation(t *testing.T) {
	// Первая локация падает, вторая отвечает нормально
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"main": {"temp": 25, "humidity": 60, "pressure": 1012}, "weather": [{"main": "Clear"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	observations, err := client.Fetch(context.Background(), []config.MonitoredLocation{
		{Name: "Broken", Latitude: 1, Longitude: 1},
		{Name: "Working", Latitude: 2, Longitude: 2},
	})

	require.NoError(t, err)
	require.Len(t, observations, 1)
	assert.Equal(t, "Working", observations[0].Location)
}

func TestClient_Fetch_AllLocationsFail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	observations, err := client.Fetch(context.Background(), []config.MonitoredLocation{
		{Name: "Mumbai", Latitude: 19.0760, Longitude: 72.8777},
	})

	require.Error(t, err)
	assert.Nil(t, observations)
	assert.ErrorContains(t, err, "no observations fetched")
}

func TestClient_Fetch_DefaultsMissingFields(t *testing.T) {
	// Без rain, weather и visibility: осадки 0, условие Unknown, видимость 10 км
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"main": {"temp": 20, "humidity": 50, "pressure": 1013}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	observations, err := client.Fetch(context.Background(), []config.MonitoredLocation{
		{Name: "Mumbai", Latitude: 19.0760, Longitude: 72.8777},
	})

	require.NoError(t, err)
	require.Len(t, observations, 1)
	assert.Equal(t, 0.0, observations[0].Precipitation)
	assert.Equal(t, "Unknown", observations[0].Condition)
	assert.Equal(t, 10.0, observations[0].VisibilityKm)
}
