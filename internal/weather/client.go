package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/disaster_response_system/internal/config"
	"github.com/shenikar/disaster_response_system/internal/models"
)

const openWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

// Client запрашивает текущую погоду в OpenWeatherMap для списка локаций.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient создает клиент OpenWeatherMap
func NewClient(apiKey string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: openWeatherBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// openWeatherResponse - подмножество ответа /weather, которое мы используем
type openWeatherResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
		Pressure float64 `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
	} `json:"wind"`
	Rain struct {
		OneHour float64 `json:"1h"`
	} `json:"rain"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	Visibility float64 `json:"visibility"`
}

// Fetch запрашивает погоду для каждой локации. Ошибка по одной локации не
// прерывает пакет: локация пропускается с логированием. Ошибка возвращается
// только если не удалось получить ни одного измерения.
func (c *Client) Fetch(ctx context.Context, locations []config.MonitoredLocation) ([]*models.WeatherObservation, error) {
	observations := make([]*models.WeatherObservation, 0, len(locations))
	now := time.Now().UTC()

	for _, loc := range locations {
		obs, err := c.fetchOne(ctx, loc, now)
		if err != nil {
			c.logger.WithError(err).WithField("location", loc.Name).Error("Failed to fetch weather for location")
			continue
		}
		observations = append(observations, obs)
	}

	if len(observations) == 0 {
		return nil, fmt.Errorf("weather: no observations fetched for %d locations", len(locations))
	}
	return observations, nil
}

func (c *Client) fetchOne(ctx context.Context, loc config.MonitoredLocation, now time.Time) (*models.WeatherObservation, error) {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", loc.Latitude))
	params.Set("lon", fmt.Sprintf("%f", loc.Longitude))
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	reqURL := fmt.Sprintf("%s/weather?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call weather API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather API returned status %d", resp.StatusCode)
	}

	var data openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}

	condition := "Unknown"
	if len(data.Weather) > 0 {
		condition = data.Weather[0].Main
	}

	visibility := data.Visibility
	if visibility == 0 {
		visibility = 10000
	}

	return &models.WeatherObservation{
		Location:      loc.Name,
		Latitude:      loc.Latitude,
		Longitude:     loc.Longitude,
		Timestamp:     now,
		Temperature:   data.Main.Temp,
		Humidity:      data.Main.Humidity,
		WindSpeed:     data.Wind.Speed,
		WindDirection: data.Wind.Deg,
		Pressure:      data.Main.Pressure,
		Precipitation: data.Rain.OneHour,
		Condition:     condition,
		VisibilityKm:  visibility / 1000,
	}, nil
}
