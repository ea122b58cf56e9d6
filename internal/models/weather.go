package models

import (
	"time"
)

// WeatherObservation - одно измерение погоды для отслеживаемой локации.
// Неизменяемо после получения; одно на локацию за цикл обновления.
type WeatherObservation struct {
	Location      string    `json:"location"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	Timestamp     time.Time `json:"timestamp"`
	Temperature   float64   `json:"temperature"`
	Humidity      float64   `json:"humidity"`
	WindSpeed     float64   `json:"wind_speed"`
	WindDirection float64   `json:"wind_direction"`
	Pressure      float64   `json:"pressure"`
	Precipitation float64   `json:"precipitation"`
	Condition     string    `json:"weather_condition"`
	VisibilityKm  float64   `json:"visibility"`
}
