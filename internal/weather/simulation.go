package weather

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/shenikar/disaster_response_system/internal/config"
	"github.com/shenikar/disaster_response_system/internal/models"
)

// SimulatedProvider генерирует правдоподобные измерения погоды без живого
// API. Работает только в явном режиме симуляции и никогда не подмешивается
// к реальным данным: балл риска всегда вычисляется скорером по измерению,
// случайных баллов риска нет.
type SimulatedProvider struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulatedProvider создает провайдер с фиксированным зерном:
// одно зерно - одна и та же последовательность измерений.
func NewSimulatedProvider(seed int64) *SimulatedProvider {
	return &SimulatedProvider{
		rng: rand.New(rand.NewSource(seed)),
	}
}

var simulatedConditions = []string{"Clear", "Clouds", "Rain", "Thunderstorm", "Haze"}

// Fetch возвращает по одному сгенерированному измерению на локацию.
func (p *SimulatedProvider) Fetch(_ context.Context, locations []config.MonitoredLocation) ([]*models.WeatherObservation, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now().UTC()
	observations := make([]*models.WeatherObservation, 0, len(locations))

	for _, loc := range locations {
		precipitation := 0.0
		// Примерно в трети случаев идет дождь
		if p.rng.Float64() < 0.35 {
			precipitation = p.rng.Float64() * 60
		}

		observations = append(observations, &models.WeatherObservation{
			Location:      loc.Name,
			Latitude:      loc.Latitude,
			Longitude:     loc.Longitude,
			Timestamp:     now,
			Temperature:   15 + p.rng.Float64()*28,  // 15..43 C
			Humidity:      10 + p.rng.Float64()*85,  // 10..95 %
			WindSpeed:     p.rng.Float64() * 40,     // 0..40 км/ч
			WindDirection: p.rng.Float64() * 360,
			Pressure:      940 + p.rng.Float64()*80, // 940..1020 гПа
			Precipitation: precipitation,
			Condition:     simulatedConditions[p.rng.Intn(len(simulatedConditions))],
			VisibilityKm:  2 + p.rng.Float64()*8,
		})
	}

	return observations, nil
}
