package engine

import (
	"fmt"

	"github.com/shenikar/disaster_response_system/internal/models"
)

// Фиксированная уверенность модели: скоринг детерминированный и не выводит
// уверенность из данных.
const riskConfidence = 0.85

// hazardOrder - порядок оценки опасностей. При равных баллах побеждает более
// ранняя опасность; это задокументированное правило разрешения ничьих, а не
// побочный эффект порядка обхода словаря.
var hazardOrder = []string{models.HazardFlood, models.HazardFire, models.HazardHurricane}

// FloodRisk оценивает риск наводнения по одному измерению погоды, [0,1].
func FloodRisk(obs *models.WeatherObservation) float64 {
	risk := 0.0

	// Сильные осадки
	switch {
	case obs.Precipitation > 50:
		risk += 0.5
	case obs.Precipitation > 20:
		risk += 0.3
	case obs.Precipitation > 10:
		risk += 0.1
	}

	// Низкое давление (штормовая система)
	switch {
	case obs.Pressure < 980:
		risk += 0.3
	case obs.Pressure < 1000:
		risk += 0.1
	}

	if obs.Humidity > 90 {
		risk += 0.1
	}

	if obs.WindSpeed > 20 {
		risk += 0.1
	}

	return clamp01(risk)
}

// FireRisk оценивает риск природного пожара, [0,1].
func FireRisk(obs *models.WeatherObservation) float64 {
	risk := 0.0

	switch {
	case obs.Temperature > 35:
		risk += 0.4
	case obs.Temperature > 30:
		risk += 0.2
	}

	// Сухой воздух
	switch {
	case obs.Humidity < 20:
		risk += 0.3
	case obs.Humidity < 30:
		risk += 0.2
	}

	switch {
	case obs.WindSpeed > 25:
		risk += 0.3
	case obs.WindSpeed > 15:
		risk += 0.1
	}

	if obs.Precipitation == 0 {
		risk += 0.1
	}

	return clamp01(risk)
}

// HurricaneRisk оценивает риск урагана, [0,1].
func HurricaneRisk(obs *models.WeatherObservation) float64 {
	risk := 0.0

	switch {
	case obs.Pressure < 950:
		risk += 0.6
	case obs.Pressure < 980:
		risk += 0.4
	case obs.Pressure < 1000:
		risk += 0.2
	}

	// Ветер ураганной силы > 33
	switch {
	case obs.WindSpeed > 33:
		risk += 0.5
	case obs.WindSpeed > 25:
		risk += 0.3
	}

	if obs.Precipitation > 30 {
		risk += 0.2
	}

	return clamp01(risk)
}

// AnalyzeWeather оценивает все три опасности и возвращает предсказание по
// доминирующей. Время до события: 6 часов при балле выше 0.5, иначе 24.
func AnalyzeWeather(obs *models.WeatherObservation) *models.RiskPrediction {
	scores := map[string]float64{
		models.HazardFlood:     FloodRisk(obs),
		models.HazardFire:      FireRisk(obs),
		models.HazardHurricane: HurricaneRisk(obs),
	}

	dominant := hazardOrder[0]
	for _, hazard := range hazardOrder[1:] {
		if scores[hazard] > scores[dominant] {
			dominant = hazard
		}
	}
	score := scores[dominant]

	timeToEvent := 24.0
	if score > 0.5 {
		timeToEvent = 6.0
	}

	return &models.RiskPrediction{
		Location:         obs.Location,
		Latitude:         obs.Latitude,
		Longitude:        obs.Longitude,
		Timestamp:        obs.Timestamp,
		RiskScore:        score,
		HazardType:       dominant,
		Confidence:       riskConfidence,
		TimeToEventHours: timeToEvent,
		Recommendation:   Recommendation(dominant, score),
	}
}

// Recommendation возвращает текст рекомендованных действий по диапазону балла.
func Recommendation(hazardType string, riskScore float64) string {
	switch {
	case riskScore < 0.3:
		return "Monitor weather conditions. No immediate action required."
	case riskScore < 0.6:
		return fmt.Sprintf("Elevated %s risk. Prepare emergency supplies and evacuation plan.", hazardType)
	default:
		return fmt.Sprintf("HIGH %s RISK! Consider immediate evacuation. Follow emergency protocols.", hazardType)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// AnalyzeBatch применяет скоринг к пакету измерений, сохраняя порядок.
func AnalyzeBatch(observations []*models.WeatherObservation) []*models.RiskPrediction {
	predictions := make([]*models.RiskPrediction, 0, len(observations))
	for _, obs := range observations {
		predictions = append(predictions, AnalyzeWeather(obs))
	}
	return predictions
}
