package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/disaster_response_system/internal/models"
)

// alertLevel сопоставляет балл риска дискретному уровню оповещения и цвету.
func alertLevel(riskScore float64) (level, color string) {
	switch {
	case riskScore >= 0.8:
		return models.AlertCritical, "red"
	case riskScore >= 0.6:
		return models.AlertSevere, "orange"
	case riskScore >= 0.4:
		return models.AlertModerate, "yellow"
	default:
		return models.AlertAdvisory, "blue"
	}
}

// GenerateAlert строит оповещение из предсказания риска. Момент генерации
// передается вызывающей стороной: повторный вызов с теми же аргументами дает
// побитово идентичный результат. Срок действия - время генерации плюс
// ожидаемое время до события.
func GenerateAlert(pred *models.RiskPrediction, populationAffected int, now time.Time) *models.Alert {
	level, color := alertLevel(pred.RiskScore)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s ALERT\n", level, strings.ToUpper(pred.HazardType))
	fmt.Fprintf(&sb, "Expected within %d hours\n", int(pred.TimeToEventHours))
	fmt.Fprintf(&sb, "Risk Score: %.2f\n", pred.RiskScore)
	fmt.Fprintf(&sb, "Estimated Affected: %d people\n", populationAffected)
	fmt.Fprintf(&sb, "Actions: %s", pred.Recommendation)

	return &models.Alert{
		ID:                 fmt.Sprintf("ALERT-%d-%s", now.Unix(), pred.Location),
		Timestamp:          now,
		Location:           pred.Location,
		Latitude:           pred.Latitude,
		Longitude:          pred.Longitude,
		Level:              level,
		HazardType:         pred.HazardType,
		RiskScore:          pred.RiskScore,
		Message:            sb.String(),
		ColorCode:          color,
		ExpiresAt:          now.Add(time.Duration(pred.TimeToEventHours * float64(time.Hour))),
		PopulationAffected: populationAffected,
	}
}
