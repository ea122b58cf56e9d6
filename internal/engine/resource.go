package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/shenikar/disaster_response_system/internal/models"
)

// Priority вычисляет приоритет зоны для распределения ресурсов, [0,1].
// Оценка пострадавших: плотность населения, умноженная на нормированную
// площадь поражения; вклад насыщается на 10000 человек.
func Priority(zone *models.DisasterZone) float64 {
	severity := float64(zone.Severity)
	if severity < 0 {
		severity = 0
	}
	if severity > 10 {
		severity = 10
	}

	affectedArea := math.Pi * zone.AffectedRadiusKm * zone.AffectedRadiusKm
	estimatedAffected := float64(zone.Population) * (affectedArea / 100)
	if estimatedAffected > 10000 {
		estimatedAffected = 10000
	}
	if estimatedAffected < 0 {
		estimatedAffected = 0
	}

	priority := (severity/10)*0.5 + (estimatedAffected/10000)*0.5
	return clamp01(priority)
}

// Allocate рассчитывает приоритеты и квоты ресурсов для списка зон.
// Результат отсортирован по убыванию приоритета; пустой вход дает пустой
// список. Квоты линейно масштабируются от серьезности зоны.
func Allocate(zones []*models.DisasterZone) []*models.ResourceAllocation {
	allocations := make([]*models.ResourceAllocation, 0, len(zones))

	for _, zone := range zones {
		priority := Priority(zone)

		var urgency string
		switch {
		case priority > 0.7:
			urgency = models.UrgencyImmediate
		case priority > 0.5:
			urgency = models.UrgencyHigh
		default:
			urgency = models.UrgencyNormal
		}

		severity := zone.Severity
		if severity < 0 {
			severity = 0
		}
		if severity > 10 {
			severity = 10
		}

		allocations = append(allocations, &models.ResourceAllocation{
			ZoneID:   zone.ID,
			Location: fmt.Sprintf("%.2f,%.2f", zone.Latitude, zone.Longitude),
			Priority: priority,
			Severity: severity,
			Needs: models.ResourceNeeds{
				MedicalTeams:   severity * 2,
				WaterSupplies:  severity * 100,
				FoodSupplies:   severity * 150,
				RescueVehicles: int(float64(severity) * 1.5),
			},
			Urgency:   urgency,
			Latitude:  zone.Latitude,
			Longitude: zone.Longitude,
		})
	}

	sort.SliceStable(allocations, func(i, j int) bool {
		return allocations[i].Priority > allocations[j].Priority
	})

	return allocations
}
