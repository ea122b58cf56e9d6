package engine

import (
	"math"
	"sort"

	"github.com/shenikar/disaster_response_system/internal/geo"
	"github.com/shenikar/disaster_response_system/internal/models"
)

// Ranker ранжирует убежища по безопасности маршрута и доступной вместимости.
// "Маршрут" здесь - оценка по прямой, а не прокладка по дорожному графу.
type Ranker struct {
	TravelSpeedKmh float64 // средняя скорость движения при эвакуации
	SafetyWeight   float64 // вес оценки безопасности маршрута
	CapacityWeight float64 // вес оценки вместимости
	TopN           int     // сколько убежищ возвращать
}

// NewRanker возвращает ранжировщик с заданными весами.
func NewRanker(speedKmh, safetyWeight, capacityWeight float64, topN int) Ranker {
	return Ranker{
		TravelSpeedKmh: speedKmh,
		SafetyWeight:   safetyWeight,
		CapacityWeight: capacityWeight,
		TopN:           topN,
	}
}

// RouteInfo - оценка маршрута от пользователя до убежища.
type RouteInfo struct {
	DistanceKm           float64
	EstimatedTimeMinutes int
	SafetyScore          float64
	DisasterDistanceKm   float64
	Recommended          bool
}

// RouteSafety оценивает безопасность маршрута по расстоянию до ближайшей
// опасной зоны. Близость к зоне снижает оценку и увеличивает время в пути
// (заторы), каждая перекрытая дорога дает штраф 0.05 к оценке (не ниже 0.1)
// и 10 минут объезда.
func (rk Ranker) RouteSafety(userLat, userLon, shelterLat, shelterLon float64, zones []*models.DisasterZone, blockedRoads int) RouteInfo {
	distance := geo.DistanceKm(userLat, userLon, shelterLat, shelterLon)

	speed := rk.TravelSpeedKmh
	if speed <= 0 {
		speed = 40
	}
	baseTimeMinutes := (distance / speed) * 60

	minZoneDistance := math.Inf(1)
	for _, zone := range zones {
		d := geo.DistanceKm(userLat, userLon, zone.Latitude, zone.Longitude)
		if d < minZoneDistance {
			minZoneDistance = d
		}
	}

	var safety float64
	switch {
	case minZoneDistance < 2:
		safety = 0.2
		baseTimeMinutes *= 1.5
	case minZoneDistance < 5:
		safety = 0.5
		baseTimeMinutes *= 1.2
	case minZoneDistance < 10:
		safety = 0.7
	default:
		safety = 0.95
	}

	if blockedRoads > 0 {
		safety -= 0.05 * float64(blockedRoads)
		if safety < 0.1 {
			safety = 0.1
		}
		baseTimeMinutes += 10 * float64(blockedRoads)
	}

	return RouteInfo{
		DistanceKm:           round2(distance),
		EstimatedTimeMinutes: int(baseTimeMinutes),
		SafetyScore:          round2(safety),
		DisasterDistanceKm:   round2(minZoneDistance),
		Recommended:          safety > 0.6,
	}
}

// CapacityScore возвращает долю свободных мест, ограниченную диапазоном [0,1].
// Данные о переполненных убежищах не отклоняются, а приводятся к границе.
func CapacityScore(shelter *models.Shelter) float64 {
	capacity := shelter.Capacity
	if capacity < 1 {
		capacity = 1
	}
	return clamp01(float64(shelter.Capacity-shelter.Occupancy) / float64(capacity))
}

// Rank оценивает каждое убежище и возвращает не более TopN лучших.
// Сортировка по убыванию комбинированной оценки; при равенстве ближе
// расположенное убежище идет раньше. Пустой список убежищ дает пустой
// результат, а не ошибку.
func (rk Ranker) Rank(userLat, userLon float64, zones []*models.DisasterZone, shelters []*models.Shelter, blockedRoads int) []*models.RankedShelter {
	ranked := make([]*models.RankedShelter, 0, len(shelters))

	for _, shelter := range shelters {
		route := rk.RouteSafety(userLat, userLon, shelter.Latitude, shelter.Longitude, zones, blockedRoads)
		capacityScore := CapacityScore(shelter)
		combined := rk.SafetyWeight*route.SafetyScore + rk.CapacityWeight*capacityScore

		ranked = append(ranked, &models.RankedShelter{
			ShelterID:            shelter.ID,
			Name:                 shelter.Name,
			Latitude:             shelter.Latitude,
			Longitude:            shelter.Longitude,
			DistanceKm:           route.DistanceKm,
			EstimatedTimeMinutes: route.EstimatedTimeMinutes,
			SafetyScore:          route.SafetyScore,
			CapacityAvailable:    shelter.Capacity - shelter.Occupancy,
			CombinedScore:        round2(combined),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].CombinedScore != ranked[j].CombinedScore {
			return ranked[i].CombinedScore > ranked[j].CombinedScore
		}
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	topN := rk.TopN
	if topN <= 0 {
		topN = 3
	}
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

func round2(v float64) float64 {
	if math.IsInf(v, 0) {
		return v
	}
	return math.Round(v*100) / 100
}
