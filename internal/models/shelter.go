package models

// Shelter - убежище из реестра. Превышение вместимости не запрещается на этом
// уровне: движок ранжирования сам ограничивает долю доступности диапазоном [0,1].
type Shelter struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Capacity  int     `json:"capacity"`
	Occupancy int     `json:"current_occupancy"`
}

// RankedShelter - убежище с рассчитанными оценками маршрута и вместимости.
type RankedShelter struct {
	ShelterID            string  `json:"shelter_id"`
	Name                 string  `json:"name"`
	Latitude             float64 `json:"latitude"`
	Longitude            float64 `json:"longitude"`
	DistanceKm           float64 `json:"distance_km"`
	EstimatedTimeMinutes int     `json:"estimated_time_minutes"`
	SafetyScore          float64 `json:"safety_score"`
	CapacityAvailable    int     `json:"capacity_available"`
	CombinedScore        float64 `json:"combined_score"`
}
