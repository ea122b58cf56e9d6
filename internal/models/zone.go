package models

// DisasterZone - входная точка для скоринга: координаты, серьезность и
// оценочный охват. Отдельно не хранится, выводится из предсказаний риска
// и верифицированных инцидентов.
type DisasterZone struct {
	ID               string  `json:"zone_id"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	Severity         int     `json:"severity"`
	AffectedRadiusKm float64 `json:"affected_radius_km"`
	Population       int     `json:"population"`
}

// Метки срочности отправки ресурсов.
const (
	UrgencyImmediate = "IMMEDIATE"
	UrgencyHigh      = "HIGH"
	UrgencyNormal    = "NORMAL"
)

// ResourceNeeds - целочисленные квоты ресурсов, рассчитанные от серьезности зоны.
type ResourceNeeds struct {
	MedicalTeams   int `json:"medical_teams"`
	WaterSupplies  int `json:"water_supplies"`
	FoodSupplies   int `json:"food_supplies"`
	RescueVehicles int `json:"rescue_vehicles"`
}

// ResourceAllocation - рекомендация по распределению ресурсов для одной зоны.
type ResourceAllocation struct {
	ZoneID    string        `json:"disaster_id"`
	Location  string        `json:"location"`
	Priority  float64       `json:"priority"`
	Severity  int           `json:"severity"`
	Needs     ResourceNeeds `json:"needed_resources"`
	Urgency   string        `json:"dispatch_urgency"`
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
}
