package models

import (
	"time"
)

// Типы опасностей, оцениваемые скорером рисков.
const (
	HazardFlood     = "flood"
	HazardFire      = "fire"
	HazardHurricane = "hurricane"
)

// RiskPrediction - оценка риска для одной локации по одному измерению погоды.
// Замещается (не сливается) результатом следующего цикла обновления.
type RiskPrediction struct {
	Location         string    `json:"location"`
	Latitude         float64   `json:"latitude"`
	Longitude        float64   `json:"longitude"`
	Timestamp        time.Time `json:"timestamp"`
	RiskScore        float64   `json:"risk_score"`
	HazardType       string    `json:"predicted_event_type"`
	Confidence       float64   `json:"confidence"`
	TimeToEventHours float64   `json:"time_to_event_hours"`
	Recommendation   string    `json:"recommended_actions"`
}
