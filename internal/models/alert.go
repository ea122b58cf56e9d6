package models

import (
	"time"
)

// Уровни оповещений в порядке возрастания серьезности.
const (
	AlertAdvisory = "ADVISORY"
	AlertModerate = "MODERATE"
	AlertSevere   = "SEVERE"
	AlertCritical = "CRITICAL"
)

// Alert - оповещение, производное от предсказания риска.
type Alert struct {
	ID                 string    `json:"alert_id"`
	Timestamp          time.Time `json:"timestamp"`
	Location           string    `json:"location"`
	Latitude           float64   `json:"latitude"`
	Longitude          float64   `json:"longitude"`
	Level              string    `json:"alert_level"`
	HazardType         string    `json:"event_type"`
	RiskScore          float64   `json:"risk_score"`
	Message            string    `json:"message"`
	ColorCode          string    `json:"color_code"`
	ExpiresAt          time.Time `json:"expires_at"`
	PopulationAffected int       `json:"population_affected"`
}
