package models

import (
	"time"
)

// Snapshot - неизменяемый пакет данных последнего цикла обновления.
// Публикуется координатором целиком (атомарная подмена ссылки), поэтому
// читатели никогда не видят частично обновленное состояние.
type Snapshot struct {
	Version      int64                 `json:"version"`
	FetchedAt    time.Time             `json:"fetched_at"`
	Observations []*WeatherObservation `json:"observations"`
	Predictions  []*RiskPrediction     `json:"predictions"`
	Alerts       []*Alert              `json:"alerts"`
}

// SystemStats - сводная статистика системы для панели мониторинга.
type SystemStats struct {
	MonitoredLocations      int `json:"monitored_locations"`
	HighRiskZones           int `json:"high_risk_zones"`
	ModerateRiskZones       int `json:"moderate_risk_zones"`
	TotalCitizenReports     int `json:"total_citizen_reports"`
	ActiveReporters         int `json:"active_reporters"`
	VerifiedIncidents       int `json:"verified_incidents"`
	AvailableShelters       int `json:"available_shelters"`
	TotalShelterCapacity    int `json:"total_shelter_capacity"`
	CurrentShelterOccupancy int `json:"current_shelter_occupancy"`
	ShelterAvailabilityPct  int `json:"shelter_availability_percent"`
}
