package v1

import (
	"time"
)

// SubmitReportRequest DTO для отправки сообщения жителем
// @Description DTO для отправки сообщения об опасности
type SubmitReportRequest struct {
	UserID      string  `json:"user_id,omitempty"`
	Latitude    float64 `json:"latitude" validate:"required,latitude"`
	Longitude   float64 `json:"longitude" validate:"required,longitude"`
	HazardType  string  `json:"report_type" validate:"required,min=2,max=64"`
	Severity    int     `json:"severity" validate:"omitempty,min=0,max=10"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"image_url,omitempty" validate:"omitempty,url"`
}

// SubmitReportResponse DTO для ответа на отправку сообщения
// @Description DTO с идентификатором принятого сообщения
type SubmitReportResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	ReportID string `json:"report_id"`
}

// EvacuationRequest DTO для запроса плана эвакуации
// @Description DTO с координатами пользователя
type EvacuationRequest struct {
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

// UserLocation - координаты пользователя в ответе
type UserLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// EvacuationResponse DTO для ответа с планом эвакуации
// @Description DTO с ранжированными убежищами
type EvacuationResponse struct {
	Status              string        `json:"status"`
	UserLocation        UserLocation  `json:"user_location"`
	RecommendedShelters []ShelterRank `json:"recommended_shelters"`
	DisasterZonesNearby int           `json:"disaster_zones_nearby"`
}

// ShelterRank - убежище с оценками в ответе API
type ShelterRank struct {
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

// ListResponse DTO для ответов-коллекций
// @Description Обертка коллекции с количеством элементов
type ListResponse struct {
	Status    string    `json:"status"`
	Count     int       `json:"count"`
	Timestamp time.Time `json:"timestamp,omitempty"`
	Data      any       `json:"data"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO со сводной статистикой системы
type StatsResponse struct {
	Status string `json:"status"`
	Stats  any    `json:"stats"`
}
