package v1

import (
	"github.com/shenikar/disaster_response_system/internal/models"
)

// DTOToReportModel преобразует DTO отправки сообщения в доменную модель.
// Значения по умолчанию применяет сервис на границе приема.
func DTOToReportModel(dto SubmitReportRequest) *models.CitizenReport {
	return &models.CitizenReport{
		UserID:      dto.UserID,
		Latitude:    dto.Latitude,
		Longitude:   dto.Longitude,
		HazardType:  dto.HazardType,
		Severity:    dto.Severity,
		Description: dto.Description,
		ImageURL:    dto.ImageURL,
	}
}

// ModelToShelterRank преобразует ранжированное убежище в DTO для ответа
func ModelToShelterRank(model *models.RankedShelter) ShelterRank {
	return ShelterRank{
		ShelterID:            model.ShelterID,
		Name:                 model.Name,
		Latitude:             model.Latitude,
		Longitude:            model.Longitude,
		DistanceKm:           model.DistanceKm,
		EstimatedTimeMinutes: model.EstimatedTimeMinutes,
		SafetyScore:          model.SafetyScore,
		CapacityAvailable:    model.CapacityAvailable,
		CombinedScore:        model.CombinedScore,
	}
}

// ModelsToShelterRanks преобразует слайс моделей в слайс DTO
func ModelsToShelterRanks(models []*models.RankedShelter) []ShelterRank {
	ranks := make([]ShelterRank, len(models))
	for i, model := range models {
		ranks[i] = ModelToShelterRank(model)
	}
	return ranks
}
