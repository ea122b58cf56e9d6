package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Health-check остается открытым: регистрируется до middleware
	api.GET("/system/health", h.healthCheck)

	if len(h.cfg.APIKeys) > 0 {
		api.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}

	// Погода и риски
	api.GET("/weather", h.getWeather)
	api.GET("/risk-predictions", h.getRiskPredictions)
	api.GET("/alerts", h.getAlerts)

	// Сообщения жителей
	reports := api.Group("/reports")
	{
		reports.POST("", h.submitReport)
		reports.GET("", h.listReports)
		reports.GET("/verified", h.getVerifiedIncidents)
	}

	// Эвакуация
	evacuation := api.Group("/evacuation")
	{
		evacuation.GET("/shelters", h.getShelters)
		evacuation.POST("/route", h.getEvacuationRoute)
	}

	// Распределение ресурсов и статистика
	api.GET("/resources/allocation", h.getResourceAllocation)
	api.GET("/stats", h.getStats)
}
