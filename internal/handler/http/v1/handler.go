package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/disaster_response_system/internal/config"
	"github.com/shenikar/disaster_response_system/internal/service"
)

type Handler struct {
	monitorService service.MonitorService
	logger         *logrus.Logger
	validate       *validator.Validate
	cfg            *config.Config
}

func NewHandler(monitorService service.MonitorService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		monitorService: monitorService,
		logger:         logger,
		validate:       validator.New(),
		cfg:            cfg,
	}
}

// @Summary Get current weather observations
// @Description Get the latest weather batch for all monitored locations.
// @Tags Weather
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ListResponse
// @Router /weather [get]
func (h *Handler) getWeather(c *gin.Context) {
	snapshot := h.monitorService.Snapshot()
	c.JSON(http.StatusOK, ListResponse{
		Status:    "success",
		Count:     len(snapshot.Observations),
		Timestamp: snapshot.FetchedAt,
		Data:      snapshot.Observations,
	})
}

// @Summary Get risk predictions
// @Description Get risk predictions from the latest refresh cycle, optionally filtered by minimum risk score.
// @Tags Risk
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param min_risk query number false "Minimum risk score" default(0)
// @Success 200 {object} ListResponse
// @Failure 400 {object} map[string]string "Invalid min_risk value"
// @Router /risk-predictions [get]
func (h *Handler) getRiskPredictions(c *gin.Context) {
	minRiskStr := c.DefaultQuery("min_risk", "0")
	minRisk, err := strconv.ParseFloat(minRiskStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_risk value"})
		return
	}

	predictions := h.monitorService.RiskPredictions(minRisk)
	c.JSON(http.StatusOK, ListResponse{
		Status:    "success",
		Count:     len(predictions),
		Timestamp: time.Now().UTC(),
		Data:      predictions,
	})
}

// @Summary Get active alerts
// @Description Get alerts generated from the latest risk predictions.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ListResponse
// @Router /alerts [get]
func (h *Handler) getAlerts(c *gin.Context) {
	alerts := h.monitorService.Alerts()
	c.JSON(http.StatusOK, ListResponse{
		Status: "success",
		Count:  len(alerts),
		Data:   alerts,
	})
}

// @Summary Submit a citizen report
// @Description Submit a new citizen hazard report. Missing severity defaults to 5.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param report body SubmitReportRequest true "Citizen report"
// @Success 201 {object} SubmitReportResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [post]
func (h *Handler) submitReport(c *gin.Context) {
	var input SubmitReportRequest
	log := h.logger.WithField("method", "submitReport")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToReportModel(input)
	if err := h.monitorService.SubmitReport(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to submit report in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, SubmitReportResponse{
		Status:   "success",
		Message:  "Report submitted successfully",
		ReportID: model.ID,
	})
}

// @Summary List citizen reports
// @Description Get all citizen reports in submission order.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ListResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [get]
func (h *Handler) listReports(c *gin.Context) {
	log := h.logger.WithField("method", "listReports")

	reports, err := h.monitorService.ListReports(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list reports from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ListResponse{
		Status: "success",
		Count:  len(reports),
		Data:   reports,
	})
}

// @Summary Get verified incidents
// @Description Get citizen reports clustered by grid cell and hazard type and cross-verified.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ListResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/verified [get]
func (h *Handler) getVerifiedIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "getVerifiedIncidents")

	incidents, err := h.monitorService.VerifiedIncidents(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to build verified incidents in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ListResponse{
		Status: "success",
		Count:  len(incidents),
		Data:   incidents,
	})
}

// @Summary List evacuation shelters
// @Description Get the shelter registry.
// @Tags Evacuation
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ListResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /evacuation/shelters [get]
func (h *Handler) getShelters(c *gin.Context) {
	log := h.logger.WithField("method", "getShelters")

	shelters, err := h.monitorService.ListShelters(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list shelters from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ListResponse{
		Status: "success",
		Count:  len(shelters),
		Data:   shelters,
	})
}

// @Summary Get evacuation plan
// @Description Rank shelters for a user location by route safety and available capacity.
// @Tags Evacuation
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param location body EvacuationRequest true "User location"
// @Success 200 {object} EvacuationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /evacuation/route [post]
func (h *Handler) getEvacuationRoute(c *gin.Context) {
	var input EvacuationRequest
	log := h.logger.WithField("method", "getEvacuationRoute")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shelters, zonesNearby, err := h.monitorService.PlanEvacuation(c.Request.Context(), input.Latitude, input.Longitude)
	if err != nil {
		log.WithError(err).Error("Failed to plan evacuation in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, EvacuationResponse{
		Status: "success",
		UserLocation: UserLocation{
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
		},
		RecommendedShelters: ModelsToShelterRanks(shelters),
		DisasterZonesNearby: zonesNearby,
	})
}

// @Summary Get resource allocation
// @Description Get resource allocation priorities for current high-risk zones.
// @Tags Resources
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ListResponse
// @Router /resources/allocation [get]
func (h *Handler) getResourceAllocation(c *gin.Context) {
	allocations := h.monitorService.Allocations()
	c.JSON(http.StatusOK, ListResponse{
		Status: "success",
		Count:  len(allocations),
		Data:   allocations,
	})
}

// @Summary Get system statistics
// @Description Get summary statistics for monitoring dashboards.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.monitorService.Stats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{
		Status: "success",
		Stats:  stats,
	})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "disaster-response-system"})
}
