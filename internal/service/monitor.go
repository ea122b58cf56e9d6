package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/disaster_response_system/internal/config"
	"github.com/shenikar/disaster_response_system/internal/engine"
	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/shenikar/disaster_response_system/internal/webhook"
)

// ReportRepository определяет контракт для хранения сообщений жителей
type ReportRepository interface {
	SaveReport(ctx context.Context, report *models.CitizenReport) error
	ListReports(ctx context.Context) ([]*models.CitizenReport, error)
	CountReports(ctx context.Context) (int, error)
	CountRecentReporters(ctx context.Context, minutes int) (int, error)
}

// ShelterRepository определяет контракт для чтения реестра убежищ
type ShelterRepository interface {
	ListShelters(ctx context.Context) ([]*models.Shelter, error)
}

// SnapshotCache определяет контракт для кэширования последнего снимка
type SnapshotCache interface {
	GetSnapshot(ctx context.Context) (*models.Snapshot, error)
	SetSnapshot(ctx context.Context, snapshot *models.Snapshot) error
}

// WeatherProvider определяет контракт внешнего источника погоды
type WeatherProvider interface {
	Fetch(ctx context.Context, locations []config.MonitoredLocation) ([]*models.WeatherObservation, error)
}

// MonitorService определяет контракт бизнес-логики мониторинга бедствий
type MonitorService interface {
	Bootstrap(ctx context.Context)
	Refresh(ctx context.Context) error
	Snapshot() *models.Snapshot
	RiskPredictions(minRisk float64) []*models.RiskPrediction
	Alerts() []*models.Alert
	SubmitReport(ctx context.Context, report *models.CitizenReport) error
	ListReports(ctx context.Context) ([]*models.CitizenReport, error)
	VerifiedIncidents(ctx context.Context) ([]*models.VerifiedIncident, error)
	ListShelters(ctx context.Context) ([]*models.Shelter, error)
	PlanEvacuation(ctx context.Context, lat, lon float64) ([]*models.RankedShelter, int, error)
	Allocations() []*models.ResourceAllocation
	Stats(ctx context.Context) (*models.SystemStats, error)
}

type monitorService struct {
	reports   ReportRepository
	shelters  ShelterRepository
	cache     SnapshotCache
	provider  WeatherProvider
	publisher webhook.AlertPublisher
	logger    *logrus.Logger
	cfg       *config.Config

	verifier engine.Verifier
	ranker   engine.Ranker

	// Текущий опубликованный снимок. Обновляется только атомарной подменой
	// целиком, поэтому читатели всегда видят согласованный пакет.
	snapshot atomic.Pointer[models.Snapshot]
	version  atomic.Int64
}

func NewMonitorService(
	reports ReportRepository,
	shelters ShelterRepository,
	cache SnapshotCache,
	provider WeatherProvider,
	publisher webhook.AlertPublisher,
	logger *logrus.Logger,
	cfg *config.Config,
) MonitorService {
	s := &monitorService{
		reports:   reports,
		shelters:  shelters,
		cache:     cache,
		provider:  provider,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		verifier:  engine.NewVerifier(cfg.GridCellSizeDeg, cfg.MinReportCount, cfg.MinConfidence, cfg.VarianceThreshold),
		ranker:    engine.NewRanker(cfg.TravelSpeedKmh, cfg.SafetyWeight, cfg.CapacityWeight, cfg.TopShelters),
	}
	s.snapshot.Store(&models.Snapshot{})
	return s
}

// Bootstrap пытается восстановить последний снимок из кэша, чтобы отдавать
// данные до первого успешного обращения к провайдеру погоды. Отсутствие
// кэшированного снимка не является ошибкой.
func (s *monitorService) Bootstrap(ctx context.Context) {
	if s.cache == nil {
		return
	}
	snapshot, err := s.cache.GetSnapshot(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to restore snapshot from cache")
		return
	}
	if snapshot != nil {
		s.snapshot.Store(snapshot)
		s.version.Store(snapshot.Version)
		s.logger.WithField("version", snapshot.Version).Info("Restored snapshot from cache")
	}
}

// Refresh получает свежую погоду, пересчитывает предсказания и оповещения и
// публикует новый снимок. При ошибке провайдера предыдущий снимок остается
// действующим - вызывающая сторона повторяет попытку по расписанию.
func (s *monitorService) Refresh(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "monitor",
		"method":  "Refresh",
	})

	observations, err := s.provider.Fetch(ctx, s.cfg.Locations)
	if err != nil {
		log.WithError(err).Error("Failed to fetch weather batch, keeping previous snapshot")
		return fmt.Errorf("service: could not refresh weather batch: %w", err)
	}

	now := time.Now().UTC()
	predictions := engine.AnalyzeBatch(observations)

	alerts := make([]*models.Alert, 0)
	for _, pred := range predictions {
		if pred.RiskScore > s.cfg.RiskAlertThreshold {
			alerts = append(alerts, engine.GenerateAlert(pred, s.cfg.ZonePopulation, now))
		}
	}

	snapshot := &models.Snapshot{
		Version:      s.version.Add(1),
		FetchedAt:    now,
		Observations: observations,
		Predictions:  predictions,
		Alerts:       alerts,
	}
	s.snapshot.Store(snapshot)

	if s.cache != nil {
		if err := s.cache.SetSnapshot(ctx, snapshot); err != nil {
			log.WithError(err).Warn("Failed to cache snapshot")
		}
	}

	s.publishAlerts(ctx, snapshot)

	log.WithFields(logrus.Fields{
		"version":      snapshot.Version,
		"observations": len(observations),
		"alerts":       len(alerts),
	}).Info("Snapshot refreshed")

	for _, pred := range predictions {
		if pred.RiskScore > s.cfg.RiskAlertThreshold {
			log.WithFields(logrus.Fields{
				"location":   pred.Location,
				"event_type": pred.HazardType,
				"risk_score": pred.RiskScore,
			}).Warn("High risk area detected")
		}
	}

	return nil
}

// publishAlerts отправляет серьезные оповещения в очередь вебхуков
func (s *monitorService) publishAlerts(ctx context.Context, snapshot *models.Snapshot) {
	if s.publisher == nil {
		return
	}
	for _, alert := range snapshot.Alerts {
		if alert.Level != models.AlertSevere && alert.Level != models.AlertCritical {
			continue
		}
		event := webhook.AlertEvent{
			Alert:     alert,
			Snapshot:  snapshot.Version,
			Published: snapshot.FetchedAt,
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.WithError(err).WithField("alert_id", alert.ID).Warn("Failed to publish alert event")
		}
	}
}

// Snapshot возвращает текущий опубликованный снимок
func (s *monitorService) Snapshot() *models.Snapshot {
	return s.snapshot.Load()
}

// RiskPredictions возвращает предсказания текущего снимка с баллом не ниже minRisk
func (s *monitorService) RiskPredictions(minRisk float64) []*models.RiskPrediction {
	snapshot := s.snapshot.Load()
	predictions := make([]*models.RiskPrediction, 0, len(snapshot.Predictions))
	for _, pred := range snapshot.Predictions {
		if pred.RiskScore >= minRisk {
			predictions = append(predictions, pred)
		}
	}
	return predictions
}

// Alerts возвращает оповещения текущего снимка
func (s *monitorService) Alerts() []*models.Alert {
	return s.snapshot.Load().Alerts
}

// SubmitReport присваивает сообщению идентификатор, применяет значения по
// умолчанию и сохраняет его. Серьезность вне [1,10] приводится к границе,
// а не отклоняется.
func (s *monitorService) SubmitReport(ctx context.Context, report *models.CitizenReport) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "monitor",
		"method":      "SubmitReport",
		"report_type": report.HazardType,
	})

	if report.ID == "" {
		report.ID = uuid.NewString()
	}
	if report.UserID == "" {
		report.UserID = "anonymous"
	}
	if report.Timestamp.IsZero() {
		report.Timestamp = time.Now().UTC()
	}
	report.Severity = models.ClampSeverity(report.Severity)

	if err := s.reports.SaveReport(ctx, report); err != nil {
		log.WithError(err).Error("Failed to save citizen report in repository")
		return fmt.Errorf("service: could not save citizen report: %w", err)
	}

	log.WithField("report_id", report.ID).Info("Citizen report submitted")
	return nil
}

// ListReports возвращает все сообщения жителей
func (s *monitorService) ListReports(ctx context.Context) ([]*models.CitizenReport, error) {
	reports, err := s.reports.ListReports(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list citizen reports from repository")
		return nil, fmt.Errorf("service: could not list citizen reports: %w", err)
	}
	return reports, nil
}

// VerifiedIncidents пересчитывает верифицированные инциденты из текущего
// набора сообщений. Результат производный и нигде не сохраняется.
func (s *monitorService) VerifiedIncidents(ctx context.Context) ([]*models.VerifiedIncident, error) {
	reports, err := s.reports.ListReports(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list citizen reports for verification")
		return nil, fmt.Errorf("service: could not verify citizen reports: %w", err)
	}
	return s.verifier.BuildIncidents(reports), nil
}

// ListShelters возвращает реестр убежищ
func (s *monitorService) ListShelters(ctx context.Context) ([]*models.Shelter, error) {
	shelters, err := s.shelters.ListShelters(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list shelters from repository")
		return nil, fmt.Errorf("service: could not list shelters: %w", err)
	}
	return shelters, nil
}

// PlanEvacuation ранжирует убежища для пользователя. Опасные зоны - локации
// с высоким риском из текущего снимка плюс верифицированные инциденты.
// Возвращает ранжированный список и количество опасных зон поблизости.
func (s *monitorService) PlanEvacuation(ctx context.Context, lat, lon float64) ([]*models.RankedShelter, int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "monitor",
		"method":  "PlanEvacuation",
	})

	shelters, err := s.shelters.ListShelters(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list shelters for evacuation planning")
		return nil, 0, fmt.Errorf("service: could not plan evacuation: %w", err)
	}

	zones := s.hazardZones()

	incidents, err := s.VerifiedIncidents(ctx)
	if err != nil {
		return nil, 0, err
	}
	for _, incident := range incidents {
		if !incident.Verified {
			continue
		}
		zones = append(zones, &models.DisasterZone{
			ID:        incident.ID,
			Latitude:  incident.Latitude,
			Longitude: incident.Longitude,
			Severity:  incident.ConsensusSeverity,
		})
	}

	ranked := s.ranker.Rank(lat, lon, zones, shelters, 0)
	log.WithFields(logrus.Fields{
		"shelters": len(ranked),
		"zones":    len(zones),
	}).Info("Evacuation plan computed")
	return ranked, len(zones), nil
}

// Allocations рассчитывает распределение ресурсов по зонам высокого риска
// текущего снимка
func (s *monitorService) Allocations() []*models.ResourceAllocation {
	return engine.Allocate(s.hazardZones())
}

// hazardZones выводит опасные зоны из предсказаний текущего снимка:
// серьезность и радиус масштабируются от балла риска.
func (s *monitorService) hazardZones() []*models.DisasterZone {
	snapshot := s.snapshot.Load()
	zones := make([]*models.DisasterZone, 0)
	for i, pred := range snapshot.Predictions {
		if pred.RiskScore <= s.cfg.RiskAlertThreshold {
			continue
		}
		zones = append(zones, &models.DisasterZone{
			ID:               fmt.Sprintf("DIS-%d", i),
			Latitude:         pred.Latitude,
			Longitude:        pred.Longitude,
			Severity:         int(pred.RiskScore * 10),
			AffectedRadiusKm: 5 + pred.RiskScore*10,
			Population:       s.cfg.ZonePopulation,
		})
	}
	return zones
}

// Stats собирает сводную статистику по снимку, сообщениям и убежищам
func (s *monitorService) Stats(ctx context.Context) (*models.SystemStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "monitor",
		"method":  "Stats",
	})

	snapshot := s.snapshot.Load()

	stats := &models.SystemStats{
		MonitoredLocations: len(snapshot.Observations),
	}
	for _, pred := range snapshot.Predictions {
		switch {
		case pred.RiskScore > 0.7:
			stats.HighRiskZones++
		case pred.RiskScore >= 0.4:
			stats.ModerateRiskZones++
		}
	}

	totalReports, err := s.reports.CountReports(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to count citizen reports")
		return nil, fmt.Errorf("service: could not collect stats: %w", err)
	}
	stats.TotalCitizenReports = totalReports

	reporters, err := s.reports.CountRecentReporters(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to count recent reporters")
		return nil, fmt.Errorf("service: could not collect stats: %w", err)
	}
	stats.ActiveReporters = reporters

	incidents, err := s.VerifiedIncidents(ctx)
	if err != nil {
		return nil, err
	}
	stats.VerifiedIncidents = len(incidents)

	shelters, err := s.shelters.ListShelters(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list shelters for stats")
		return nil, fmt.Errorf("service: could not collect stats: %w", err)
	}
	stats.AvailableShelters = len(shelters)
	for _, shelter := range shelters {
		stats.TotalShelterCapacity += shelter.Capacity
		stats.CurrentShelterOccupancy += shelter.Occupancy
	}
	if stats.TotalShelterCapacity > 0 {
		free := stats.TotalShelterCapacity - stats.CurrentShelterOccupancy
		stats.ShelterAvailabilityPct = free * 100 / stats.TotalShelterCapacity
	}

	return stats, nil
}
