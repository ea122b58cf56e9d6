package engine

import (
	"testing"
	"time"

	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVerifier() Verifier {
	return NewVerifier(0.1, 3, 0.6, 9)
}

func TestVerify_EmptyGroup(t *testing.T) {
	result := newTestVerifier().Verify(nil)

	assert.False(t, result.Verified)
	assert.Equal(t, 0.3, result.Confidence)
	assert.Equal(t, 0, result.ReportCount)
	assert.Equal(t, models.DefaultSeverity, result.ConsensusSeverity)
}

func TestVerify_SingleReport(t *testing.T) {
	reports := []*models.CitizenReport{
		{ID: "r1", Severity: 7},
	}

	result := newTestVerifier().Verify(reports)

	assert.False(t, result.Verified)
	assert.Equal(t, 0.3, result.Confidence)
	assert.Equal(t, 1, result.ReportCount)
	assert.Equal(t, 7, result.ConsensusSeverity)
}

func TestVerify_SingleReport_ZeroSeverityDefaults(t *testing.T) {
	reports := []*models.CitizenReport{
		{ID: "r1", Severity: 0},
	}

	result := newTestVerifier().Verify(reports)

	assert.Equal(t, models.DefaultSeverity, result.ConsensusSeverity)
}

func TestVerify_ConsistentGroup(t *testing.T) {
	// Три согласованных сообщения: дисперсия 0, уверенность 0.3 + 3*0.15
	reports := []*models.CitizenReport{
		{ID: "r1", Severity: 7},
		{ID: "r2", Severity: 7},
		{ID: "r3", Severity: 7},
	}

	result := newTestVerifier().Verify(reports)

	assert.True(t, result.Verified)
	assert.InDelta(t, 0.75, result.Confidence, 1e-9)
	assert.Equal(t, 3, result.ReportCount)
	assert.Equal(t, 7, result.ConsensusSeverity)
	assert.Equal(t, 0.0, result.Variance)
}

func TestVerify_HighVariancePenalized(t *testing.T) {
	// Сильный разброс оценок: дисперсия 15.36 выше порога,
	// уверенность 0.95 * 0.7 = 0.665 - группа все еще verified
	reports := []*models.CitizenReport{
		{ID: "r1", Severity: 1},
		{ID: "r2", Severity: 1},
		{ID: "r3", Severity: 1},
		{ID: "r4", Severity: 9},
		{ID: "r5", Severity: 9},
	}

	result := newTestVerifier().Verify(reports)

	assert.InDelta(t, 15.36, result.Variance, 1e-9)
	assert.InDelta(t, 0.665, result.Confidence, 1e-9)
	assert.True(t, result.Verified)
	assert.Equal(t, 4, result.ConsensusSeverity)
}

func TestVerify_ConfidenceSaturates(t *testing.T) {
	reports := make([]*models.CitizenReport, 0, 10)
	for i := 0; i < 10; i++ {
		reports = append(reports, &models.CitizenReport{Severity: 6})
	}

	result := newTestVerifier().Verify(reports)

	assert.Equal(t, 0.95, result.Confidence)
	assert.True(t, result.Verified)
}

func TestVerify_TwoReportsBelowThreshold(t *testing.T) {
	// Два сообщения дают уверенность ровно 0.6 - строгое сравнение не пропускает
	reports := []*models.CitizenReport{
		{ID: "r1", Severity: 5},
		{ID: "r2", Severity: 5},
	}

	result := newTestVerifier().Verify(reports)

	assert.False(t, result.Verified)
	assert.InDelta(t, 0.6, result.Confidence, 1e-9)
}

func TestBuildIncidents_GroupsByCellAndHazard(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	reports := []*models.CitizenReport{
		// Согласованная группа из трех сообщений в одной ячейке
		{ID: "r1", Latitude: 10.01, Longitude: 20.01, HazardType: models.HazardFlood, Severity: 7, Timestamp: base},
		{ID: "r2", Latitude: 10.02, Longitude: 20.02, HazardType: models.HazardFlood, Severity: 7, Timestamp: base.Add(5 * time.Minute)},
		{ID: "r3", Latitude: 10.03, Longitude: 20.03, HazardType: models.HazardFlood, Severity: 7, Timestamp: base.Add(2 * time.Minute)},
		// Та же ячейка, другая опасность - отдельная группа из одного сообщения
		{ID: "r4", Latitude: 10.01, Longitude: 20.01, HazardType: models.HazardFire, Severity: 9, Timestamp: base},
		// Одиночное сообщение в другой ячейке
		{ID: "r5", Latitude: 50.0, Longitude: 50.0, HazardType: models.HazardFlood, Severity: 3, Timestamp: base},
	}

	incidents := newTestVerifier().BuildIncidents(reports)

	require.Len(t, incidents, 1)
	incident := incidents[0]
	assert.Equal(t, "INC-flood-100,200", incident.ID)
	assert.Equal(t, models.HazardFlood, incident.HazardType)
	assert.Equal(t, 3, incident.ReportCount)
	assert.True(t, incident.Verified)
	assert.InDelta(t, 0.75, incident.Confidence, 1e-9)
	assert.Equal(t, 7, incident.ConsensusSeverity)
	assert.InDelta(t, 10.02, incident.Latitude, 1e-9)
	assert.InDelta(t, 20.02, incident.Longitude, 1e-9)
	assert.Equal(t, base.Add(5*time.Minute), incident.LatestReportAt)
}

func TestBuildIncidents_TwoReportGroupDropped(t *testing.T) {
	// Пара сообщений не проходит: уверенность не выше порога, количество ниже минимума
	reports := []*models.CitizenReport{
		{ID: "r1", Latitude: 10.01, Longitude: 20.01, HazardType: models.HazardFire, Severity: 5},
		{ID: "r2", Latitude: 10.02, Longitude: 20.02, HazardType: models.HazardFire, Severity: 5},
	}

	incidents := newTestVerifier().BuildIncidents(reports)

	assert.Empty(t, incidents)
}

func TestBuildIncidents_SortedByConfidenceDesc(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	reports := []*models.CitizenReport{
		// Четыре сообщения: уверенность 0.9
		{ID: "a1", Latitude: 30.01, Longitude: 30.01, HazardType: models.HazardFlood, Severity: 6, Timestamp: base},
		{ID: "a2", Latitude: 30.02, Longitude: 30.02, HazardType: models.HazardFlood, Severity: 6, Timestamp: base},
		{ID: "a3", Latitude: 30.03, Longitude: 30.03, HazardType: models.HazardFlood, Severity: 6, Timestamp: base},
		{ID: "a4", Latitude: 30.04, Longitude: 30.04, HazardType: models.HazardFlood, Severity: 6, Timestamp: base},
		// Три сообщения: уверенность 0.75
		{ID: "b1", Latitude: 40.01, Longitude: 40.01, HazardType: models.HazardFire, Severity: 8, Timestamp: base},
		{ID: "b2", Latitude: 40.02, Longitude: 40.02, HazardType: models.HazardFire, Severity: 8, Timestamp: base},
		{ID: "b3", Latitude: 40.03, Longitude: 40.03, HazardType: models.HazardFire, Severity: 8, Timestamp: base},
	}

	incidents := newTestVerifier().BuildIncidents(reports)

	require.Len(t, incidents, 2)
	assert.Equal(t, models.HazardFlood, incidents[0].HazardType)
	assert.Equal(t, models.HazardFire, incidents[1].HazardType)
	assert.Greater(t, incidents[0].Confidence, incidents[1].Confidence)
}
