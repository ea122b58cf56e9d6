package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/shenikar/disaster_response_system/internal/geo"
	"github.com/shenikar/disaster_response_system/internal/models"
)

// Verifier кросс-верифицирует группы сообщений жителей.
// Конфигурация - чистые параметры, внутреннего состояния нет.
type Verifier struct {
	CellSizeDeg       float64 // размер ячейки сетки, градусы
	MinReportCount    int     // минимум сообщений для статуса verified
	MinConfidence     float64 // минимальная уверенность для статуса verified
	VarianceThreshold float64 // порог дисперсии, выше которого уверенность штрафуется
}

// NewVerifier возвращает верификатор с заданными порогами.
func NewVerifier(cellSizeDeg float64, minReports int, minConfidence, varianceThreshold float64) Verifier {
	return Verifier{
		CellSizeDeg:       cellSizeDeg,
		MinReportCount:    minReports,
		MinConfidence:     minConfidence,
		VarianceThreshold: varianceThreshold,
	}
}

// Verification - результат проверки одной группы сообщений.
type Verification struct {
	Verified          bool
	Confidence        float64
	ReportCount       int
	ConsensusSeverity int
	Variance          float64
}

// Verify проверяет согласованность группы сообщений. Для пустой группы и
// группы из одного сообщения возвращается вырожденный результат с низкой
// уверенностью - деления на ноль нет. Уверенность насыщается на 0.95:
// никакой объем сообщений сам по себе не дает определенности.
func (v Verifier) Verify(reports []*models.CitizenReport) Verification {
	if len(reports) < 2 {
		severity := models.DefaultSeverity
		if len(reports) == 1 {
			severity = models.ClampSeverity(reports[0].Severity)
		}
		return Verification{
			Verified:          false,
			Confidence:        0.3,
			ReportCount:       len(reports),
			ConsensusSeverity: severity,
		}
	}

	sum := 0.0
	for _, r := range reports {
		sum += float64(models.ClampSeverity(r.Severity))
	}
	mean := sum / float64(len(reports))

	variance := 0.0
	for _, r := range reports {
		d := float64(models.ClampSeverity(r.Severity)) - mean
		variance += d * d
	}
	variance /= float64(len(reports))

	confidence := 0.3 + float64(len(reports))*0.15
	if confidence > 0.95 {
		confidence = 0.95
	}

	// Сильный разброс оценок снижает доверие к группе
	if variance > v.VarianceThreshold {
		confidence *= 0.7
	}

	return Verification{
		Verified:          len(reports) >= v.MinReportCount && confidence > v.MinConfidence,
		Confidence:        confidence,
		ReportCount:       len(reports),
		ConsensusSeverity: int(mean),
		Variance:          variance,
	}
}

// groupKey - ключ группировки: ячейка сетки плюс тип опасности. Сообщения о
// разных опасностях в одной ячейке не смешиваются.
type groupKey struct {
	cell   geo.CellKey
	hazard string
}

// BuildIncidents группирует сообщения по (ячейка, тип опасности), проверяет
// каждую группу и собирает инциденты с центроидом группы. В выдачу попадают
// группы минимум из двух сообщений, прошедшие верификацию или набравшие три и
// более сообщений. Результат отсортирован по убыванию уверенности, при
// равенстве - по идентификатору инцидента (детерминированная выдача).
func (v Verifier) BuildIncidents(reports []*models.CitizenReport) []*models.VerifiedIncident {
	groups := make(map[groupKey][]*models.CitizenReport)
	for _, r := range reports {
		key := groupKey{
			cell:   geo.Cell(r.Latitude, r.Longitude, v.CellSizeDeg),
			hazard: r.HazardType,
		}
		groups[key] = append(groups[key], r)
	}

	incidents := make([]*models.VerifiedIncident, 0)
	for key, group := range groups {
		if len(group) < 2 {
			continue
		}

		result := v.Verify(group)
		if !result.Verified && result.ReportCount < v.MinReportCount {
			continue
		}

		var sumLat, sumLon float64
		var latest time.Time
		for _, r := range group {
			sumLat += r.Latitude
			sumLon += r.Longitude
			if r.Timestamp.After(latest) {
				latest = r.Timestamp
			}
		}

		incidents = append(incidents, &models.VerifiedIncident{
			ID:                fmt.Sprintf("INC-%s-%s", key.hazard, key.cell),
			GridCell:          key.cell.String(),
			HazardType:        key.hazard,
			Latitude:          sumLat / float64(len(group)),
			Longitude:         sumLon / float64(len(group)),
			ReportCount:       result.ReportCount,
			Verified:          result.Verified,
			Confidence:        result.Confidence,
			ConsensusSeverity: result.ConsensusSeverity,
			Variance:          result.Variance,
			LatestReportAt:    latest,
		})
	}

	sort.Slice(incidents, func(i, j int) bool {
		if incidents[i].Confidence != incidents[j].Confidence {
			return incidents[i].Confidence > incidents[j].Confidence
		}
		return incidents[i].ID < incidents[j].ID
	})

	return incidents
}
