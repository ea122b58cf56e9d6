package models

import (
	"time"
)

// VerifiedIncident - результат кросс-верификации группы сообщений в одной
// ячейке сетки с одним типом опасности. Производная сущность: пересчитывается
// из текущего набора сообщений, собственного жизненного цикла не имеет.
type VerifiedIncident struct {
	ID                string    `json:"incident_id"`
	GridCell          string    `json:"grid_cell"`
	HazardType        string    `json:"report_type"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	ReportCount       int       `json:"report_count"`
	Verified          bool      `json:"verified"`
	Confidence        float64   `json:"confidence"`
	ConsensusSeverity int       `json:"severity"`
	Variance          float64   `json:"variance"`
	LatestReportAt    time.Time `json:"latest_report_at"`
}
