package models

import (
	"time"
)

const (
	// DefaultSeverity используется, когда отправитель не указал серьезность
	DefaultSeverity = 5

	MinSeverity = 1
	MaxSeverity = 10
)

// CitizenReport - сообщение жителя об опасности. Создается при отправке,
// далее не изменяется и хранится бессрочно.
type CitizenReport struct {
	ID          string    `json:"report_id"`
	UserID      string    `json:"user_id"`
	Timestamp   time.Time `json:"timestamp"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	HazardType  string    `json:"report_type"`
	Severity    int       `json:"severity"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url,omitempty"`
}

// ClampSeverity приводит серьезность к допустимому диапазону [1,10].
// Нулевое значение трактуется как отсутствующее поле и заменяется на DefaultSeverity.
func ClampSeverity(severity int) int {
	if severity == 0 {
		return DefaultSeverity
	}
	if severity < MinSeverity {
		return MinSeverity
	}
	if severity > MaxSeverity {
		return MaxSeverity
	}
	return severity
}
