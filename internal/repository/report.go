package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shenikar/disaster_response_system/internal/models"
)

// ReportRepository хранит сообщения жителей в PostgreSQL.
// Сообщения неизменяемы и хранятся бессрочно: операций обновления нет.
type ReportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{db: db}
}

// SaveReport сохраняет новое сообщение в бд
func (r *ReportRepository) SaveReport(ctx context.Context, report *models.CitizenReport) error {
	query := `
		INSERT INTO citizen_reports (id, user_id, latitude, longitude, hazard_type, severity, description, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db.Exec(ctx, query,
		report.ID,
		report.UserID,
		report.Latitude,
		report.Longitude,
		report.HazardType,
		report.Severity,
		report.Description,
		report.ImageURL,
		report.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to save citizen report: %w", err)
	}
	return nil
}

// ListReports возвращает все сообщения в порядке поступления
func (r *ReportRepository) ListReports(ctx context.Context) ([]*models.CitizenReport, error) {
	query := `
		SELECT id, user_id, latitude, longitude, hazard_type, severity, description, image_url, created_at
		FROM citizen_reports
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list citizen reports: %w", err)
	}
	defer rows.Close()

	reports := make([]*models.CitizenReport, 0)
	for rows.Next() {
		report := &models.CitizenReport{}
		err := rows.Scan(
			&report.ID,
			&report.UserID,
			&report.Latitude,
			&report.Longitude,
			&report.HazardType,
			&report.Severity,
			&report.Description,
			&report.ImageURL,
			&report.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan citizen report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error report list iteration: %w", err)
	}
	return reports, nil
}

// CountReports возвращает общее количество сообщений
func (r *ReportRepository) CountReports(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM citizen_reports;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count citizen reports: %w", err)
	}
	return count, nil
}

// CountRecentReporters возвращает количество уникальных пользователей,
// отправивших сообщения за последние minutes минут
func (r *ReportRepository) CountRecentReporters(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(DISTINCT user_id)
		FROM citizen_reports
		WHERE created_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	err := r.db.QueryRow(ctx, query, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count recent reporters: %w", err)
	}
	return count, nil
}
