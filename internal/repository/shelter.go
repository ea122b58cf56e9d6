package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shenikar/disaster_response_system/internal/models"
)

// ShelterRepository читает реестр убежищ из PostgreSQL.
// Реестр заполняется миграциями и обновляется вне этого сервиса.
type ShelterRepository struct {
	db *pgxpool.Pool
}

func NewShelterRepository(db *pgxpool.Pool) *ShelterRepository {
	return &ShelterRepository{db: db}
}

// ListShelters возвращает все убежища реестра
func (r *ShelterRepository) ListShelters(ctx context.Context) ([]*models.Shelter, error) {
	query := `
		SELECT id, name, latitude, longitude, capacity, current_occupancy
		FROM shelters
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shelters: %w", err)
	}
	defer rows.Close()

	shelters := make([]*models.Shelter, 0)
	for rows.Next() {
		shelter := &models.Shelter{}
		err := rows.Scan(
			&shelter.ID,
			&shelter.Name,
			&shelter.Latitude,
			&shelter.Longitude,
			&shelter.Capacity,
			&shelter.Occupancy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shelter row: %w", err)
		}
		shelters = append(shelters, shelter)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error shelter list iteration: %w", err)
	}
	return shelters, nil
}
