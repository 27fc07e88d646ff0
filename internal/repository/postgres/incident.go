package postgres

import (
	"context"
	"fmt"

	"github.com/shenikar/civic_guardian/internal/models"
)

// CreateIncident создает новую запись об инциденте в бд
func (r *Repository) CreateIncident(ctx context.Context, d models.IncidentDraft) (int64, error) {
	query := `
		INSERT INTO incidents (lat, lng, category, description, display_time, distance_label)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;
	`
	var id int64
	err := r.db.QueryRow(ctx, query,
		models.FormatCoordinate(d.Latitude),
		models.FormatCoordinate(d.Longitude),
		string(d.Category),
		d.Description,
		d.DisplayTime,
		d.DistanceLabel,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create incident: %w", err)
	}
	return id, nil
}

// ListIncidents возвращает все инциденты в порядке вставки
func (r *Repository) ListIncidents(ctx context.Context) ([]models.Incident, error) {
	query := `
		SELECT id, lat, lng, category, description, display_time, distance_label, created_at
		FROM incidents
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]models.Incident, 0)
	for rows.Next() {
		var (
			incident models.Incident
			lat, lng *string
			category string
		)
		err := rows.Scan(
			&incident.ID,
			&lat,
			&lng,
			&category,
			&incident.Description,
			&incident.DisplayTime,
			&incident.DistanceLabel,
			&incident.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incident.Category = models.Category(category)
		if incident.Latitude, err = models.ParseCoordinate(lat); err != nil {
			return nil, fmt.Errorf("incident %d: %w", incident.ID, err)
		}
		if incident.Longitude, err = models.ParseCoordinate(lng); err != nil {
			return nil, fmt.Errorf("incident %d: %w", incident.ID, err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}
