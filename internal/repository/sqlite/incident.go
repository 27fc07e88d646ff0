package sqlite

import (
	"context"
	"fmt"

	"github.com/shenikar/civic_guardian/internal/models"
)

func (r *Repository) CreateIncident(ctx context.Context, d models.IncidentDraft) (int64, error) {
	query := `
		INSERT INTO incidents (lat, lng, category, description, display_time, distance_label)
		VALUES (?, ?, ?, ?, ?, ?);
	`
	res, err := r.db.ExecContext(ctx, query,
		models.FormatCoordinate(d.Latitude),
		models.FormatCoordinate(d.Longitude),
		string(d.Category),
		d.Description,
		d.DisplayTime,
		d.DistanceLabel,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create incident: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read incident id: %w", err)
	}
	return id, nil
}

func (r *Repository) ListIncidents(ctx context.Context) ([]models.Incident, error) {
	query := `
		SELECT id, lat, lng, category, description, display_time, distance_label, created_at
		FROM incidents
		ORDER BY id;
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer func() { _ = rows.Close() }()

	incidents := make([]models.Incident, 0)
	for rows.Next() {
		var (
			incident            models.Incident
			lat, lng            *string
			category, createdAt string
		)
		err := rows.Scan(
			&incident.ID,
			&lat,
			&lng,
			&category,
			&incident.Description,
			&incident.DisplayTime,
			&incident.DistanceLabel,
			&createdAt,
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
		if incident.CreatedAt, err = parseTimestamp(createdAt); err != nil {
			return nil, fmt.Errorf("incident %d: %w", incident.ID, err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}
