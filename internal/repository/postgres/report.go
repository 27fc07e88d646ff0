package postgres

import (
	"context"
	"fmt"

	"github.com/shenikar/civic_guardian/internal/models"
)

// CreateReport сохраняет обращение. Статус всегда pending.
func (r *Repository) CreateReport(ctx context.Context, d models.ReportDraft) (int64, error) {
	query := `
		INSERT INTO reports (fullname, contact, category, description, latitude, longitude, report_date, photo_name, photo_blob, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id;
	`
	var id int64
	err := r.db.QueryRow(ctx, query,
		d.FullName,
		d.Contact,
		string(d.Category),
		d.Description,
		models.FormatCoordinate(d.Latitude),
		models.FormatCoordinate(d.Longitude),
		d.Date,
		d.PhotoName,
		d.Photo,
		string(models.StatusPending),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create report: %w", err)
	}
	return id, nil
}

// ListReports возвращает все обращения в порядке вставки
func (r *Repository) ListReports(ctx context.Context) ([]models.Report, error) {
	query := `
		SELECT id, fullname, contact, category, description, latitude, longitude,
			report_date, photo_name, photo_blob, created_at, status
		FROM reports
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	reports := make([]models.Report, 0)
	for rows.Next() {
		var (
			report           models.Report
			lat, lng         *string
			category, status string
		)
		err := rows.Scan(
			&report.ID,
			&report.FullName,
			&report.Contact,
			&category,
			&report.Description,
			&lat,
			&lng,
			&report.Date,
			&report.PhotoName,
			&report.Photo,
			&report.CreatedAt,
			&status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		report.Category = models.Category(category)
		report.Status = models.ReportStatus(status)
		if report.Latitude, err = models.ParseCoordinate(lat); err != nil {
			return nil, fmt.Errorf("report %d: %w", report.ID, err)
		}
		if report.Longitude, err = models.ParseCoordinate(lng); err != nil {
			return nil, fmt.Errorf("report %d: %w", report.ID, err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return reports, nil
}

// UpdateReportStatus меняет статус. false - обращения с таким id нет.
func (r *Repository) UpdateReportStatus(ctx context.Context, id int64, status models.ReportStatus) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `UPDATE reports SET status = $1 WHERE id = $2;`, string(status), id)
	if err != nil {
		return false, fmt.Errorf("failed to update report status: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// DeleteReport удаляет обращение. Инциденты на карте остаются.
func (r *Repository) DeleteReport(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM reports WHERE id = $1;`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete report: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}
