package sqlite

import (
	"context"
	"fmt"

	"github.com/shenikar/civic_guardian/internal/models"
)

func (r *Repository) CreateReport(ctx context.Context, d models.ReportDraft) (int64, error) {
	query := `
		INSERT INTO reports (fullname, contact, category, description, latitude, longitude, report_date, photo_name, photo_blob, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	var photo any
	if len(d.Photo) > 0 {
		photo = d.Photo
	}
	res, err := r.db.ExecContext(ctx, query,
		d.FullName,
		d.Contact,
		string(d.Category),
		d.Description,
		models.FormatCoordinate(d.Latitude),
		models.FormatCoordinate(d.Longitude),
		d.Date,
		d.PhotoName,
		photo,
		string(models.StatusPending),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create report: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read report id: %w", err)
	}
	return id, nil
}

func (r *Repository) ListReports(ctx context.Context) ([]models.Report, error) {
	query := `
		SELECT id, fullname, contact, category, description, latitude, longitude,
			report_date, photo_name, photo_blob, created_at, status
		FROM reports
		ORDER BY id;
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer func() { _ = rows.Close() }()

	reports := make([]models.Report, 0)
	for rows.Next() {
		var (
			report                      models.Report
			lat, lng                    *string
			category, status, createdAt string
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
			&createdAt,
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
		if report.CreatedAt, err = parseTimestamp(createdAt); err != nil {
			return nil, fmt.Errorf("report %d: %w", report.ID, err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return reports, nil
}

func (r *Repository) UpdateReportStatus(ctx context.Context, id int64, status models.ReportStatus) (bool, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE reports SET status = ? WHERE id = ?;`, string(status), id)
	if err != nil {
		return false, fmt.Errorf("failed to update report status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}

func (r *Repository) DeleteReport(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reports WHERE id = ?;`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete report: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}
