package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/shenikar/civic_guardian/internal/models"
)

// dateLayouts - форматы, в которых пользователи указывают дату происшествия
var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05", "01/02/2006"}

var allowedPhotoTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
}

var allowedPhotoExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

// ReportFilter - фильтр списка обращений. Пустые поля не ограничивают выборку.
type ReportFilter struct {
	Category *models.Category
	// From и To сравниваются по календарной дате включительно
	From *time.Time
	To   *time.Time
}

// Match проверяет обращение. Дата берется из поля date, иначе из created_at;
// нераспознанная дата фильтр по дате проходит.
func (f ReportFilter) Match(r models.Report) bool {
	if f.Category != nil && r.Category != *f.Category {
		return false
	}
	if f.From == nil && f.To == nil {
		return true
	}

	day, ok := reportDay(r)
	if !ok {
		return true
	}
	if f.From != nil && day.Before(truncateDay(*f.From)) {
		return false
	}
	if f.To != nil && day.After(truncateDay(*f.To)) {
		return false
	}
	return true
}

func reportDay(r models.Report) (time.Time, bool) {
	if r.Date != nil && strings.TrimSpace(*r.Date) != "" {
		raw := strings.TrimSpace(*r.Date)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return truncateDay(t), true
			}
		}
		return time.Time{}, false
	}
	if r.CreatedAt.IsZero() {
		return time.Time{}, false
	}
	return truncateDay(r.CreatedAt), true
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FilterReports оставляет обращения, подходящие под фильтр, в исходном порядке
func FilterReports(reports []models.Report, f ReportFilter) []models.Report {
	out := make([]models.Report, 0, len(reports))
	for _, r := range reports {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// NewestReports возвращает limit последних обращений по created_at
func NewestReports(reports []models.Report, limit int) []models.Report {
	sorted := slices.Clone(reports)
	slices.SortStableFunc(sorted, func(a, b models.Report) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		}
		return 0
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

func (s *dashboardService) ListReports(ctx context.Context, sid string, filter ReportFilter) ([]models.Report, error) {
	rec, err := s.session(sid)
	if err != nil {
		return nil, err
	}
	return FilterReports(rec.Reports(ctx), filter), nil
}

func (s *dashboardService) RecentReports(ctx context.Context, sid string) ([]models.Report, error) {
	rec, err := s.session(sid)
	if err != nil {
		return nil, err
	}
	return NewestReports(rec.Reports(ctx), recentReportsLimit), nil
}

var csvHeader = []string{
	"id", "fullname", "contact", "category", "description", "latitude", "longitude",
	"date", "photo_name", "created_at", "status",
}

// ExportReportsCSV пишет отфильтрованные обращения в CSV без содержимого фото
func (s *dashboardService) ExportReportsCSV(ctx context.Context, sid string, filter ReportFilter, w io.Writer) error {
	reports, err := s.ListReports(ctx, sid, filter)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("service: could not write csv header: %w", err)
	}
	for _, r := range reports {
		row := []string{
			strconv.FormatInt(r.ID, 10),
			deref(r.FullName),
			deref(r.Contact),
			string(r.Category),
			r.Description,
			deref(models.FormatCoordinate(r.Latitude)),
			deref(models.FormatCoordinate(r.Longitude)),
			deref(r.Date),
			deref(r.PhotoName),
			r.CreatedAt.UTC().Format(time.RFC3339),
			string(r.Status),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("service: could not write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("service: could not flush csv: %w", err)
	}
	return nil
}

// Photo - фото обращения для отдачи клиенту
type Photo struct {
	Name        string
	ContentType string
	Data        []byte
}

// ReportPhoto возвращает фото обращения с типом, определенным по содержимому
func (s *dashboardService) ReportPhoto(ctx context.Context, sid string, id int64) (Photo, error) {
	rec, err := s.session(sid)
	if err != nil {
		return Photo{}, err
	}

	reports := rec.Reports(ctx)
	idx := slices.IndexFunc(reports, func(r models.Report) bool { return r.ID == id })
	if idx < 0 {
		return Photo{}, fmt.Errorf("service: report %d: %w", id, ErrReportNotFound)
	}
	report := reports[idx]
	if !report.HasPhoto() {
		return Photo{}, fmt.Errorf("service: report %d: %w", id, ErrPhotoNotFound)
	}

	return Photo{
		Name:        deref(report.PhotoName),
		ContentType: mimetype.Detect(report.Photo).String(),
		Data:        report.Photo,
	}, nil
}

// validatePhoto пропускает только jpg и png, проверяя и расширение, и содержимое
func validatePhoto(data []byte, name *string) error {
	if len(data) == 0 {
		return nil
	}
	if name == nil {
		return &models.ValidationError{Field: "photo_name", Message: "photo requires a file name"}
	}
	if _, ok := allowedPhotoExtensions[strings.ToLower(filepath.Ext(*name))]; !ok {
		return &models.ValidationError{Field: "photo", Message: "only jpg, jpeg and png photos are accepted"}
	}
	detected := mimetype.Detect(data)
	if _, ok := allowedPhotoTypes[detected.String()]; !ok {
		return &models.ValidationError{Field: "photo", Message: fmt.Sprintf("photo content is %s, expected jpeg or png", detected.String())}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
