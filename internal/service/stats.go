package service

import (
	"context"
	"math"

	"github.com/shenikar/civic_guardian/internal/models"
)

// AdminStats - сводка для панели администратора
type AdminStats struct {
	ReportsToday int `json:"reports_today"`
	// ResponseRate - доля решенных обращений в процентах, 0 при пустом списке
	ResponseRate        float64                 `json:"response_rate"`
	Total               int                     `json:"total"`
	Pending             int                     `json:"pending"`
	Resolved            int                     `json:"resolved"`
	IncidentsByCategory map[models.Category]int `json:"incidents_by_category"`
}

// ProfileStats - счетчики обращений пользователя
type ProfileStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Resolved int `json:"resolved"`
}

func countByStatus(reports []models.Report) ProfileStats {
	stats := ProfileStats{Total: len(reports)}
	for _, r := range reports {
		switch r.Status {
		case models.StatusPending:
			stats.Pending++
		case models.StatusResolved:
			stats.Resolved++
		}
	}
	return stats
}

func (s *dashboardService) Profile(ctx context.Context, sid string) (ProfileStats, error) {
	rec, err := s.session(sid)
	if err != nil {
		return ProfileStats{}, err
	}
	return countByStatus(rec.Reports(ctx)), nil
}

// AdminStats считает сводку по кешу сессии. "Сегодня" определяется по дате UTC.
func (s *dashboardService) AdminStats(ctx context.Context, sid string) (AdminStats, error) {
	rec, err := s.session(sid)
	if err != nil {
		return AdminStats{}, err
	}
	reports := rec.Reports(ctx)
	incidents := rec.Incidents(ctx)

	counts := countByStatus(reports)
	stats := AdminStats{
		Total:               counts.Total,
		Pending:             counts.Pending,
		Resolved:            counts.Resolved,
		IncidentsByCategory: make(map[models.Category]int),
	}
	if counts.Total > 0 {
		stats.ResponseRate = math.Round(float64(counts.Resolved)/float64(counts.Total)*1000) / 10
	}

	today := truncateDay(s.now())
	for _, r := range reports {
		if !r.CreatedAt.IsZero() && truncateDay(r.CreatedAt).Equal(today) {
			stats.ReportsToday++
		}
	}
	for _, i := range incidents {
		stats.IncidentsByCategory[i.Category]++
	}
	return stats, nil
}
