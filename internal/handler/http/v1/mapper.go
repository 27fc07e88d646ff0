package v1

import (
	"fmt"
	"time"

	"github.com/shenikar/civic_guardian/internal/geo"
	"github.com/shenikar/civic_guardian/internal/models"
	"github.com/shenikar/civic_guardian/internal/service"
	"github.com/shenikar/civic_guardian/internal/session"
)

// filterDateLayout - формат параметров from и to
const filterDateLayout = "2006-01-02"

// DTOToReportDraft собирает черновик обращения из формы и файла фото
func DTOToReportDraft(dto SubmitReportRequest, photo []byte, photoName string) (models.ReportDraft, error) {
	lat, err := models.ParseCoordinateInput("latitude", dto.Latitude, models.MaxLatitude)
	if err != nil {
		return models.ReportDraft{}, err
	}
	lng, err := models.ParseCoordinateInput("longitude", dto.Longitude, models.MaxLongitude)
	if err != nil {
		return models.ReportDraft{}, err
	}

	var name *string
	if len(photo) > 0 {
		name = models.OptionalString(photoName)
	}

	return models.NewReportDraft(
		models.OptionalString(dto.FullName),
		models.OptionalString(dto.Contact),
		dto.Category,
		dto.Description,
		lat,
		lng,
		models.OptionalString(dto.Date),
		photo,
		name,
	)
}

// QueryToReportFilter разбирает параметры category, from и to
func QueryToReportFilter(category, from, to string) (service.ReportFilter, error) {
	var f service.ReportFilter
	if category != "" {
		c, err := models.ParseCategory(category)
		if err != nil {
			return service.ReportFilter{}, err
		}
		f.Category = &c
	}
	for _, p := range []struct {
		field string
		raw   string
		dst   **time.Time
	}{
		{"from", from, &f.From},
		{"to", to, &f.To},
	} {
		if p.raw == "" {
			continue
		}
		t, err := time.Parse(filterDateLayout, p.raw)
		if err != nil {
			return service.ReportFilter{}, &models.ValidationError{Field: p.field, Message: "expected date in YYYY-MM-DD format"}
		}
		*p.dst = &t
	}
	return f, nil
}

func SnapshotToSessionResponse(s session.Snapshot) SessionResponse {
	return SessionResponse{
		ID:            s.ID,
		Incidents:     s.Incidents,
		Reports:       s.Reports,
		Notifications: s.Notifications,
		IncidentCount: s.IncidentCount,
		ReportCount:   s.ReportCount,
		UnreadCount:   s.UnreadCount,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(incidents []models.Incident) []IncidentResponse {
	responses := make([]IncidentResponse, len(incidents))
	for i, m := range incidents {
		responses[i] = IncidentResponse{
			ID:            m.ID,
			Latitude:      m.Latitude,
			Longitude:     m.Longitude,
			Category:      m.Category,
			Description:   m.Description,
			DisplayTime:   m.DisplayTime,
			DistanceLabel: m.DistanceLabel,
			CreatedAt:     m.CreatedAt,
		}
	}
	return responses
}

// ModelsToReportResponses преобразует обращения в DTO. Ссылка на фото строится относительно сессии.
func ModelsToReportResponses(sid string, reports []models.Report) []ReportResponse {
	responses := make([]ReportResponse, len(reports))
	for i, m := range reports {
		r := ReportResponse{
			ID:          m.ID,
			FullName:    m.FullName,
			Contact:     m.Contact,
			Category:    m.Category,
			Description: m.Description,
			Latitude:    m.Latitude,
			Longitude:   m.Longitude,
			Date:        m.Date,
			PhotoName:   m.PhotoName,
			CreatedAt:   m.CreatedAt,
			Status:      m.Status,
		}
		if m.HasPhoto() {
			r.PhotoURL = fmt.Sprintf("/api/v1/sessions/%s/reports/%d/photo", sid, m.ID)
		}
		responses[i] = r
	}
	return responses
}

func ModelsToNotificationResponses(notifications []models.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, len(notifications))
	for i, m := range notifications {
		responses[i] = NotificationResponse(m)
	}
	return responses
}

// ReceiptToResponse переносит итог изменения. Причина деградации отдается текстом.
func ReceiptToResponse(r session.Receipt) ReceiptResponse {
	resp := ReceiptResponse{ID: r.ID, Durable: r.Durable}
	if r.Degraded != nil {
		resp.Warning = "saved in this session only: store is unavailable"
	}
	return resp
}

func SubmitResultToResponse(r session.SubmitResult) SubmitReportResponse {
	resp := SubmitReportResponse{Report: ReceiptToResponse(r.Report)}
	if r.Incident != nil {
		inc := ReceiptToResponse(*r.Incident)
		resp.Incident = &inc
	}
	return resp
}

func LocationToResponse(l geo.Location) LocationResponse {
	return LocationResponse{Latitude: l.Latitude, Longitude: l.Longitude, Source: l.Source}
}

func StatsToResponse(s service.AdminStats) StatsResponse {
	byCategory := make(map[string]int, len(s.IncidentsByCategory))
	for c, n := range s.IncidentsByCategory {
		byCategory[string(c)] = n
	}
	return StatsResponse{
		ReportsToday:        s.ReportsToday,
		ResponseRate:        s.ResponseRate,
		Total:               s.Total,
		Pending:             s.Pending,
		Resolved:            s.Resolved,
		IncidentsByCategory: byCategory,
	}
}
