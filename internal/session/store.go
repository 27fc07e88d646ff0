package session

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

import (
	"context"

	"github.com/shenikar/civic_guardian/internal/models"
)

// Store - операции хранилища, которые нужны сессии
type Store interface {
	Initialize(ctx context.Context) bool
	AddIncident(ctx context.Context, d models.IncidentDraft) (int64, error)
	GetIncidents(ctx context.Context) ([]models.Incident, error)
	AddReport(ctx context.Context, d models.ReportDraft) (int64, error)
	GetReports(ctx context.Context) ([]models.Report, error)
	UpdateReportStatus(ctx context.Context, id int64, status models.ReportStatus) (bool, error)
	DeleteReport(ctx context.Context, id int64) (bool, error)
	AddNotification(ctx context.Context, d models.NotificationDraft) (int64, error)
	GetNotifications(ctx context.Context) ([]models.Notification, error)
	MarkAllNotificationsRead(ctx context.Context) error
}

// Metrics получает события жизненного цикла сессий
type Metrics interface {
	SessionOpened()
	SessionClosed()
	FallbackEntered(collection string)
}

type noopMetrics struct{}

func (noopMetrics) SessionOpened()         {}
func (noopMetrics) SessionClosed()         {}
func (noopMetrics) FallbackEntered(string) {}
