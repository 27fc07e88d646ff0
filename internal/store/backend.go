package store

import (
	"context"
	"time"

	"github.com/shenikar/civic_guardian/internal/models"
	"github.com/shenikar/civic_guardian/internal/repository/postgres"
	"github.com/shenikar/civic_guardian/internal/repository/sqlite"
)

// Backend определяет контракт диалектного репозитория
type Backend interface {
	CreateIncident(ctx context.Context, d models.IncidentDraft) (int64, error)
	ListIncidents(ctx context.Context) ([]models.Incident, error)
	CreateReport(ctx context.Context, d models.ReportDraft) (int64, error)
	ListReports(ctx context.Context) ([]models.Report, error)
	UpdateReportStatus(ctx context.Context, id int64, status models.ReportStatus) (bool, error)
	DeleteReport(ctx context.Context, id int64) (bool, error)
	CreateNotification(ctx context.Context, d models.NotificationDraft) (int64, error)
	ListNotifications(ctx context.Context) ([]models.Notification, error)
	MarkAllNotificationsRead(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}

var (
	_ Backend = (*postgres.Repository)(nil)
	_ Backend = (*sqlite.Repository)(nil)
)

// Recorder получает метрики операций хранилища
type Recorder interface {
	ObserveStoreOp(op, result string, elapsed time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) ObserveStoreOp(string, string, time.Duration) {}
