package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/civic_guardian/internal/geo"
	"github.com/shenikar/civic_guardian/internal/models"
	"github.com/shenikar/civic_guardian/internal/session"
	"github.com/shenikar/civic_guardian/internal/webhook"
)

//go:generate mockgen -source=dashboard.go -destination=mocks/mock_dashboard.go -package=mocks

var (
	ErrReportNotFound = errors.New("report not found")
	ErrPhotoNotFound  = errors.New("report has no photo")
)

const (
	emergencyTitle       = "Emergency Alert Sent"
	emergencyDescription = "Emergency services have been contacted. Stay safe."
	emergencyDisplayTime = "Just now"

	recentReportsLimit = 5
)

// Sessions определяет контракт реестра сессий
type Sessions interface {
	Open(ctx context.Context) *session.Reconciler
	Get(id string) (*session.Reconciler, error)
	Drop(id string) error
	Len() int
}

// Locator определяет примерное местоположение по IP
type Locator interface {
	Locate(ctx context.Context, ip string) geo.Location
}

// StoreHealth - состояние хранилища для проверки здоровья
type StoreHealth interface {
	Available() bool
	Ping(ctx context.Context) error
}

// DashboardService определяет контракт бизнес-логики панели
type DashboardService interface {
	OpenSession(ctx context.Context) session.Snapshot
	GetSession(ctx context.Context, sid string) (session.Snapshot, error)
	CloseSession(ctx context.Context, sid string) error

	ListIncidents(ctx context.Context, sid string) ([]models.Incident, error)
	ListReports(ctx context.Context, sid string, filter ReportFilter) ([]models.Report, error)
	RecentReports(ctx context.Context, sid string) ([]models.Report, error)
	ExportReportsCSV(ctx context.Context, sid string, filter ReportFilter, w io.Writer) error
	SubmitReport(ctx context.Context, sid string, draft models.ReportDraft) (session.SubmitResult, error)
	ReportPhoto(ctx context.Context, sid string, id int64) (Photo, error)

	ListNotifications(ctx context.Context, sid string) ([]models.Notification, error)
	MarkAllNotificationsRead(ctx context.Context, sid string) (session.Receipt, error)
	TriggerEmergency(ctx context.Context, sid string, req EmergencyRequest) (EmergencyResult, error)

	Profile(ctx context.Context, sid string) (ProfileStats, error)
	AdminStats(ctx context.Context, sid string) (AdminStats, error)
	ResolveReport(ctx context.Context, sid string, id int64) (session.Receipt, error)
	DeleteReport(ctx context.Context, sid string, id int64) (session.Receipt, error)

	Locate(ctx context.Context, ip string) geo.Location
	Health(ctx context.Context) Health
}

// EmergencyRequest - тревожный вызов. Без координат местоположение определяется по IP.
type EmergencyRequest struct {
	Latitude  *float64
	Longitude *float64
	ClientIP  string
}

// EmergencyResult - итог тревожного вызова
type EmergencyResult struct {
	Notification session.Receipt `json:"notification"`
	Location     geo.Location    `json:"location"`
	Dispatched   bool            `json:"dispatched"`
}

// Health - состояние сервиса
type Health struct {
	Store    string `json:"store"`
	Sessions int    `json:"sessions"`
}

type dashboardService struct {
	sessions  Sessions
	store     StoreHealth
	locator   Locator
	publisher webhook.WebhookPublisher
	logger    *logrus.Logger
	now       func() time.Time
}

func NewDashboardService(sessions Sessions, store StoreHealth, locator Locator, publisher webhook.WebhookPublisher, logger *logrus.Logger) DashboardService {
	return &dashboardService{
		sessions:  sessions,
		store:     store,
		locator:   locator,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// OpenSession создает сессию и загружает ее данные
func (s *dashboardService) OpenSession(ctx context.Context) session.Snapshot {
	rec := s.sessions.Open(ctx)
	return rec.Snapshot(ctx)
}

func (s *dashboardService) GetSession(ctx context.Context, sid string) (session.Snapshot, error) {
	rec, err := s.session(sid)
	if err != nil {
		return session.Snapshot{}, err
	}
	return rec.Snapshot(ctx), nil
}

func (s *dashboardService) CloseSession(_ context.Context, sid string) error {
	if err := s.sessions.Drop(sid); err != nil {
		return fmt.Errorf("service: could not close session: %w", err)
	}
	return nil
}

func (s *dashboardService) ListIncidents(ctx context.Context, sid string) ([]models.Incident, error) {
	rec, err := s.session(sid)
	if err != nil {
		return nil, err
	}
	return rec.Incidents(ctx), nil
}

func (s *dashboardService) ListNotifications(ctx context.Context, sid string) ([]models.Notification, error) {
	rec, err := s.session(sid)
	if err != nil {
		return nil, err
	}
	return rec.Notifications(ctx), nil
}

// SubmitReport проверяет фото и отправляет обращение в сессию
func (s *dashboardService) SubmitReport(ctx context.Context, sid string, draft models.ReportDraft) (session.SubmitResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "dashboard",
		"method":     "SubmitReport",
		"session_id": sid,
		"category":   draft.Category,
	})
	log.Info("Attempting to submit a new report")

	rec, err := s.session(sid)
	if err != nil {
		return session.SubmitResult{}, err
	}
	if err := validatePhoto(draft.Photo, draft.PhotoName); err != nil {
		log.WithError(err).Warn("Rejected report photo")
		return session.SubmitResult{}, err
	}

	result, err := rec.SubmitReport(ctx, draft)
	if err != nil {
		log.WithError(err).Warn("Report validation failed")
		return session.SubmitResult{}, err
	}

	log = log.WithFields(logrus.Fields{"report_id": result.Report.ID, "durable": result.Report.Durable})
	if result.Report.Degraded != nil {
		log.WithError(result.Report.Degraded).Warn("Report kept in session only")
	} else {
		log.Info("Report submitted successfully")
	}
	return result, nil
}

func (s *dashboardService) MarkAllNotificationsRead(ctx context.Context, sid string) (session.Receipt, error) {
	rec, err := s.session(sid)
	if err != nil {
		return session.Receipt{}, err
	}
	receipt := rec.MarkAllNotificationsRead(ctx)
	if receipt.Degraded != nil {
		s.logger.WithFields(logrus.Fields{
			"service":    "dashboard",
			"method":     "MarkAllNotificationsRead",
			"session_id": sid,
		}).WithError(receipt.Degraded).Warn("Notifications marked read in session only")
	}
	return receipt, nil
}

// TriggerEmergency добавляет уведомление о тревоге и оповещает экстренные службы.
// Сбой доставки вебхука не отменяет уведомление.
func (s *dashboardService) TriggerEmergency(ctx context.Context, sid string, req EmergencyRequest) (EmergencyResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "dashboard",
		"method":     "TriggerEmergency",
		"session_id": sid,
	})
	log.Warn("Emergency alert triggered")

	rec, err := s.session(sid)
	if err != nil {
		return EmergencyResult{}, err
	}

	var loc geo.Location
	if req.Latitude != nil && req.Longitude != nil {
		loc = geo.Location{Latitude: *req.Latitude, Longitude: *req.Longitude, Source: "client"}
	} else {
		loc = s.locator.Locate(ctx, req.ClientIP)
	}

	draft, err := models.NewNotificationDraft(emergencyTitle, emergencyDescription, emergencyDisplayTime)
	if err != nil {
		return EmergencyResult{}, fmt.Errorf("service: could not build emergency notification: %w", err)
	}
	receipt, err := rec.AddNotification(ctx, draft)
	if err != nil {
		return EmergencyResult{}, fmt.Errorf("service: could not add emergency notification: %w", err)
	}

	result := EmergencyResult{Notification: receipt, Location: loc}

	err = s.publisher.Publish(ctx, webhook.EmergencyEvent{
		SessionID: sid,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Source:    loc.Source,
		Timestamp: s.now().UTC(),
	})
	switch {
	case err == nil:
		result.Dispatched = true
	case errors.Is(err, webhook.ErrNotConfigured):
		log.Debug("Emergency webhook is not configured")
	default:
		log.WithError(err).Error("Failed to dispatch emergency webhook")
	}
	return result, nil
}

// ResolveReport переводит обращение в resolved
func (s *dashboardService) ResolveReport(ctx context.Context, sid string, id int64) (session.Receipt, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "dashboard",
		"method":     "ResolveReport",
		"session_id": sid,
		"report_id":  id,
	})
	log.Info("Attempting to resolve report")

	rec, err := s.session(sid)
	if err != nil {
		return session.Receipt{}, err
	}
	receipt, found := rec.ResolveReport(ctx, id)
	if !found {
		log.Warn("Attempted to resolve a non-existent report")
		return receipt, fmt.Errorf("service: report with id %d not found for resolve: %w", id, ErrReportNotFound)
	}
	log.WithField("durable", receipt.Durable).Info("Report resolved")
	return receipt, nil
}

// DeleteReport удаляет обращение
func (s *dashboardService) DeleteReport(ctx context.Context, sid string, id int64) (session.Receipt, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "dashboard",
		"method":     "DeleteReport",
		"session_id": sid,
		"report_id":  id,
	})
	log.Info("Attempting to delete report")

	rec, err := s.session(sid)
	if err != nil {
		return session.Receipt{}, err
	}
	receipt, found := rec.DeleteReport(ctx, id)
	if !found {
		log.Warn("Attempted to delete a non-existent report")
		return receipt, fmt.Errorf("service: report with id %d not found for delete: %w", id, ErrReportNotFound)
	}
	log.WithField("durable", receipt.Durable).Info("Report deleted")
	return receipt, nil
}

func (s *dashboardService) Locate(ctx context.Context, ip string) geo.Location {
	return s.locator.Locate(ctx, ip)
}

// Health проверяет хранилище
func (s *dashboardService) Health(ctx context.Context) Health {
	h := Health{Store: "disabled", Sessions: s.sessions.Len()}
	if !s.store.Available() {
		return h
	}
	h.Store = "available"
	if err := s.store.Ping(ctx); err != nil {
		s.logger.WithError(err).Warn("Store ping failed")
		h.Store = "unavailable"
	}
	return h
}

func (s *dashboardService) session(sid string) (*session.Reconciler, error) {
	rec, err := s.sessions.Get(sid)
	if err != nil {
		return nil, fmt.Errorf("service: session %s: %w", sid, err)
	}
	return rec, nil
}
