// Package store - единое хранилище инцидентов, обращений и уведомлений.
// Конкретный бэкенд выбирается конфигурацией при старте; все вызовы ограничены таймаутом,
// а ошибки сводятся к ErrStoreUnavailable и ErrTransientIO.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/shenikar/civic_guardian/internal/config"
	"github.com/shenikar/civic_guardian/internal/models"
)

const defaultTimeout = 5 * time.Second

type Store struct {
	target   config.DatabaseTarget
	open     Opener
	timeout  time.Duration
	logger   *logrus.Logger
	recorder Recorder

	initGroup singleflight.Group

	mu      sync.RWMutex
	backend Backend
}

// New создает хранилище. Подключение выполняется в Initialize.
func New(target config.DatabaseTarget, open Opener, timeout time.Duration, logger *logrus.Logger, recorder Recorder) *Store {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &Store{
		target:   target,
		open:     open,
		timeout:  timeout,
		logger:   logger,
		recorder: recorder,
	}
}

// Initialize подключается к бэкенду и применяет миграции.
// Повторный вызов после успеха ничего не делает. Ошибки не возвращаются:
// false означает, что хранилище непригодно и вызывающему нужен режим только-сессии.
// Одновременные вызовы разделяют одну попытку подключения, мьютекс на время подключения не держится.
func (s *Store) Initialize(ctx context.Context) bool {
	if s.Available() {
		return true
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "store",
		"method":  "Initialize",
		"driver":  string(s.target.Driver),
		"source":  s.target.Source,
	})

	if !s.target.Configured() {
		log.Warn("Store is not configured, running in session-only mode")
		return false
	}
	if s.open == nil {
		log.Error("Store has no opener")
		return false
	}

	// Попытку разделяют несколько вызывающих, поэтому отмена одного из них ее не прерывает
	openCtx := context.WithoutCancel(ctx)
	v, _, _ := s.initGroup.Do("initialize", func() (any, error) {
		if s.Available() {
			return true, nil
		}

		backend, err := s.open(openCtx, s.target)
		if err != nil {
			log.WithError(err).Error("Failed to initialize store")
			return false, nil
		}

		s.mu.Lock()
		s.backend = backend
		s.mu.Unlock()

		log.Info("Store initialized")
		return true, nil
	})
	return v.(bool)
}

// Available сообщает, прошла ли инициализация
func (s *Store) Available() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.backend != nil
}

// Close закрывает бэкенд
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.backend == nil {
		return nil
	}
	err := s.backend.Close()
	s.backend = nil
	return err
}

// Ping проверяет доступность бэкенда
func (s *Store) Ping(ctx context.Context) error {
	return s.call(ctx, "ping", func(ctx context.Context, b Backend) error {
		return b.Ping(ctx)
	})
}

// AddIncident сохраняет инцидент и возвращает присвоенный id
func (s *Store) AddIncident(ctx context.Context, d models.IncidentDraft) (int64, error) {
	if err := d.Validate(); err != nil {
		s.recorder.ObserveStoreOp("add_incident", resultLabel(err), 0)
		return 0, err
	}
	var id int64
	err := s.call(ctx, "add_incident", func(ctx context.Context, b Backend) error {
		var err error
		id, err = b.CreateIncident(ctx, d)
		return err
	})
	return id, err
}

// GetIncidents читает все инциденты. При ошибке возвращается пустой, но не nil срез.
func (s *Store) GetIncidents(ctx context.Context) ([]models.Incident, error) {
	var out []models.Incident
	err := s.call(ctx, "get_incidents", func(ctx context.Context, b Backend) error {
		var err error
		out, err = b.ListIncidents(ctx)
		return err
	})
	if err != nil || out == nil {
		return make([]models.Incident, 0), err
	}
	return out, nil
}

// AddReport сохраняет обращение со статусом pending
func (s *Store) AddReport(ctx context.Context, d models.ReportDraft) (int64, error) {
	if err := d.Validate(); err != nil {
		s.recorder.ObserveStoreOp("add_report", resultLabel(err), 0)
		return 0, err
	}
	var id int64
	err := s.call(ctx, "add_report", func(ctx context.Context, b Backend) error {
		var err error
		id, err = b.CreateReport(ctx, d)
		return err
	})
	return id, err
}

func (s *Store) GetReports(ctx context.Context) ([]models.Report, error) {
	var out []models.Report
	err := s.call(ctx, "get_reports", func(ctx context.Context, b Backend) error {
		var err error
		out, err = b.ListReports(ctx)
		return err
	})
	if err != nil || out == nil {
		return make([]models.Report, 0), err
	}
	return out, nil
}

// UpdateReportStatus меняет статус обращения. Отсутствующий id дает false без ошибки.
func (s *Store) UpdateReportStatus(ctx context.Context, id int64, status models.ReportStatus) (bool, error) {
	if !status.Valid() {
		err := &models.ValidationError{Field: "status", Message: fmt.Sprintf("unknown status %s", status)}
		s.recorder.ObserveStoreOp("update_report_status", resultLabel(err), 0)
		return false, err
	}
	var found bool
	err := s.call(ctx, "update_report_status", func(ctx context.Context, b Backend) error {
		var err error
		found, err = b.UpdateReportStatus(ctx, id, status)
		return err
	})
	return found, err
}

// DeleteReport удаляет обращение. Отсутствующий id дает false без ошибки.
func (s *Store) DeleteReport(ctx context.Context, id int64) (bool, error) {
	var found bool
	err := s.call(ctx, "delete_report", func(ctx context.Context, b Backend) error {
		var err error
		found, err = b.DeleteReport(ctx, id)
		return err
	})
	return found, err
}

func (s *Store) AddNotification(ctx context.Context, d models.NotificationDraft) (int64, error) {
	if err := d.Validate(); err != nil {
		s.recorder.ObserveStoreOp("add_notification", resultLabel(err), 0)
		return 0, err
	}
	var id int64
	err := s.call(ctx, "add_notification", func(ctx context.Context, b Backend) error {
		var err error
		id, err = b.CreateNotification(ctx, d)
		return err
	})
	return id, err
}

func (s *Store) GetNotifications(ctx context.Context) ([]models.Notification, error) {
	var out []models.Notification
	err := s.call(ctx, "get_notifications", func(ctx context.Context, b Backend) error {
		var err error
		out, err = b.ListNotifications(ctx)
		return err
	})
	if err != nil || out == nil {
		return make([]models.Notification, 0), err
	}
	return out, nil
}

// MarkAllNotificationsRead помечает прочитанными все уведомления, непрочитанные на момент вызова
func (s *Store) MarkAllNotificationsRead(ctx context.Context) error {
	return s.call(ctx, "mark_all_notifications_read", func(ctx context.Context, b Backend) error {
		n, err := b.MarkAllNotificationsRead(ctx)
		if err == nil {
			s.logger.WithField("service", "store").WithField("updated", n).Debug("Notifications marked read")
		}
		return err
	})
}

// call выполняет операцию с таймаутом и учетом метрик
func (s *Store) call(ctx context.Context, op string, fn func(ctx context.Context, b Backend) error) error {
	start := time.Now()

	s.mu.RLock()
	backend := s.backend
	s.mu.RUnlock()

	if backend == nil {
		s.recorder.ObserveStoreOp(op, resultLabel(ErrStoreUnavailable), time.Since(start))
		return ErrStoreUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := classify(ctx, fn(ctx, backend))
	s.recorder.ObserveStoreOp(op, resultLabel(err), time.Since(start))
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		s.logger.WithFields(logrus.Fields{
			"service": "store",
			"op":      op,
		}).Debug("Store operation canceled by caller")
	default:
		s.logger.WithFields(logrus.Fields{
			"service": "store",
			"op":      op,
		}).WithError(err).Warn("Store operation failed")
	}
	return err
}
