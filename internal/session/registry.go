package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrSessionNotFound - сессии с таким id нет или она вытеснена по простою
var ErrSessionNotFound = errors.New("session not found")

type entry struct {
	reconciler *Reconciler
	lastSeen   time.Time
}

// Registry хранит сессии процесса по id
type Registry struct {
	store   Store
	logger  *logrus.Logger
	metrics Metrics
	idleTTL time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*entry
}

// NewRegistry создает реестр. idleTTL <= 0 отключает вытеснение.
func NewRegistry(store Store, logger *logrus.Logger, metrics Metrics, idleTTL time.Duration) *Registry {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Registry{
		store:    store,
		logger:   logger,
		metrics:  metrics,
		idleTTL:  idleTTL,
		now:      time.Now,
		sessions: make(map[string]*entry),
	}
}

// Open создает новую сессию и загружает ее кеш
func (r *Registry) Open(ctx context.Context) *Reconciler {
	rec := NewReconciler(uuid.NewString(), r.store, r.logger, r.metrics)
	rec.now = r.now
	rec.Load(ctx)

	r.mu.Lock()
	r.evictIdle()
	r.sessions[rec.ID()] = &entry{reconciler: rec, lastSeen: r.now()}
	r.mu.Unlock()

	r.metrics.SessionOpened()
	r.logger.WithFields(logrus.Fields{
		"service":    "session",
		"session_id": rec.ID(),
	}).Info("Session opened")
	return rec
}

// Get возвращает сессию и продлевает ее время жизни
func (r *Registry) Get(id string) (*Reconciler, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if r.expired(e) {
		r.evict(id)
		return nil, ErrSessionNotFound
	}
	e.lastSeen = r.now()
	return e.reconciler, nil
}

// Drop завершает сессию
func (r *Registry) Drop(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	r.metrics.SessionClosed()
	return nil
}

// Len - число сессий в памяти
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) expired(e *entry) bool {
	return r.idleTTL > 0 && r.now().Sub(e.lastSeen) > r.idleTTL
}

// evictIdle вызывается под r.mu
func (r *Registry) evictIdle() {
	for id, e := range r.sessions {
		if r.expired(e) {
			r.evict(id)
		}
	}
}

// evict вызывается под r.mu
func (r *Registry) evict(id string) {
	delete(r.sessions, id)
	r.metrics.SessionClosed()
	r.logger.WithFields(logrus.Fields{
		"service":    "session",
		"session_id": id,
	}).Info("Idle session evicted")
}
