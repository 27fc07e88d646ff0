// Package session держит кеш данных одной пользовательской сессии и согласует его с хранилищем.
//
// Пока хранилище доступно, каждая мутация выполняется как запись с последующим полным перечитыванием
// коллекции. После первой ошибки чтения или записи коллекция навсегда переходит в режим только-сессии:
// дальнейшие изменения применяются к кешу с локальными id.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/civic_guardian/internal/models"
)

const (
	CollectionIncidents     = "incidents"
	CollectionReports       = "reports"
	CollectionNotifications = "notifications"
)

// errStoreDisabled - причина режима только-сессии, когда хранилище не инициализировалось
var errStoreDisabled = errors.New("store is not initialized")

// Receipt - итог одной мутации
type Receipt struct {
	// ID - id созданной или измененной записи, 0 для массовых операций
	ID int64 `json:"id,omitempty"`
	// Durable - запись подтверждена хранилищем
	Durable bool `json:"durable"`
	// Degraded - причина, по которой изменение осталось только в сессии или кеш не перечитан
	Degraded error `json:"-"`
}

// SubmitResult - итог отправки обращения
type SubmitResult struct {
	Report Receipt `json:"report"`
	// Incident заполнен, если у обращения были обе координаты
	Incident *Receipt `json:"incident,omitempty"`
}

// Snapshot - состояние сессии для диагностики
type Snapshot struct {
	ID            string `json:"id"`
	Incidents     State  `json:"incidents"`
	Reports       State  `json:"reports"`
	Notifications State  `json:"notifications"`
	IncidentCount int    `json:"incident_count"`
	ReportCount   int    `json:"report_count"`
	UnreadCount   int    `json:"unread_count"`
}

// Reconciler - кеш одной сессии. Все операции сериализуются мьютексом.
type Reconciler struct {
	id      string
	store   Store
	logger  *logrus.Entry
	metrics Metrics
	now     func() time.Time

	mu            sync.Mutex
	incidents     *collection[models.Incident]
	reports       *collection[models.Report]
	notifications *collection[models.Notification]
}

// NewReconciler создает сессию в состоянии Uninitialized
func NewReconciler(id string, store Store, logger *logrus.Logger, metrics Metrics) *Reconciler {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Reconciler{
		id:      id,
		store:   store,
		logger:  logger.WithFields(logrus.Fields{"service": "session", "session_id": id}),
		metrics: metrics,
		now:     time.Now,
		incidents: newCollection(CollectionIncidents, func(i models.Incident) int64 {
			return i.ID
		}),
		reports: newCollection(CollectionReports, func(r models.Report) int64 {
			return r.ID
		}),
		notifications: newCollection(CollectionNotifications, func(n models.Notification) int64 {
			return n.ID
		}),
	}
}

func (r *Reconciler) ID() string {
	return r.id
}

// Load заполняет кеш из хранилища. Выполняется один раз за сессию, повторные вызовы ничего не делают.
func (r *Reconciler) Load(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.load(ctx)
}

func (r *Reconciler) load(ctx context.Context) {
	if r.incidents.state != StateUninitialized {
		return
	}
	r.incidents.state = StateLoading
	r.reports.state = StateLoading
	r.notifications.state = StateLoading

	ctx = detach(ctx)

	if !r.store.Initialize(ctx) {
		degrade(r, r.incidents, errStoreDisabled)
		degrade(r, r.reports, errStoreDisabled)
		degrade(r, r.notifications, errStoreDisabled)
		return
	}

	loadInto(r, ctx, r.incidents, r.store.GetIncidents)
	loadInto(r, ctx, r.reports, r.store.GetReports)
	loadInto(r, ctx, r.notifications, r.store.GetNotifications)

	r.logger.WithFields(logrus.Fields{
		CollectionIncidents:     r.incidents.state.String(),
		CollectionReports:       r.reports.state.String(),
		CollectionNotifications: r.notifications.state.String(),
	}).Info("Session loaded")
}

func loadInto[T any](r *Reconciler, ctx context.Context, c *collection[T], read func(context.Context) ([]T, error)) {
	items, err := read(ctx)
	if err != nil {
		degrade(r, c, err)
		return
	}
	c.replace(items)
	c.state = StateLoadedFromStore
}

// Incidents возвращает копию кеша инцидентов
func (r *Reconciler) Incidents(ctx context.Context) []models.Incident {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.load(ctx)
	return r.incidents.snapshot()
}

func (r *Reconciler) Reports(ctx context.Context) []models.Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.load(ctx)
	return r.reports.snapshot()
}

func (r *Reconciler) Notifications(ctx context.Context) []models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.load(ctx)
	return r.notifications.snapshot()
}

// Snapshot возвращает состояния коллекций и счетчики
func (r *Reconciler) Snapshot(ctx context.Context) Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.load(ctx)

	unread := 0
	for _, n := range r.notifications.items {
		if n.Unread {
			unread++
		}
	}
	return Snapshot{
		ID:            r.id,
		Incidents:     r.incidents.state,
		Reports:       r.reports.state,
		Notifications: r.notifications.state,
		IncidentCount: len(r.incidents.items),
		ReportCount:   len(r.reports.items),
		UnreadCount:   unread,
	}
}

// SubmitReport сохраняет обращение и, если указаны обе координаты, инцидент для карты.
// Ошибка возвращается только для невалидного черновика. Сбой записи инцидента не отменяет обращение.
func (r *Reconciler) SubmitReport(ctx context.Context, d models.ReportDraft) (SubmitResult, error) {
	if err := d.Validate(); err != nil {
		return SubmitResult{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.load(ctx)

	var result SubmitResult
	result.Report = create(r, ctx, r.reports, r.store.AddReport, r.store.GetReports, d, d.Materialize)

	if incident, ok := d.DerivedIncident(); ok {
		receipt := create(r, ctx, r.incidents, r.store.AddIncident, r.store.GetIncidents, incident, incident.Materialize)
		if receipt.Degraded != nil {
			r.logger.WithError(receipt.Degraded).WithField("report_id", result.Report.ID).
				Warn("Derived incident was not persisted, report stays committed")
		}
		result.Incident = &receipt
	}
	return result, nil
}

// AddNotification добавляет уведомление
func (r *Reconciler) AddNotification(ctx context.Context, d models.NotificationDraft) (Receipt, error) {
	if err := d.Validate(); err != nil {
		return Receipt{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.load(ctx)

	return create(r, ctx, r.notifications, r.store.AddNotification, r.store.GetNotifications, d, d.Materialize), nil
}

// MarkAllNotificationsRead помечает прочитанными все уведомления сессии
func (r *Reconciler) MarkAllNotificationsRead(ctx context.Context) Receipt {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.load(ctx)

	markRead := func() {
		for i := range r.notifications.items {
			r.notifications.items[i].Unread = false
		}
	}

	c := r.notifications
	if c.state == StateLoadedFallback {
		markRead()
		return Receipt{Degraded: c.cause}
	}

	ctx = detach(ctx)

	if err := r.store.MarkAllNotificationsRead(ctx); err != nil {
		degrade(r, c, err)
		markRead()
		return Receipt{Degraded: err}
	}
	if err := refetch(r, ctx, c, r.store.GetNotifications); err != nil {
		markRead()
		return Receipt{Durable: true, Degraded: err}
	}
	return Receipt{Durable: true}
}

// ResolveReport переводит обращение в статус resolved. found=false, если id нет.
func (r *Reconciler) ResolveReport(ctx context.Context, id int64) (Receipt, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.load(ctx)

	return mutate(r, ctx, r.reports, id,
		func(ctx context.Context) (bool, error) {
			return r.store.UpdateReportStatus(ctx, id, models.StatusResolved)
		},
		r.store.GetReports,
		func(c *collection[models.Report]) bool {
			return c.update(id, func(rep *models.Report) { rep.Status = models.StatusResolved })
		},
	)
}

// DeleteReport удаляет обращение. Связанный инцидент не удаляется.
func (r *Reconciler) DeleteReport(ctx context.Context, id int64) (Receipt, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.load(ctx)

	return mutate(r, ctx, r.reports, id,
		func(ctx context.Context) (bool, error) {
			return r.store.DeleteReport(ctx, id)
		},
		r.store.GetReports,
		func(c *collection[models.Report]) bool {
			return c.remove(id)
		},
	)
}

// create выполняет вставку: запись и перечитывание, либо локальное добавление в режиме только-сессии
func create[T, D any](
	r *Reconciler,
	ctx context.Context,
	c *collection[T],
	write func(context.Context, D) (int64, error),
	read func(context.Context) ([]T, error),
	draft D,
	materialize func(int64, time.Time) T,
) Receipt {
	if c.state == StateLoadedFallback {
		id := c.nextLocalID()
		c.append(materialize(id, r.now()))
		return Receipt{ID: id, Degraded: c.cause}
	}

	ctx = detach(ctx)

	id, err := write(ctx, draft)
	if err != nil {
		degrade(r, c, err)
		id = c.nextLocalID()
		c.append(materialize(id, r.now()))
		return Receipt{ID: id, Degraded: err}
	}

	if err := refetch(r, ctx, c, read); err != nil {
		// запись уже в хранилище, в кеш кладем ее с id от хранилища
		c.append(materialize(id, r.now()))
		return Receipt{ID: id, Durable: true, Degraded: err}
	}
	return Receipt{ID: id, Durable: true}
}

// mutate выполняет изменение существующей записи по тем же правилам, что и create
func mutate[T any](
	r *Reconciler,
	ctx context.Context,
	c *collection[T],
	id int64,
	write func(context.Context) (bool, error),
	read func(context.Context) ([]T, error),
	local func(*collection[T]) bool,
) (Receipt, bool) {
	if c.state == StateLoadedFallback {
		found := local(c)
		return Receipt{ID: id, Degraded: c.cause}, found
	}

	ctx = detach(ctx)

	found, err := write(ctx)
	if err != nil {
		degrade(r, c, err)
		found = local(c)
		return Receipt{ID: id, Degraded: err}, found
	}

	if err := refetch(r, ctx, c, read); err != nil {
		if found {
			local(c)
		}
		return Receipt{ID: id, Durable: true, Degraded: err}, found
	}
	return Receipt{ID: id, Durable: true}, found
}

// refetch перечитывает коллекцию целиком. При ошибке коллекция переходит в режим только-сессии
// и сохраняет прежний кеш.
func refetch[T any](r *Reconciler, ctx context.Context, c *collection[T], read func(context.Context) ([]T, error)) error {
	items, err := read(ctx)
	if err != nil {
		degrade(r, c, err)
		return err
	}
	c.replace(items)
	return nil
}

// detach отвязывает обращения к хранилищу от отмены запроса. Отмена клиентом не говорит о сбое
// хранилища, а уже выполненная запись должна быть перечитана. Время вызова ограничивает таймаут хранилища.
func detach(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}

// degrade переводит коллекцию в режим только-сессии. Обратного перехода нет.
func degrade[T any](r *Reconciler, c *collection[T], cause error) {
	if c.state == StateLoadedFallback {
		return
	}
	c.state = StateLoadedFallback
	c.cause = cause
	r.metrics.FallbackEntered(c.name)
	r.logger.WithError(cause).WithField("collection", c.name).Warn("Collection switched to session-only mode")
}
