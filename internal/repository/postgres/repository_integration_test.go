//go:build integration

package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/civic_guardian/internal/config"
	"github.com/shenikar/civic_guardian/internal/models"
	pgrepo "github.com/shenikar/civic_guardian/internal/repository/postgres"
	"github.com/shenikar/civic_guardian/internal/store"
	"github.com/shenikar/civic_guardian/pkg/postgres"
)

// Запуск: TEST_DATABASE_URL=postgres://... go test -tags integration ./internal/repository/postgres/
func newTestRepository(t *testing.T) *pgrepo.Repository {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}
	ctx := context.Background()

	// Opener применяет миграции
	backend, err := store.NewOpener(store.OpenerOptions{Timeout: 10 * time.Second})(ctx, config.DatabaseTarget{
		Driver: config.DriverPostgres,
		DSN:    dsn,
		Source: "test",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })

	pool, err := postgres.NewPostgresDB(ctx, dsn, 10*time.Second)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	truncate(t, pool)

	repo, ok := backend.(*pgrepo.Repository)
	require.True(t, ok)
	return repo
}

func truncate(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `TRUNCATE incidents, reports, notifications RESTART IDENTITY;`)
	require.NoError(t, err)
}

func floatPtr(v float64) *float64 { return &v }

func TestRepository_IncidentCoordinates(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	placed, err := models.NewIncidentDraft(floatPtr(9.3), floatPtr(125.9), "theft", nil, nil, nil)
	require.NoError(t, err)
	unplaced, err := models.NewIncidentDraft(nil, nil, "hazard", nil, nil, nil)
	require.NoError(t, err)

	id1, err := repo.CreateIncident(ctx, placed)
	require.NoError(t, err)
	id2, err := repo.CreateIncident(ctx, unplaced)
	require.NoError(t, err)

	incidents, err := repo.ListIncidents(ctx)
	require.NoError(t, err)
	require.Len(t, incidents, 2)
	assert.Equal(t, id1, incidents[0].ID)
	require.NotNil(t, incidents[0].Latitude)
	assert.InDelta(t, 9.3, *incidents[0].Latitude, 1e-9)
	assert.InDelta(t, 125.9, *incidents[0].Longitude, 1e-9)
	assert.Equal(t, id2, incidents[1].ID)
	assert.Nil(t, incidents[1].Latitude)
	assert.Nil(t, incidents[1].Longitude)
}

func TestRepository_ReportNotFound(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	d, err := models.NewReportDraft(nil, nil, "vandalism", "graffiti", nil, nil, nil, nil, nil)
	require.NoError(t, err)
	id, err := repo.CreateReport(ctx, d)
	require.NoError(t, err)

	t.Run("update unknown id", func(t *testing.T) {
		found, err := repo.UpdateReportStatus(ctx, id+100, models.StatusResolved)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("delete unknown id", func(t *testing.T) {
		found, err := repo.DeleteReport(ctx, id+100)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("resolve then delete", func(t *testing.T) {
		found, err := repo.UpdateReportStatus(ctx, id, models.StatusResolved)
		require.NoError(t, err)
		assert.True(t, found)

		reports, err := repo.ListReports(ctx)
		require.NoError(t, err)
		require.Len(t, reports, 1)
		assert.Equal(t, models.StatusResolved, reports[0].Status)

		found, err = repo.DeleteReport(ctx, id)
		require.NoError(t, err)
		assert.True(t, found)
		found, err = repo.DeleteReport(ctx, id)
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestRepository_MarkAllNotificationsRead(t *testing.T) {
	// Подготовка
	repo := newTestRepository(t)
	ctx := context.Background()
	unread, err := models.NewNotificationDraft("Report received", "We got your report", "Just now")
	require.NoError(t, err)
	read := unread
	read.Title = "Welcome"
	read.Unread = false
	for _, d := range []models.NotificationDraft{unread, unread, read} {
		_, err := repo.CreateNotification(ctx, d)
		require.NoError(t, err)
	}

	// Действие
	first, err := repo.MarkAllNotificationsRead(ctx)
	require.NoError(t, err)
	second, err := repo.MarkAllNotificationsRead(ctx)
	require.NoError(t, err)

	// Проверки
	assert.Equal(t, int64(2), first)
	assert.Equal(t, int64(0), second)

	notifications, err := repo.ListNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 3)
	for _, n := range notifications {
		assert.False(t, n.Unread, "notification %d", n.ID)
	}
}
