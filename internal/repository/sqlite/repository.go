// Package sqlite - бэкенд хранилища на локальном файле SQLite
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// timestampLayout совпадает с DEFAULT в миграциях sqlite
const timestampLayout = "2006-01-02T15:04:05.000Z"

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func parseTimestamp(raw string) (time.Time, error) {
	ts, err := time.Parse(timestampLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed created_at %q: %w", raw, err)
	}
	return ts, nil
}
