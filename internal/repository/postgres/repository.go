// Package postgres - бэкенд хранилища на PostgreSQL через pgxpool
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Ping проверяет соединение с БД
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// Close закрывает пул соединений
func (r *Repository) Close() error {
	r.db.Close()
	return nil
}
