package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
	"github.com/sirupsen/logrus"

	"github.com/shenikar/civic_guardian/internal/config"
	pgrepo "github.com/shenikar/civic_guardian/internal/repository/postgres"
	sqliterepo "github.com/shenikar/civic_guardian/internal/repository/sqlite"
	"github.com/shenikar/civic_guardian/migrations"
	"github.com/shenikar/civic_guardian/pkg/postgres"
	"github.com/shenikar/civic_guardian/pkg/sqlite"
)

// Opener подключается к цели и применяет миграции
type Opener func(ctx context.Context, target config.DatabaseTarget) (Backend, error)

// OpenerOptions - параметры подключения по умолчанию
type OpenerOptions struct {
	Timeout          time.Duration
	SSLRequiredHosts []string
	Logger           *logrus.Logger
}

// NewOpener возвращает Opener для postgres и sqlite
func NewOpener(opts OpenerOptions) Opener {
	return func(ctx context.Context, target config.DatabaseTarget) (Backend, error) {
		switch target.Driver {
		case config.DriverPostgres:
			return openPostgres(ctx, target.DSN, opts)
		case config.DriverSQLite:
			return openSQLite(ctx, target.DSN, opts)
		default:
			return nil, fmt.Errorf("unsupported database driver %q", target.Driver)
		}
	}
}

func openPostgres(ctx context.Context, dsn string, opts OpenerOptions) (Backend, error) {
	dsn = postgres.EnforceSSL(dsn, opts.SSLRequiredHosts)

	pool, err := postgres.NewPostgresDB(ctx, dsn, opts.Timeout)
	if err != nil {
		return nil, err
	}

	err = runMigrations(opts.Logger, "postgres", func() (*sql.DB, database.Driver, error) {
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return nil, nil, err
		}
		driver, err := migratepgx.WithInstance(db, &migratepgx.Config{})
		return db, driver, err
	})
	if err != nil {
		pool.Close()
		return nil, err
	}
	return pgrepo.New(pool), nil
}

func openSQLite(ctx context.Context, path string, opts OpenerOptions) (Backend, error) {
	db, err := sqlite.NewSQLiteDB(ctx, path, opts.Timeout)
	if err != nil {
		return nil, err
	}

	err = runMigrations(opts.Logger, "sqlite", func() (*sql.DB, database.Driver, error) {
		mdb, err := sql.Open("sqlite", path)
		if err != nil {
			return nil, nil, err
		}
		driver, err := migratesqlite.WithInstance(mdb, &migratesqlite.Config{})
		return mdb, driver, err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return sqliterepo.New(db), nil
}

// runMigrations применяет встроенные миграции диалекта. Повторный запуск ничего не меняет.
func runMigrations(log *logrus.Logger, dialect string, connect func() (*sql.DB, database.Driver, error)) error {
	if log != nil {
		log.WithField("dialect", dialect).Info("Running database migrations...")
	}

	src, err := iofs.New(migrations.FS, dialect)
	if err != nil {
		return fmt.Errorf("could not open embedded migrations: %w", err)
	}

	db, driver, err := connect()
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return fmt.Errorf("could not create migrate driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, dialect, driver)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if log != nil {
		log.WithField("dialect", dialect).Info("Database migrations applied successfully")
	}
	return nil
}
