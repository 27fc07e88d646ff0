package postgres

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPostgresDB создает новый пул соединений PostgreSQL.
// Подключение и ping ограничены таймаутом, чтобы недоступная база не блокировала старт.
func NewPostgresDB(ctx context.Context, dsn string, timeout time.Duration) (*pgxpool.Pool, error) {
	cfgPool, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("ошибка при разборе конфигурации postgres: %w", err)
	}
	cfgPool.ConnConfig.ConnectTimeout = timeout

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	dbpool, err := pgxpool.NewWithConfig(ctx, cfgPool)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать пул соединений: %w", err)
	}

	// Проверяем соединение с базой данных
	err = dbpool.Ping(ctx)
	if err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("не удалось выполнить ping к postgres: %w", err)
	}

	return dbpool, nil
}

// EnforceSSL добавляет sslmode=require, если хост относится к управляемым базам
// из списка и режим SSL в строке подключения не задан.
func EnforceSSL(dsn string, managedHosts []string) string {
	if strings.Contains(strings.ToLower(dsn), "sslmode=") {
		return dsn
	}

	host, isURL := dsnHost(dsn)
	if host == "" || !matchesManagedHost(host, managedHosts) {
		return dsn
	}

	if !isURL {
		return dsn + " sslmode=require"
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&sslmode=require"
	}
	return dsn + "?sslmode=require"
}

func dsnHost(dsn string) (string, bool) {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return "", true
		}
		return strings.ToLower(u.Hostname()), true
	}
	// key=value формат
	for _, field := range strings.Fields(dsn) {
		if k, v, ok := strings.Cut(field, "="); ok && strings.EqualFold(k, "host") {
			return strings.ToLower(strings.Trim(v, "'")), false
		}
	}
	return "", false
}

func matchesManagedHost(host string, managedHosts []string) bool {
	for _, suffix := range managedHosts {
		suffix = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(suffix), "."))
		if suffix == "" {
			continue
		}
		if host == suffix || strings.HasSuffix(host, "."+suffix) {
			return true
		}
	}
	return false
}
