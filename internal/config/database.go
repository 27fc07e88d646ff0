package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Driver - тип бэкенда хранилища
type Driver string

const (
	DriverNone     Driver = ""
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

// DatabaseTarget - итог разрешения конфигурации хранилища
type DatabaseTarget struct {
	Driver Driver
	DSN    string
	// Source - имя источника, из которого взята строка подключения
	Source string
}

// Configured сообщает, найдена ли пригодная конфигурация
func (t DatabaseTarget) Configured() bool {
	return t.Driver != DriverNone && t.DSN != ""
}

// Source - один источник строки подключения в упорядоченном списке
type Source struct {
	Name   string
	Lookup func() (string, bool)
}

// SecretFileSource читает строку подключения из файла секрета
func SecretFileSource(path string) Source {
	return Source{
		Name: "secret",
		Lookup: func() (string, bool) {
			if path == "" {
				return "", false
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return "", false
			}
			return strings.TrimSpace(string(data)), true
		},
	}
}

// EnvSource берет строку подключения из переменной окружения
func EnvSource(key string) Source {
	return Source{
		Name: "env",
		Lookup: func() (string, bool) {
			return os.LookupEnv(key)
		},
	}
}

// LocalFileSource - локальный файл SQLite по умолчанию
func LocalFileSource(path string) Source {
	return Source{
		Name: "local-file",
		Lookup: func() (string, bool) {
			if path == "" {
				return "", false
			}
			return "sqlite://" + path, true
		},
	}
}

// DefaultSources возвращает источники в порядке приоритета: секрет, окружение, локальный файл
func DefaultSources() []Source {
	sources := []Source{
		SecretFileSource(getEnv("DATABASE_URL_FILE", "/run/secrets/database_url")),
		EnvSource("DATABASE_URL"),
	}
	if !getEnvAsBool("LOCAL_STORE_DISABLED", false) {
		sources = append(sources, LocalFileSource(getEnv("SQLITE_PATH", "data/reports.db")))
	}
	return sources
}

// ResolveDatabase выбирает первый источник с непустым значением.
// Если ничего не найдено, возвращается пустая цель и хранилище будет недоступно.
func ResolveDatabase(sources ...Source) DatabaseTarget {
	for _, src := range sources {
		raw, ok := src.Lookup()
		raw = strings.TrimSpace(raw)
		if !ok || raw == "" {
			continue
		}
		driver, dsn := classifyDSN(raw)
		return DatabaseTarget{Driver: driver, DSN: dsn, Source: src.Name}
	}
	return DatabaseTarget{}
}

func classifyDSN(raw string) (Driver, string) {
	lower := strings.ToLower(raw)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DriverPostgres, raw
	case strings.HasPrefix(lower, "sqlite://"):
		return DriverSQLite, raw[len("sqlite://"):]
	case strings.Contains(lower, "host=") && strings.Contains(lower, "dbname="):
		// key=value DSN
		return DriverPostgres, raw
	case strings.Contains(lower, "://"):
		return DriverNone, raw
	case looksLikeSQLitePath(lower):
		return DriverSQLite, raw
	default:
		// неполный key=value DSN или опечатка не должны превращаться в файл на диске
		return DriverNone, raw
	}
}

var sqliteSuffixes = []string{".db", ".sqlite", ".sqlite3"}

// looksLikeSQLitePath принимает путь с расширением файла базы или с разделителем каталогов
func looksLikeSQLitePath(lower string) bool {
	if strings.Contains(lower, "=") {
		return false
	}
	for _, suffix := range sqliteSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return strings.ContainsRune(lower, '/') || strings.ContainsRune(lower, filepath.Separator)
}
