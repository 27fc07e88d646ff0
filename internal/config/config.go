package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort  string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Цель подключения к хранилищу, вычисляется один раз при старте
	Database DatabaseTarget

	// Store Config
	StoreTimeout     time.Duration `env:"STORE_TIMEOUT" envDefault:"5s"`
	SSLRequiredHosts []string      `env:"SSL_REQUIRED_HOSTS"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Geolocation Config
	GeoEndpoint string        `env:"GEO_ENDPOINT" envDefault:"https://ipinfo.io"`
	GeoTimeout  time.Duration `env:"GEO_TIMEOUT" envDefault:"2s"`
	GeoCacheTTL time.Duration `env:"GEO_CACHE_TTL" envDefault:"1h"`
	DefaultLat  float64       `env:"DEFAULT_LAT" envDefault:"9.337060"`
	DefaultLng  float64       `env:"DEFAULT_LNG" envDefault:"125.969800"`

	// Emergency webhook Config
	EmergencyWebhookURL    string        `env:"EMERGENCY_WEBHOOK_URL"`
	EmergencyWebhookSecret string        `env:"EMERGENCY_WEBHOOK_SECRET"`
	EmergencyTimeout       time.Duration `env:"EMERGENCY_WEBHOOK_TIMEOUT" envDefault:"3s"`
	EmergencyMaxRetries    int           `env:"EMERGENCY_WEBHOOK_MAX_RETRIES" envDefault:"3"`
	EmergencyBaseDelay     time.Duration `env:"EMERGENCY_WEBHOOK_BASE_DELAY" envDefault:"200ms"`

	// Sessions Config
	SessionIdleTTL time.Duration `env:"SESSION_IDLE_TTL" envDefault:"2h"`

	// API Keys for admin routes
	APIKeys []string `env:"API_KEYS"`
}

var defaultSSLRequiredHosts = []string{
	"supabase.co",
	"supabase.com",
	"neon.tech",
	"render.com",
	"rds.amazonaws.com",
	"postgres.database.azure.com",
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла.
// Отсутствие строки подключения не ошибка: хранилище тогда работает в деградированном режиме.
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		LogFormat:              getEnv("LOG_FORMAT", "json"),
		StoreTimeout:           getEnvAsDuration("STORE_TIMEOUT", 5*time.Second),
		SSLRequiredHosts:       getEnvAsList("SSL_REQUIRED_HOSTS", defaultSSLRequiredHosts),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		GeoEndpoint:            getEnv("GEO_ENDPOINT", "https://ipinfo.io"),
		GeoTimeout:             getEnvAsDuration("GEO_TIMEOUT", 2*time.Second),
		GeoCacheTTL:            getEnvAsDuration("GEO_CACHE_TTL", time.Hour),
		DefaultLat:             getEnvAsFloat("DEFAULT_LAT", 9.337060),
		DefaultLng:             getEnvAsFloat("DEFAULT_LNG", 125.969800),
		EmergencyWebhookURL:    os.Getenv("EMERGENCY_WEBHOOK_URL"),
		EmergencyWebhookSecret: os.Getenv("EMERGENCY_WEBHOOK_SECRET"),
		EmergencyTimeout:       getEnvAsDuration("EMERGENCY_WEBHOOK_TIMEOUT", 3*time.Second),
		EmergencyMaxRetries:    getEnvAsInt("EMERGENCY_WEBHOOK_MAX_RETRIES", 3),
		EmergencyBaseDelay:     getEnvAsDuration("EMERGENCY_WEBHOOK_BASE_DELAY", 200*time.Millisecond),
		SessionIdleTTL:         getEnvAsDuration("SESSION_IDLE_TTL", 2*time.Hour),
		APIKeys:                getEnvAsList("API_KEYS", nil),
	}

	cfg.Database = ResolveDatabase(DefaultSources()...)

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает список через запятую
func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
