package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/civic_guardian/internal/config"
	v1 "github.com/shenikar/civic_guardian/internal/handler/http/v1"
	"github.com/shenikar/civic_guardian/internal/geo"
	"github.com/shenikar/civic_guardian/internal/metrics"
	"github.com/shenikar/civic_guardian/internal/service"
	"github.com/shenikar/civic_guardian/internal/session"
	"github.com/shenikar/civic_guardian/internal/store"
	"github.com/shenikar/civic_guardian/internal/webhook"
	"github.com/shenikar/civic_guardian/pkg/logger"
	redisclient "github.com/shenikar/civic_guardian/pkg/redis"

	_ "github.com/shenikar/civic_guardian/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title CivicGuardian API
// @version 1.0
// @description Incident reporting dashboard: reports, map incidents, notifications and emergency alerts.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Метрики
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Хранилище. Без конфигурации или при недоступной базе сервис работает в деградированном режиме.
	st := store.New(cfg.Database, store.NewOpener(store.OpenerOptions{
		Timeout:          cfg.StoreTimeout,
		SSLRequiredHosts: cfg.SSLRequiredHosts,
		Logger:           log,
	}), cfg.StoreTimeout, log, m)
	defer func() {
		if err := st.Close(); err != nil {
			log.WithError(err).Warn("Failed to close store")
		}
	}()

	if st.Initialize(ctx) {
		log.WithFields(logrus.Fields{
			"driver": cfg.Database.Driver,
			"source": cfg.Database.Source,
		}).Info("Store initialized")
	} else {
		log.Warn("Store is not available, sessions will keep data locally")
	}

	// Redis нужен только для кеша геолокации
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.WithError(err).Warn("Redis is not available, location cache disabled")
	}
	var geoCache geo.Cache
	if redisClient != nil {
		defer redisClient.Close()
		geoCache = geo.NewRedisCache(redisClient)
		log.Info("Successfully connected to Redis")
	}

	locator := geo.NewLocator(geo.Options{
		Endpoint:   cfg.GeoEndpoint,
		Timeout:    cfg.GeoTimeout,
		CacheTTL:   cfg.GeoCacheTTL,
		DefaultLat: cfg.DefaultLat,
		DefaultLng: cfg.DefaultLng,
	}, geoCache, log)

	// Инициализация издателя вебхуков
	webhookPublisher := webhook.NewHTTPWebhookPublisher(webhook.Options{
		URL:        cfg.EmergencyWebhookURL,
		Secret:     cfg.EmergencyWebhookSecret,
		Timeout:    cfg.EmergencyTimeout,
		MaxRetries: cfg.EmergencyMaxRetries,
		BaseDelay:  cfg.EmergencyBaseDelay,
	}, log)

	// Реестр сессий и сервис
	registry := session.NewRegistry(st, log, m, cfg.SessionIdleTTL)
	dashboardService := service.NewDashboardService(registry, st, locator, webhookPublisher, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(dashboardService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.MaxMultipartMemory = 8 << 20
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
		return
	}

	log.Info("Server gracefully stopped")
}
