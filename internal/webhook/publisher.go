package webhook

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrNotConfigured - адрес вебхука не задан, доставка пропущена
var ErrNotConfigured = errors.New("webhook url is not configured")

// EmergencyEvent - данные тревожного вызова для экстренных служб
type EmergencyEvent struct {
	SessionID string    `json:"session_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Source    string    `json:"location_source"`
	Timestamp time.Time `json:"timestamp"`
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event EmergencyEvent) error
}

// Options - параметры доставки
type Options struct {
	URL        string
	Secret     string
	Timeout    time.Duration
	MaxRetries int
	BaseDelay  time.Duration
}

// HTTPWebhookPublisher доставляет событие синхронно с повторами и экспоненциальной задержкой
type HTTPWebhookPublisher struct {
	opts       Options
	logger     *logrus.Logger
	httpClient *http.Client
}

// NewHTTPWebhookPublisher создает новый HTTPWebhookPublisher
func NewHTTPWebhookPublisher(opts Options, logger *logrus.Logger) *HTTPWebhookPublisher {
	if opts.MaxRetries < 1 {
		opts.MaxRetries = 1
	}
	return &HTTPWebhookPublisher{
		opts:   opts,
		logger: logger,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
	}
}

// Publish отправляет событие. Ожидание между попытками прерывается отменой ctx.
func (p *HTTPWebhookPublisher) Publish(ctx context.Context, event EmergencyEvent) error {
	log := p.logger.WithField("event_session_id", event.SessionID)

	if p.opts.URL == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		return ErrNotConfigured
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	delay := p.opts.BaseDelay
	var lastErr error
	for i := 0; i < p.opts.MaxRetries; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("webhook delivery cancelled: %w", ctx.Err())
			case <-time.After(delay):
			}
			delay *= 2 // Экспоненциальная задержка
		}

		lastErr = p.send(ctx, payload)
		if lastErr == nil {
			log.Info("Webhook delivered successfully.")
			return nil
		}
		log.WithError(lastErr).Warnf("Webhook delivery failed. Retries left: %d", p.opts.MaxRetries-1-i)
	}

	log.Errorf("Failed to deliver webhook for event after %d retries.", p.opts.MaxRetries)
	return fmt.Errorf("webhook delivery failed: %w", lastErr)
}

func (p *HTTPWebhookPublisher) send(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.opts.URL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если секрет задан
	if p.opts.Secret != "" {
		req.Header.Set("X-Webhook-Signature", generateHMACSHA256(payload, p.opts.Secret))
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}
	return nil
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
