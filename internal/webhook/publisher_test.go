package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

var testEvent = EmergencyEvent{
	SessionID: "3f1c",
	Latitude:  9.33706,
	Longitude: 125.9698,
	Source:    "default",
	Timestamp: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
}

func TestPublish_SignedDelivery(t *testing.T) {
	// Подготовка
	var got EmergencyEvent
	var signature string
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		signature = r.Header.Get("X-Webhook-Signature")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	p := NewHTTPWebhookPublisher(Options{
		URL:        srv.URL,
		Secret:     "s3cret",
		Timeout:    time.Second,
		MaxRetries: 3,
		BaseDelay:  time.Millisecond,
	}, testLogger())

	// Действие
	err := p.Publish(context.Background(), testEvent)

	// Проверки
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, testEvent, got)
	assert.Equal(t, generateHMACSHA256(body, "s3cret"), signature)
}

func TestPublish_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := NewHTTPWebhookPublisher(Options{URL: srv.URL, Timeout: time.Second, MaxRetries: 3, BaseDelay: time.Millisecond}, testLogger())

	require.NoError(t, p.Publish(context.Background(), testEvent))
	assert.Equal(t, int32(3), calls.Load())
}

func TestPublish_GivesUp(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewHTTPWebhookPublisher(Options{URL: srv.URL, Timeout: time.Second, MaxRetries: 2, BaseDelay: time.Millisecond}, testLogger())

	err := p.Publish(context.Background(), testEvent)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Equal(t, int32(2), calls.Load())
}

func TestPublish_CancelledBetweenRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := NewHTTPWebhookPublisher(Options{URL: srv.URL, Timeout: time.Second, MaxRetries: 5, BaseDelay: time.Hour}, testLogger())
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := p.Publish(ctx, testEvent)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPublish_NotConfigured(t *testing.T) {
	p := NewHTTPWebhookPublisher(Options{}, testLogger())

	assert.ErrorIs(t, p.Publish(context.Background(), testEvent), ErrNotConfigured)
}
