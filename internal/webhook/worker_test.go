package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shenikar/disaster_response_system/internal/config"
	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(cfg *config.Config) *AlertWorker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return NewAlertWorker(nil, logger, cfg)
}

func testEvent() AlertEvent {
	return AlertEvent{
		Alert: &models.Alert{
			ID:    "ALERT-1748779200-Mumbai",
			Level: models.AlertCritical,
		},
		Snapshot:  3,
		Published: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestDeliverAlert_SendsSignedPayload(t *testing.T) {
	// Подготовка
	payload := `{"alert":{"id":"ALERT-1748779200-Mumbai"}}`
	received := make(chan *http.Request, 1)
	bodies := make(chan string, 1)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		bodies <- string(body)
		received <- r
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := &config.Config{
		WebhookURL:        server.URL,
		WebhookSecret:     "test-secret",
		WebhookTimeout:    5 * time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  10 * time.Millisecond,
	}
	worker := newTestWorker(cfg)

	// Действие
	worker.deliverAlert(context.Background(), testEvent(), payload)

	// Проверки
	req := <-received
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Equal(t, payload, <-bodies)

	mac := hmac.New(sha256.New, []byte("test-secret"))
	mac.Write([]byte(payload))
	expected := hex.EncodeToString(mac.Sum(nil))
	assert.Equal(t, expected, req.Header.Get("X-Webhook-Signature"))
}

func TestDeliverAlert_RetriesOnServerError(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := &config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    5 * time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	worker := newTestWorker(cfg)

	worker.deliverAlert(context.Background(), testEvent(), `{}`)

	assert.Equal(t, 3, attempts)
}

func TestDeliverAlert_GivesUpAfterMaxRetries(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	cfg := &config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    5 * time.Second,
		WebhookMaxRetries: 2,
		WebhookBaseDelay:  time.Millisecond,
	}
	worker := newTestWorker(cfg)

	worker.deliverAlert(context.Background(), testEvent(), `{}`)

	assert.Equal(t, 2, attempts)
}

func TestDeliverAlert_SkipsWithoutURL(t *testing.T) {
	cfg := &config.Config{
		WebhookTimeout:    5 * time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	worker := newTestWorker(cfg)

	// Не должно паниковать и не должно никуда ходить
	worker.deliverAlert(context.Background(), testEvent(), `{}`)
}

func TestDeliverAlert_NoSignatureWithoutSecret(t *testing.T) {
	received := make(chan *http.Request, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received <- r
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := &config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    5 * time.Second,
		WebhookMaxRetries: 1,
		WebhookBaseDelay:  time.Millisecond,
	}
	worker := newTestWorker(cfg)

	worker.deliverAlert(context.Background(), testEvent(), `{}`)

	req := <-received
	require.NotNil(t, req)
	assert.Empty(t, req.Header.Get("X-Webhook-Signature"))
}
