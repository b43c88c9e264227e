package notify

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/dont_forget_tracker/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestWorker(cfg *config.Config) *PushWorker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return NewPushWorker(nil, logger, cfg)
}

func TestProcessPushJob_SignsAndDelivers(t *testing.T) {
	payload := `{"delivery_id":"d-1","kind":"notification"}`
	var gotSignature, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotSignature = r.Header.Get("X-Push-Signature")
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	worker := newTestWorker(&config.Config{
		PushGatewayURL:    server.URL,
		PushGatewaySecret: "secret",
		PushTimeout:       time.Second,
		PushMaxAttempts:   1,
	})

	ok := worker.processPushJob(context.Background(), PushJob{DeliveryID: "d-1", Kind: JobNotification}, payload)

	assert.True(t, ok)
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, generateHMACSHA256(payload, "secret"), gotSignature)
}

func TestProcessPushJob_SingleAttemptByDefault(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	worker := newTestWorker(&config.Config{
		PushGatewayURL:  server.URL,
		PushTimeout:     time.Second,
		PushMaxAttempts: 1,
		PushBaseDelay:   time.Millisecond,
	})

	ok := worker.processPushJob(context.Background(), PushJob{DeliveryID: "d-2"}, `{}`)

	assert.False(t, ok)
	assert.Equal(t, int32(1), calls.Load())
}

func TestProcessPushJob_RetriesWhenConfigured(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker := newTestWorker(&config.Config{
		PushGatewayURL:  server.URL,
		PushTimeout:     time.Second,
		PushMaxAttempts: 3,
		PushBaseDelay:   time.Millisecond,
	})

	ok := worker.processPushJob(context.Background(), PushJob{DeliveryID: "d-3"}, `{}`)

	assert.True(t, ok)
	assert.Equal(t, int32(3), calls.Load())
}

func TestProcessPushJob_NoGateway(t *testing.T) {
	worker := newTestWorker(&config.Config{PushMaxAttempts: 1})

	assert.False(t, worker.processPushJob(context.Background(), PushJob{DeliveryID: "d-4"}, `{}`))
}

func TestGenerateHMACSHA256(t *testing.T) {
	// Известное значение HMAC-SHA256("key", "The quick brown fox jumps over the lazy dog")
	assert.Equal(t,
		"f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8",
		generateHMACSHA256("The quick brown fox jumps over the lazy dog", "key"),
	)
}
