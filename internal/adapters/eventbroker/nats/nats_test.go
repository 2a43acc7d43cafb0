package nats_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	natsbroker "photodrop/internal/adapters/eventbroker/nats"
	"photodrop/internal/config"
	"photodrop/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type mockHandler struct {
	messages [][]byte
	received chan struct{}
	err      error
	mu       sync.Mutex
}

func (m *mockHandler) HandleMessage(ctx context.Context, data []byte) error {
	m.mu.Lock()
	m.messages = append(m.messages, data)
	m.mu.Unlock()

	if m.received != nil {
		m.received <- struct{}{}
	}
	return m.err
}

func setupNATSContainer(t *testing.T) (string, func()) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "nats:2.10-alpine",
		ExposedPorts: []string{"4222/tcp"},
		Cmd:          []string{"-js"},
		WaitingFor:   wait.ForLog("Server is ready"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "4222")
	require.NoError(t, err)

	cleanup := func() {
		_ = container.Terminate(ctx)
	}

	return "nats://" + host + ":" + port.Port(), cleanup
}

func testConfig(url string) config.NATSConfig {
	return config.NATSConfig{
		URL:          url,
		StreamName:   "PHOTODROP-TEST",
		Subject:      "photodrop-test.photo.accepted",
		ConsumerName: "photodrop-test-consumer",
		DeliverGroup: "photodrop-test-workers",
	}
}

func TestPublishAndSubscribe(t *testing.T) {
	natsURL, cleanup := setupNATSContainer(t)
	defer cleanup()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := testConfig(natsURL)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	publisher, err := natsbroker.NewNATSPublisher(ctx, cfg, logger)
	require.NoError(t, err)
	defer publisher.Close()

	consumer, err := natsbroker.NewNATSConsumer(cfg, logger)
	require.NoError(t, err)
	defer consumer.Close()

	handler := &mockHandler{received: make(chan struct{}, 1)}
	require.NoError(t, consumer.Subscribe(ctx, handler))

	notification := domain.PhotoAccepted{
		PhotoID:        uuid.New(),
		EventID:        uuid.New(),
		StorageKey:     "events/e1/p1",
		TakenAt:        time.Date(2025, 7, 12, 15, 30, 0, 0, time.UTC),
		CreationSource: domain.CreationSourceEXIF,
		AcceptedAt:     time.Now().UTC(),
	}
	require.NoError(t, publisher.PublishPhotoAccepted(ctx, notification))

	select {
	case <-handler.received:
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for message")
	}

	handler.mu.Lock()
	defer handler.mu.Unlock()
	require.Len(t, handler.messages, 1)

	var got domain.PhotoAccepted
	require.NoError(t, json.Unmarshal(handler.messages[0], &got))
	assert.Equal(t, notification.PhotoID, got.PhotoID)
	assert.Equal(t, notification.EventID, got.EventID)
	assert.Equal(t, notification.StorageKey, got.StorageKey)
	assert.Equal(t, domain.CreationSourceEXIF, got.CreationSource)
}

func TestSubscribe_NakOnHandlerError(t *testing.T) {
	natsURL, cleanup := setupNATSContainer(t)
	defer cleanup()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := testConfig(natsURL)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	publisher, err := natsbroker.NewNATSPublisher(ctx, cfg, logger)
	require.NoError(t, err)
	defer publisher.Close()

	consumer, err := natsbroker.NewNATSConsumer(cfg, logger)
	require.NoError(t, err)
	defer consumer.Close()

	handler := &mockHandler{
		received: make(chan struct{}, 10),
		err:      assert.AnError,
	}
	require.NoError(t, consumer.Subscribe(ctx, handler))

	require.NoError(t, publisher.PublishPhotoAccepted(ctx, domain.PhotoAccepted{
		PhotoID: uuid.New(),
		EventID: uuid.New(),
	}))

	// nak triggers a redelivery, so the handler runs more than once
	deliveries := 0
	timeout := time.After(15 * time.Second)
	for deliveries < 2 {
		select {
		case <-handler.received:
			deliveries++
		case <-timeout:
			t.Fatalf("expected redelivery, got %d deliveries", deliveries)
		}
	}
}
