package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"photodrop/internal/config"
	"photodrop/internal/core/domain"
	"photodrop/internal/core/port"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// Publisher publishes accepted-photo notifications to JetStream
type Publisher struct {
	logger *slog.Logger
	conn   *nats.Conn
	js     jetstream.JetStream
	config config.NATSConfig
}

var _ port.NotificationPublisher = (*Publisher)(nil)

// NewNATSPublisher creates a publisher and makes sure the stream exists
func NewNATSPublisher(ctx context.Context, cfg config.NATSConfig, logger *slog.Logger) (*Publisher, error) {
	conn, js, err := connect(cfg, cfg.StreamName+"-publisher", logger)
	if err != nil {
		return nil, err
	}

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     cfg.StreamName,
		Subjects: []string{cfg.Subject},
	})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create stream: %w", err)
	}

	return &Publisher{
		conn:   conn,
		js:     js,
		config: cfg,
		logger: logger,
	}, nil
}

// PublishPhotoAccepted publishes the notification on the configured subject
func (p *Publisher) PublishPhotoAccepted(ctx context.Context, notification domain.PhotoAccepted) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	if _, err := p.js.Publish(ctx, p.config.Subject, payload); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	p.logger.Info("photo accepted notification published",
		slog.String("photoID", notification.PhotoID.String()),
		slog.String("eventID", notification.EventID.String()))

	return nil
}

// Close closes the underlying connection
func (p *Publisher) Close() error {
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
