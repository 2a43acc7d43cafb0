package port

import (
	"context"
	"photodrop/internal/core/domain"
)

// NotificationPublisher publishes accepted-photo notifications to a broker
type NotificationPublisher interface {
	PublishPhotoAccepted(ctx context.Context, notification domain.PhotoAccepted) error
}

// EventConsumer is an interface to define a notification consumer (kafka, nats, ...)
type EventConsumer interface {
	Subscribe(ctx context.Context, handler MessageService) error
	Close() error
}

// MessageService is an interface to define message handling
type MessageService interface {
	HandleMessage(ctx context.Context, data []byte) error
}
