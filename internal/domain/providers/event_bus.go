package providers

import (
	"context"

	"github.com/medilinkx/benefits-backend/internal/domain/entities"
)

// EventBus defines the interface for publishing and subscribing to voucher
// lifecycle events
type EventBus interface {
	// Publish publishes an event to a channel
	Publish(ctx context.Context, channel string, event *entities.VoucherEvent) error

	// Subscribe subscribes to events on a channel
	Subscribe(ctx context.Context, channel string) (<-chan *entities.VoucherEvent, error)

	// Unsubscribe removes a subscription
	Unsubscribe(ctx context.Context, channel string, ch <-chan *entities.VoucherEvent) error

	// Close shuts down the bus
	Close() error
}
