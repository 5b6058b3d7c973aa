package ports

import (
	"context"

	"shopfloor/internal/core/domain/model/order"
)

// EventPublisher delivers order change notifications. Events are published
// after the change is committed and are informational only.
type EventPublisher interface {
	Publish(ctx context.Context, event order.ChangedEvent) error
}
