package eventlog

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/core/ports"
	"shopfloor/internal/pkg/metrics"
)

var (
	_ ports.EventPublisher = &Publisher{}
	_ ports.EventPublisher = &MetricsPublisher{}
	_ ports.EventPublisher = MultiPublisher{}
)

// Publisher writes order changes to the application log. It is used when no
// broker is configured.
type Publisher struct {
	logger *slog.Logger
}

func NewPublisher(logger *slog.Logger) *Publisher {
	return &Publisher{logger: logger.With("component", "OrderEventLog")}
}

func (p *Publisher) Publish(ctx context.Context, event order.ChangedEvent) error {
	p.logger.InfoContext(ctx, "order changed",
		"order_id", event.OrderID.String(),
		"name", event.Name,
		"product", event.Product,
		"status", event.Status.String(),
		"score", event.Score,
		"deadline", event.Deadline.String(),
	)
	return nil
}

// MetricsPublisher counts order changes by resulting status.
type MetricsPublisher struct {
	registry *metrics.Registry
}

func NewMetricsPublisher(registry *metrics.Registry) *MetricsPublisher {
	return &MetricsPublisher{registry: registry}
}

func (p *MetricsPublisher) Publish(_ context.Context, event order.ChangedEvent) error {
	p.registry.OrderEvents.WithLabelValues(strings.ToLower(event.Status.String())).Inc()
	return nil
}

// MultiPublisher fans an event out to every publisher. One failing publisher
// does not stop the others; their errors are joined.
type MultiPublisher []ports.EventPublisher

func NewMultiPublisher(publishers ...ports.EventPublisher) MultiPublisher {
	return MultiPublisher(publishers)
}

func (m MultiPublisher) Publish(ctx context.Context, event order.ChangedEvent) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
