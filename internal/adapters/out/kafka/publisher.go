package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

var _ ports.EventPublisher = &Publisher{}

// OrderChangedMessage is the JSON value of an order changed record. The key
// of the record is the order id, so every change of one order lands in the
// same partition.
type OrderChangedMessage struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Product         string  `json:"product"`
	Status          string  `json:"status"`
	Score           float64 `json:"score"`
	ProductionHours float64 `json:"productionHours"`
	Deadline        string  `json:"deadline"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type Publisher struct {
	writer messageWriter
}

// NewPublisher creates a synchronous writer for topic.
// brokers can be a comma-separated list of host:port.
func NewPublisher(brokers string, topic string) (*Publisher, error) {
	var addrs []string
	for _, a := range strings.Split(brokers, ",") {
		if a = strings.TrimSpace(a); a != "" {
			addrs = append(addrs, a)
		}
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("kafka brokers are empty")
	}
	if strings.TrimSpace(topic) == "" {
		return nil, fmt.Errorf("kafka topic is empty")
	}

	return &Publisher{writer: &kafka.Writer{
		Addr:                   kafka.TCP(addrs...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}}, nil
}

// NewPublisherWith is only for tests to inject a fake writer.
func NewPublisherWith(w messageWriter) *Publisher {
	return &Publisher{writer: w}
}

func (p *Publisher) Publish(ctx context.Context, event order.ChangedEvent) error {
	value, err := json.Marshal(newOrderChangedMessage(event))
	if err != nil {
		return fmt.Errorf("marshal order changed event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID.String()),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write order changed event: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying writer when it supports it.
func (p *Publisher) Close() error {
	if c, ok := p.writer.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

func newOrderChangedMessage(event order.ChangedEvent) OrderChangedMessage {
	return OrderChangedMessage{
		ID:              event.OrderID.String(),
		Name:            event.Name,
		Product:         event.Product,
		Status:          strings.ToLower(event.Status.String()),
		Score:           event.Score,
		ProductionHours: event.ProductionHours,
		Deadline:        event.Deadline.String(),
	}
}
