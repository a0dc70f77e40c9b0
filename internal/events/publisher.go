// Package events publishes order lifecycle changes for downstream
// consumers (the realtime tracking feed). Publication is best-effort: a
// broker outage is logged and never fails the transition it describes.
package events

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"time"

	"pizzaria-backend/internal/domain"

	"github.com/segmentio/kafka-go"
)

type StatusEvent struct {
	OrderID     string             `json:"orderId"`
	PizzeriaID  string             `json:"pizzeriaId"`
	OrderNumber int64              `json:"orderNumber"`
	Status      domain.OrderStatus `json:"status"`
	OccurredAt  time.Time          `json:"occurredAt"`
}

// Publisher wraps a kafka writer. A nil Publisher is valid and drops events.
type Publisher struct {
	writer *kafka.Writer
	logger *log.Logger
}

func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}

func NewPublisher(writer *kafka.Writer, logger *log.Logger) *Publisher {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Publisher{writer: writer, logger: logger}
}

// StatusChanged emits one event keyed by order id, so all events of one
// order land on the same partition in order.
func (p *Publisher) StatusChanged(ctx context.Context, order *domain.Order) {
	if p == nil || p.writer == nil {
		return
	}
	event := StatusEvent{
		OrderID:     order.ID,
		PizzeriaID:  order.PizzeriaID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		OccurredAt:  time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Printf("marshal status event for order %s: %v", order.ID, err)
		return
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.ID),
		Value: payload,
	})
	if err != nil {
		p.logger.Printf("publish status event for order %s: %v", order.ID, err)
	}
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
