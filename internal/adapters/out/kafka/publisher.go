// Package kafka publishes outbox messages to a Kafka topic with the pure-Go
// segmentio client.
package kafka

import (
	"context"
	"io"
	"strings"

	kafkago "github.com/segmentio/kafka-go"
)

// EventTypeHeader carries the order event type on every message.
const EventTypeHeader = "event_type"

// messageWriter is the part of kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// Publisher implements ports.EventPublisher. Messages keyed by order id land
// on the same partition, so one order's events keep their order.
type Publisher struct {
	writer messageWriter
	closer io.Closer
}

// NewPublisher creates a synchronous publisher. brokers is a comma-separated
// list of host:port.
func NewPublisher(brokers string, topic string) *Publisher {
	addrs := make([]string, 0)
	for _, a := range strings.Split(brokers, ",") {
		if a = strings.TrimSpace(a); a != "" {
			addrs = append(addrs, a)
		}
	}

	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(addrs...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return &Publisher{writer: w, closer: w}
}

// NewPublisherWith wraps an existing writer.
func NewPublisherWith(w messageWriter) *Publisher {
	p := &Publisher{writer: w}
	if c, ok := w.(io.Closer); ok {
		p.closer = c
	}
	return p
}

// Publish blocks until the broker acknowledged the message or ctx ends.
func (p *Publisher) Publish(ctx context.Context, key string, eventType string, payload []byte) error {
	return p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(key),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: EventTypeHeader, Value: []byte(eventType)},
		},
	})
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer.Close()
}
