package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/pocketdiner/pocket-diner/internal/cart"
)

const (
	TopicCart   = "cart_events"
	TopicOrders = "order_events"

	publishTimeout = 5 * time.Second
)

// Producer publishes domain events to Kafka. A nil *Producer is valid and
// drops everything, so callers never need to branch on whether events are
// enabled.
type Producer struct {
	w *kafka.Writer
	l *slog.Logger
}

func NewProducer(brokers []string, l *slog.Logger) *Producer {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &Producer{w: w, l: l}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, event interface{}) error {
	if p == nil {
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("kafka: marshal event: %w", err)
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
	})
	if err != nil {
		return fmt.Errorf("kafka: write: %w", err)
	}
	return nil
}

// WatchLedger subscribes the producer to a session's ledger. Publish
// failures are logged and swallowed: cart mutations never fail because the
// broker is down.
func (p *Producer) WatchLedger(sessionID string, l *cart.Ledger) {
	if p == nil {
		return
	}
	l.Subscribe(func(e cart.Event) {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := p.Publish(ctx, TopicCart, sessionID, e); err != nil {
			p.l.Warn("cart_event_publish_failed", "session_id", sessionID, "error", err)
		}
	})
}

// PublishOrder emits the acceptance event for a submitted order.
func (p *Producer) PublishOrder(ctx context.Context, sessionID string, order interface{}) {
	if p == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := p.Publish(pubCtx, TopicOrders, sessionID, order); err != nil {
		p.l.Warn("order_event_publish_failed", "session_id", sessionID, "error", err)
	}
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.w.Close()
}
