// Package events publishes order lifecycle events to RabbitMQ.
package events

import (
	"context"
	"sync"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xenking/pos-engine/internal/domain/order"
)

const publishTimeout = 5 * time.Second

var _ order.Publisher = (*Publisher)(nil)

type channel interface {
	PublishWithDeferredConfirmWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) (*amqp.DeferredConfirmation, error)
	Close() error
}

// Publisher sends each event to a topic exchange, routed by event type, and
// waits for the broker confirm.
type Publisher struct {
	conn     *amqp.Connection
	mu       sync.Mutex
	ch       channel
	exchange string
	now      func() time.Time
}

// Dial connects to the broker, declares the durable topic exchange and puts
// the channel into confirm mode.
func Dial(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "dial broker")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(err, "open channel")
	}
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, errors.Wrapf(err, "declare exchange %s", exchange)
	}
	if err := ch.Confirm(false); err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(err, "enable confirms")
	}
	return &Publisher{conn: conn, ch: ch, exchange: exchange, now: time.Now}, nil
}

// Publish sends e as a persistent JSON message.
func (p *Publisher) Publish(ctx context.Context, e order.Event) error {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	conf, err := p.ch.PublishWithDeferredConfirmWithContext(ctx, p.exchange, e.Type, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    e.OrderID + ":" + e.Type,
		Timestamp:    p.now(),
		Type:         e.Type,
		Body:         Encode(e),
	})
	if err != nil {
		return errors.Wrapf(err, "publish %s", e.Type)
	}
	if conf == nil {
		return nil
	}
	ok, err := conf.WaitContext(ctx)
	if err != nil {
		return errors.Wrapf(err, "confirm %s", e.Type)
	}
	if !ok {
		return errors.Errorf("broker rejected %s", e.Type)
	}
	return nil
}

// Ping reports whether the broker connection is still open.
func (p *Publisher) Ping(context.Context) error {
	if p.conn == nil || p.conn.IsClosed() {
		return errors.New("broker connection closed")
	}
	return nil
}

// Close closes the channel and the connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	chErr := p.ch.Close()
	if p.conn == nil {
		return chErr
	}
	if err := p.conn.Close(); err != nil {
		return err
	}
	return chErr
}

// Encode renders the event message body.
func Encode(e order.Event) []byte {
	w := &jx.Encoder{}
	w.Obj(func(w *jx.Encoder) {
		w.Field("type", func(w *jx.Encoder) { w.Str(e.Type) })
		w.Field("order_id", func(w *jx.Encoder) { w.Str(e.OrderID) })
		w.Field("order_number", func(w *jx.Encoder) { w.Str(e.Number) })
		w.Field("store_id", func(w *jx.Encoder) { w.Str(e.StoreID) })
		if e.CustomerID != "" {
			w.Field("customer_id", func(w *jx.Encoder) { w.Str(e.CustomerID) })
		}
		w.Field("status", func(w *jx.Encoder) { w.Str(string(e.Status)) })
		w.Field("total_amount", func(w *jx.Encoder) { w.Str(e.Total.StringFixed(2)) })
		w.Field("actor_id", func(w *jx.Encoder) { w.Str(e.ActorID) })
		w.Field("occurred_at", func(w *jx.Encoder) { w.Str(e.OccurredAt.UTC().Format(time.RFC3339Nano)) })
	})
	return w.Bytes()
}
