package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-faster/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/pos-engine/internal/domain/order"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	sent   []published
	err    error
	closed bool
}

func (c *fakeChannel) PublishWithDeferredConfirmWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) (*amqp.DeferredConfirmation, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.sent = append(c.sent, published{exchange: exchange, key: key, msg: msg})
	return nil, nil
}

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

func TestPublish(t *testing.T) {
	ch := &fakeChannel{}
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	p := &Publisher{ch: ch, exchange: "pos.orders", now: func() time.Time { return now }}

	err := p.Publish(context.Background(), order.Event{
		Type:       order.EventPaid,
		OrderID:    "o1",
		Number:     "TRX-s1-20240501-0001",
		StoreID:    "s1",
		Status:     order.StatusPaid,
		Total:      decimal.RequireFromString("24500"),
		ActorID:    "u1",
		OccurredAt: now,
	})
	require.NoError(t, err)
	require.Len(t, ch.sent, 1)

	got := ch.sent[0]
	assert.Equal(t, "pos.orders", got.exchange)
	assert.Equal(t, "order.paid", got.key)
	assert.Equal(t, "application/json", got.msg.ContentType)
	assert.Equal(t, amqp.Persistent, got.msg.DeliveryMode)
	assert.Equal(t, "o1:order.paid", got.msg.MessageId)

	var body map[string]any
	require.NoError(t, json.Unmarshal(got.msg.Body, &body))
	assert.Equal(t, "24500.00", body["total_amount"])
	assert.Equal(t, "paid", body["status"])
	assert.NotContains(t, body, "customer_id")

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestPublishError(t *testing.T) {
	p := &Publisher{ch: &fakeChannel{err: errors.New("channel closed")}, exchange: "x", now: time.Now}

	err := p.Publish(context.Background(), order.Event{Type: order.EventCreated})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publish order.created")
	assert.Error(t, p.Ping(context.Background()))
}
