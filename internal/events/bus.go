// Package events is the in-process domain event bus.
//
// Subscriptions are scoped: each one ends when its unsubscribe func is called or
// when the context passed to Subscribe is cancelled, whichever happens first.
// Delivery is synchronous and in publish order.
package events

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Topics published by the API.
const (
	TopicContactCreated  = "contact.created"
	TopicContactUpdated  = "contact.updated"
	TopicCampaignCreated = "campaign.created"

	// TopicAll receives every event.
	TopicAll = "*"
)

// Event is a domain event.
type Event struct {
	ID         string      `json:"id"`
	Topic      string      `json:"topic"`
	OrgID      string      `json:"org_id"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

// NewEvent stamps a new event.
func NewEvent(topic, orgID string, payload interface{}) Event {
	return Event{
		ID:         uuid.NewString(),
		Topic:      topic,
		OrgID:      orgID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

// Handler handles one event. Errors are logged by the bus and never reach the publisher.
type Handler func(ctx context.Context, event Event) error

// Publisher is what services depend on.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

type subscription struct {
	id      uint64
	topic   string
	handler Handler
}

// Bus fans events out to subscribers.
type Bus struct {
	mu     sync.RWMutex
	subs   []subscription
	nextID uint64
	logger *zap.Logger
}

// NewBus creates an empty bus.
func NewBus(logger *zap.Logger) *Bus {
	return &Bus{logger: logger}
}

// Subscribe registers handler for topic until ctx is cancelled or the returned
// func is called. The returned func is safe to call more than once.
func (b *Bus) Subscribe(ctx context.Context, topic string, handler Handler) func() {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, topic: topic, handler: handler})
	b.mu.Unlock()

	var once sync.Once
	remove := func() {
		once.Do(func() { b.remove(id) })
	}
	stop := context.AfterFunc(ctx, remove)

	return func() {
		stop()
		remove()
	}
}

func (b *Bus) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers event to every matching subscriber before returning.
func (b *Bus) Publish(ctx context.Context, event Event) {
	b.mu.RLock()
	targets := make([]subscription, 0, len(b.subs))
	for _, s := range b.subs {
		if s.topic == event.Topic || s.topic == TopicAll {
			targets = append(targets, s)
		}
	}
	b.mu.RUnlock()

	for _, s := range targets {
		b.deliver(ctx, s, event)
	}
}

func (b *Bus) deliver(ctx context.Context, s subscription, event Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Event handler panicked",
				zap.String("topic", event.Topic),
				zap.String("event_id", event.ID),
				zap.Any("panic", r),
			)
		}
	}()

	if err := s.handler(ctx, event); err != nil {
		b.logger.Warn("Event handler failed",
			zap.String("topic", event.Topic),
			zap.String("event_id", event.ID),
			zap.Error(err),
		)
	}
}

// Subscribers returns the number of live subscriptions.
func (b *Bus) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
