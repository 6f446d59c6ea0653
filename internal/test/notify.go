package test

import (
	"context"
	"sync"

	"github.com/anandpatel/cafewala/internal/adapter/notify"
)

// PublisherStub records published notifications for assertions.
type PublisherStub struct {
	PublishFn func(context.Context, string, any) error

	mu        sync.Mutex
	published []PublishedMessage
}

// PublishedMessage is one recorded publish call.
type PublishedMessage struct {
	RoutingKey string
	Payload    any
}

// Publish records the call or delegates to override.
func (s *PublisherStub) Publish(ctx context.Context, routingKey string, payload any) error {
	if s.PublishFn != nil {
		return s.PublishFn(ctx, routingKey, payload)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.published = append(s.published, PublishedMessage{RoutingKey: routingKey, Payload: payload})
	return nil
}

// Close satisfies the publisher contract.
func (s *PublisherStub) Close() error { return nil }

// Published returns a snapshot of recorded messages.
func (s *PublisherStub) Published() []PublishedMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]PublishedMessage, len(s.published))
	copy(out, s.published)
	return out
}

var _ notify.Publisher = (*PublisherStub)(nil)
