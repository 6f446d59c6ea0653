package notify

import (
	"context"
	"testing"
)

func TestNoopPublisher(t *testing.T) {
	var publisher NoopPublisher

	if err := publisher.Publish(context.Background(), RouteOrderConfirmed, map[string]string{"orderNumber": "CAFE-20260831-0001"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := publisher.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewAMQPPublisherRejectsBadURL(t *testing.T) {
	if _, err := NewAMQPPublisher("amqp://nosuchhost.invalid:5672/", nil); err == nil {
		t.Fatal("expected connection error")
	}
}

func TestRoutingKeys(t *testing.T) {
	if RouteOrderConfirmed != "order.confirmed" {
		t.Fatalf("unexpected routing key %q", RouteOrderConfirmed)
	}
	if RouteReservationConfirmed != "reservation.confirmed" {
		t.Fatalf("unexpected routing key %q", RouteReservationConfirmed)
	}
}
