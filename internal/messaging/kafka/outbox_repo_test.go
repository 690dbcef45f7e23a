package kafka_test

import (
	"context"
	"testing"
	"time"

	"aparthotel/internal/events"
	"aparthotel/internal/messaging/kafka"
	"aparthotel/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
)

func TestNewOutboxEvent(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "req-1")

	event, err := kafka.NewOutboxEvent(ctx, "booking", "b-1", events.BookingCreated, events.BookingLifecycleTopic,
		events.BookingEvent{EventType: events.BookingCreated, BookingID: "b-1"})

	assert.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "req-1", event.RequestID)
	assert.Equal(t, kafka.OutboxStatusPending, event.Status)
	assert.Contains(t, string(event.Payload), `"booking_id":"b-1"`)
	assert.NoError(t, kafka.ValidateOutboxEvent(event))
}

func TestNewOutboxEvent_UnmarshalablePayload(t *testing.T) {
	_, err := kafka.NewOutboxEvent(context.Background(), "booking", "b-1", "x", "topic", make(chan int))
	assert.Error(t, err)
}

func TestValidateOutboxEvent(t *testing.T) {
	valid := kafka.OutboxEvent{ID: "1", Topic: "t", Payload: []byte("{}"), Status: kafka.OutboxStatusPending}
	assert.NoError(t, kafka.ValidateOutboxEvent(valid))

	noTopic := valid
	noTopic.Topic = ""
	assert.Error(t, kafka.ValidateOutboxEvent(noTopic))

	badStatus := valid
	badStatus.Status = "weird"
	assert.Error(t, kafka.ValidateOutboxEvent(badStatus))
}

func TestNextRetryDelay(t *testing.T) {
	assert.Equal(t, 15*time.Second, kafka.NextRetryDelay(0))
	assert.Equal(t, 45*time.Second, kafka.NextRetryDelay(3))
	assert.Equal(t, 150*time.Second, kafka.NextRetryDelay(42))
}
