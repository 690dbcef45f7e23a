package producer_test

import (
	"context"
	"errors"
	"testing"

	"aparthotel/internal/messaging/kafka"
	kafkaMock "aparthotel/internal/messaging/kafka/mock"
	"aparthotel/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	messages []kafkago.Message
	failFor  string
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if string(m.Key) == w.failFor {
			return errors.New("broker unavailable")
		}
		w.messages = append(w.messages, m)
	}
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("sends and marks each event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{failFor: "agg-2"}

		repo.EXPECT().ListPending(ctx, 50).Return([]kafka.OutboxEvent{
			{ID: "e-1", AggregateID: "agg-1", AggregateType: "booking", EventType: "booking.created", Topic: "t", Payload: []byte("{}")},
			{ID: "e-2", AggregateID: "agg-2", AggregateType: "task", EventType: "task.completed", Topic: "t", Payload: []byte("{}")},
		}, nil)
		repo.EXPECT().MarkSent(ctx, "e-1").Return(nil)
		repo.EXPECT().MarkFailed(ctx, "e-2", "broker unavailable").Return(nil)

		sent, err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop())

		assert.NoError(t, err)
		assert.Equal(t, 1, sent)
		if assert.Len(t, writer.messages, 1) {
			msg := writer.messages[0]
			assert.Equal(t, "agg-1", string(msg.Key))
			assert.Equal(t, "event_type", msg.Headers[0].Key)
			assert.Equal(t, "booking.created", string(msg.Headers[0].Value))
		}
	})

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		repo.EXPECT().ListPending(ctx, 50).Return(nil, errors.New("db down"))

		_, err := producer.ProcessPendingEvents(ctx, repo, &fakeWriter{}, zap.NewNop())

		assert.Error(t, err)
	})
}
