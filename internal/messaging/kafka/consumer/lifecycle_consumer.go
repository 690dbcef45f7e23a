package consumer

import (
	"context"
	"encoding/json"

	"aparthotel/internal/bootstrap"
	"aparthotel/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeLifecycle turns booking and task lifecycle events into audit entries.
// Undecodable messages are logged and committed so they do not block the partition.
func ConsumeLifecycle(
	ctx context.Context,
	reader MessageReader,
	auditLogger bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.lifecycle")
	log.Info("lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("lifecycle consumer stopped")
				return
			}
			log.Error("fetch lifecycle message failed", zap.Error(err))
			continue
		}

		HandleMessage(ctx, msg, auditLogger, log)

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit lifecycle message failed", zap.Error(err))
		}
	}
}

func HandleMessage(ctx context.Context, msg kafkago.Message, auditLogger bootstrap.AuditLogger, log *zap.Logger) {
	var payload map[string]any
	if err := json.Unmarshal(msg.Value, &payload); err != nil {
		log.Error("decode lifecycle event failed",
			zap.String("topic", msg.Topic),
			zap.Error(err),
		)
		return
	}

	eventType := header(msg, "event_type")
	if eventType == "" {
		eventType, _ = payload["event_type"].(string)
	}
	actorID, _ := payload["actor_id"].(string)

	payload["topic"] = msg.Topic
	payload["aggregate_id"] = string(msg.Key)
	if rid := header(msg, "request_id"); rid != "" {
		payload["request_id"] = rid
		ctx = contextutil.WithRequestID(ctx, rid)
	}

	auditLogger.Log(ctx, bootstrap.AuditLog{
		Action:  eventType,
		Message: "domain event received",
		ActorID: actorID,
		Meta:    payload,
	})
}

func header(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
