package bootstrap

import (
	"context"
	"testing"
	"time"

	"aparthotel/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	audit := NewZapAuditLogger(zap.New(core))
	audit.now = func() time.Time { return time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC) }

	audit.Log(context.Background(), AuditLog{
		Action:  "BOOKING_CREATED",
		Message: "booking created",
		ActorID: "user-1",
		Meta:    map[string]any{"booking_id": "b-1"},
	})

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "audit", entries[0].LoggerName)
	fields := entries[0].ContextMap()
	assert.Equal(t, "BOOKING_CREATED", fields["action"])
	assert.Equal(t, "2025-06-01T08:00:00Z", fields["timestamp"])
	assert.Equal(t, "user-1", fields["actor_id"])
}

func TestZapAuditLogger_LogUsesContextMetadata(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	audit := NewZapAuditLogger(zap.New(core))

	ctx := contextutil.WithRequestID(context.Background(), "req-1")
	ctx = contextutil.WithUserID(ctx, "user-9")
	audit.Log(ctx, AuditLog{Action: "TASK_COMPLETED"})

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "user-9", fields["actor_id"])
}
