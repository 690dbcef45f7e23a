package bootstrap

import (
	"context"
	"time"

	"aparthotel/internal/shared/contextutil"

	"go.uber.org/zap"
)

// AuditLog is one audit entry. Meta carries free-form context.
type AuditLog struct {
	Action  string
	Message string
	ActorID string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}

// ZapAuditLogger writes audit entries through a dedicated zap logger.
type ZapAuditLogger struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewZapAuditLogger(logger ...*zap.Logger) *ZapAuditLogger {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &ZapAuditLogger{logger: l.Named("audit"), now: time.Now}
}

// Log writes entry. The request id and, when entry has none, the actor are
// taken from ctx.
func (l *ZapAuditLogger) Log(ctx context.Context, entry AuditLog) {
	md := contextutil.ExtractMetadata(ctx)
	actorID := entry.ActorID
	if actorID == "" {
		actorID = md.UserID
	}

	l.logger.Info("audit event",
		zap.String("timestamp", l.now().UTC().Format(time.RFC3339)),
		zap.String("request_id", md.RequestID),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.String("actor_id", actorID),
		zap.Any("meta", entry.Meta),
	)
}
