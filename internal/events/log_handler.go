package events

import (
	"context"
	"log/slog"

	"github.com/phrazzld/rollcall/internal/platform/logger"
	"github.com/phrazzld/rollcall/internal/redact"
)

// LogHandler writes every event to the log at info level.
type LogHandler struct {
	logger       *slog.Logger
	redactEmails bool
}

// NewLogHandler creates a handler logging through l, or through the logger
// carried by the event's context when one is present. When redactEmails is
// set, email addresses in payloads are masked.
func NewLogHandler(l *slog.Logger, redactEmails bool) *LogHandler {
	if l == nil {
		l = slog.Default()
	}
	return &LogHandler{logger: l.With("component", "audit"), redactEmails: redactEmails}
}

// HandleEvent implements EventHandler.
func (h *LogHandler) HandleEvent(ctx context.Context, event *Event) error {
	payload := string(event.Payload)
	if h.redactEmails {
		payload = redact.String(payload)
	}

	logger.FromContextOrDefault(ctx, h.logger).Info("record changed",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", event.Type),
		slog.String("payload", payload),
		slog.Time("created_at", event.CreatedAt))
	return nil
}
