// Package notify renders board notification events. The reference
// implementation writes structured log lines; a deployment with a real
// front channel (websocket push, chime hardware) swaps this adapter out
// behind the Notifier port.
package notify

import (
	"context"
	"log/slog"

	"orderboard/internal/core/ports"
)

// SlogNotifier logs every notification event with its kind and order id.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notifier writing to the given logger.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{logger: logger.With("component", "notifier")}
}

// Notify renders one event.
func (n *SlogNotifier) Notify(ctx context.Context, event ports.Event) {
	n.logger.InfoContext(ctx, "Board notification",
		"event", string(event.Kind),
		"orderID", event.OrderID.String())
}
