package notify

import (
	"context"
	"log/slog"

	"github.com/sneakpeak/storefront/internal/domains/checkout/ports"
)

var _ ports.Notifier = (*SlogNotifier)(nil)

// SlogNotifier surfaces checkout status messages through structured
// logging. A UI layer would swap in a toast or snackbar presenter.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier builds a notifier over the given logger, falling back
// to the default logger when nil.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogNotifier{logger: logger}
}

func (n *SlogNotifier) Success(ctx context.Context, message string) {
	n.logger.LogAttrs(ctx, slog.LevelInfo, "checkout notification",
		slog.String("outcome", "success"),
		slog.String("message", message),
	)
}

func (n *SlogNotifier) Failure(ctx context.Context, message string) {
	n.logger.LogAttrs(ctx, slog.LevelWarn, "checkout notification",
		slog.String("outcome", "failure"),
		slog.String("message", message),
	)
}
