package ports

import "context"

// Notifier surfaces user-facing status messages for workflow
// transitions and validation failures. Each operation reports at most
// once.
type Notifier interface {
	Success(ctx context.Context, message string)
	Failure(ctx context.Context, message string)
}
