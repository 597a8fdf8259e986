package port

import "context"

// TaskDispatcher enqueues asynchronous maintenance tasks.
type TaskDispatcher interface {
	// EnqueueSweepStaging schedules a best-effort sweep of stale staged files.
	EnqueueSweepStaging(ctx context.Context) error
}
