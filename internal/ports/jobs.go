package ports

import "context"

type NotifyJob struct {
	ID       string
	OrderID  string
	Attempts int
}

// JobRepository supports claiming and updating order notification jobs.
type JobRepository interface {
	Enqueue(ctx context.Context, orderID string) (jobID string, err error)
	ClaimNext(ctx context.Context) (job NotifyJob, found bool, err error)
	MarkCompleted(ctx context.Context, jobID string) error
	// MarkFailed requeues the job while attempts remain, otherwise parks it.
	MarkFailed(ctx context.Context, jobID string, reason string, maxAttempts int) error
	// Release returns a claimed job to the queue without counting the attempt.
	Release(ctx context.Context, jobID string) error
}
