package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"tradeup/internal/ports"
)

func (db *DB) Enqueue(ctx context.Context, orderID string) (string, error) {
	var id string
	err := db.Pool.QueryRow(ctx, `INSERT INTO notify_jobs (order_id) VALUES ($1) RETURNING id::text`, orderID).Scan(&id)
	return id, err
}

// DefaultClaimTimeout is how long a running job may go without finishing
// before another worker may claim it again.
const DefaultClaimTimeout = 5 * time.Minute

func (db *DB) claimTimeout() time.Duration {
	if db.ClaimTimeout > 0 {
		return db.ClaimTimeout
	}
	return DefaultClaimTimeout
}

// ClaimNext selects the next queued job using SKIP LOCKED and marks it running.
// Jobs left running past the claim timeout by a dead worker are claimed again.
func (db *DB) ClaimNext(ctx context.Context) (job ports.NotifyJob, found bool, err error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return job, false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `
        SELECT id::text, order_id::text, attempts FROM notify_jobs
        WHERE status = 'queued'
           OR (status = 'running' AND started_at < now() - make_interval(secs => $1))
        ORDER BY queued_at
        FOR UPDATE SKIP LOCKED
        LIMIT 1
    `, db.claimTimeout().Seconds()).Scan(&job.ID, &job.OrderID, &job.Attempts)
	if errors.Is(err, pgx.ErrNoRows) {
		return job, false, nil
	}
	if err != nil {
		return job, false, err
	}

	if _, err = tx.Exec(ctx, `
        UPDATE notify_jobs SET status='running', started_at=now(), attempts=attempts+1 WHERE id=$1
    `, job.ID); err != nil {
		return job, false, err
	}
	job.Attempts++
	return job, true, nil
}

func (db *DB) MarkCompleted(ctx context.Context, jobID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := db.Pool.Exec(ctx, `UPDATE notify_jobs SET status='completed', finished_at=now() WHERE id=$1`, jobID)
	return err
}

func (db *DB) MarkFailed(ctx context.Context, jobID string, reason string, maxAttempts int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := db.Pool.Exec(ctx, `
        UPDATE notify_jobs
        SET status = CASE WHEN attempts < $3 THEN 'queued' ELSE 'failed' END,
            queued_at = CASE WHEN attempts < $3 THEN now() ELSE queued_at END,
            finished_at = CASE WHEN attempts < $3 THEN NULL ELSE now() END,
            last_error = $2
        WHERE id = $1
    `, jobID, reason, maxAttempts)
	return err
}

// Release hands a claimed job back to the queue without spending an attempt.
func (db *DB) Release(ctx context.Context, jobID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := db.Pool.Exec(ctx, `
        UPDATE notify_jobs
        SET status = 'queued', attempts = GREATEST(attempts - 1, 0), started_at = NULL
        WHERE id = $1 AND status = 'running'
    `, jobID)
	return err
}
