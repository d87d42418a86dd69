// Package refresher keeps slow-moving reference data fresh: the catalog feed,
// the exchange rate and expired sessions.
package refresher

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Task is one periodic refresh.
type Task struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Start runs every task once immediately and then on its own interval until
// ctx is cancelled. It blocks until all task loops have exited.
func Start(ctx context.Context, log *logrus.Entry, tasks ...Task) {
	var wg sync.WaitGroup
	for _, t := range tasks {
		if t.Run == nil || t.Interval <= 0 {
			continue
		}
		wg.Add(1)
		go func(t Task) {
			defer wg.Done()
			loop(ctx, log.WithField("task", t.Name), t)
		}(t)
	}
	wg.Wait()
}

func loop(ctx context.Context, log *logrus.Entry, t Task) {
	runOnce(ctx, log, t)
	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runOnce(ctx, log, t)
		}
	}
}

func runOnce(ctx context.Context, log *logrus.Entry, t Task) {
	start := time.Now()
	if err := t.Run(ctx); err != nil {
		if ctx.Err() == nil {
			log.WithError(err).Warn("refresh failed")
		}
		return
	}
	log.WithField("duration_ms", time.Since(start).Milliseconds()).Debug("refreshed")
}
