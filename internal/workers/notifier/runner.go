// Package notifier drains the notification job queue and announces each
// submitted order to the event bus.
package notifier

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"tradeup/internal/domain"
	"tradeup/internal/ports"
	"tradeup/internal/services/quotes"
	"tradeup/internal/valuation"
)

// Processor performs the work for a job's order id.
type Processor interface {
	Process(ctx context.Context, orderID string) error
}

type OrderGetter interface {
	GetOrder(ctx context.Context, id string) (domain.Order, error)
}

// Submitted is the payload published for every new order.
type Submitted struct {
	Order      domain.Order `json:"order"`
	MailtoLink string       `json:"mailto_link"`
}

// OrderProcessor publishes the stored order together with its mail link.
type OrderProcessor struct {
	Orders     OrderGetter
	Events     ports.EventPublisher
	StoreEmail string
	Faults     valuation.FaultTable
}

func (p OrderProcessor) Process(ctx context.Context, orderID string) error {
	o, err := p.Orders.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}
	faults := p.Faults
	if faults == nil {
		faults = valuation.DefaultFaults
	}
	return p.Events.Publish(ctx, ports.SubjectOrderSubmitted, Submitted{
		Order:      o,
		MailtoLink: quotes.MailtoLink(p.StoreEmail, o, faults),
	})
}

type Options struct {
	Concurrency  int
	PollInterval time.Duration
	MaxAttempts  int
}

func (o Options) withDefaults() Options {
	if o.PollInterval <= 0 {
		o.PollInterval = 500 * time.Millisecond
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = 3
	}
	return o
}

// Run claims jobs and processes them until ctx is cancelled. It returns once
// every worker has exited.
func Run(ctx context.Context, repo ports.JobRepository, processor Processor, opts Options, log *logrus.Entry) {
	if opts.Concurrency < 1 {
		return
	}
	opts = opts.withDefaults()
	jobsCh := make(chan ports.NotifyJob, opts.Concurrency)

	// dispatcher loop
	go func() {
		defer close(jobsCh)
		ticker := time.NewTicker(opts.PollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				for {
					job, found, err := repo.ClaimNext(ctx)
					if err != nil {
						if ctx.Err() == nil {
							log.WithError(err).Warn("job claim error")
						}
						break
					}
					if !found {
						break
					}
					select {
					case jobsCh <- job:
					case <-ctx.Done():
						release(ctx, repo, job, log)
						return
					}
				}
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < opts.Concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			wlog := log.WithField("worker", idx)
			for job := range jobsCh {
				if ctx.Err() != nil {
					release(ctx, repo, job, wlog)
					continue
				}
				handle(ctx, repo, processor, job, opts.MaxAttempts, wlog)
			}
		}(i)
	}
	wg.Wait()
}

func handle(ctx context.Context, repo ports.JobRepository, processor Processor, job ports.NotifyJob, maxAttempts int, log *logrus.Entry) {
	log = log.WithFields(logrus.Fields{"job_id": job.ID, "order_id": job.OrderID, "attempt": job.Attempts})
	if err := processor.Process(ctx, job.OrderID); err != nil {
		if ctx.Err() != nil {
			release(ctx, repo, job, log)
			return
		}
		// The job row outlives a cancelled request context.
		if ferr := repo.MarkFailed(context.WithoutCancel(ctx), job.ID, err.Error(), maxAttempts); ferr != nil {
			log.WithError(ferr).Error("mark failed")
		}
		log.WithError(err).Warn("notification failed")
		return
	}
	if err := repo.MarkCompleted(context.WithoutCancel(ctx), job.ID); err != nil {
		log.WithError(err).Error("mark completed")
		return
	}
	log.Debug("notification sent")
}

// release hands a claimed job back to the queue on shutdown so it does not sit
// in running until the claim timeout.
func release(ctx context.Context, repo ports.JobRepository, job ports.NotifyJob, log *logrus.Entry) {
	if err := repo.Release(context.WithoutCancel(ctx), job.ID); err != nil {
		log.WithError(err).WithField("job_id", job.ID).Error("release job")
	}
}
