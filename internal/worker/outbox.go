// Package worker runs background jobs next to the HTTP server.
package worker

//go:generate mockgen -source=$GOFILE -destination=../../tests/mock/worker/outbox.go -package=workermock

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"ranch-booking/internal/pkg/clock"
	"ranch-booking/internal/pkg/config"
	"ranch-booking/internal/usecase/shared"
)

const maxRetryDelay = 5 * time.Minute

// Publisher delivers one outbox message. messageID is stable across retries
// so consumers can drop duplicates.
type Publisher interface {
	Publish(ctx context.Context, topic, messageID string, body []byte) error
}

// OutboxRelay drains queued notification jobs to a Publisher.
type OutboxRelay struct {
	uow         shared.UnitOfWork
	publisher   Publisher
	clock       clock.Clock
	interval    time.Duration
	batchSize   int32
	maxAttempts int32

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewOutboxRelay(uow shared.UnitOfWork, publisher Publisher, clk clock.Clock, cfg config.Config) *OutboxRelay {
	r := &OutboxRelay{
		uow:         uow,
		publisher:   publisher,
		clock:       clk,
		interval:    cfg.Outbox.PollInterval,
		batchSize:   cfg.Outbox.BatchSize,
		maxAttempts: cfg.Outbox.MaxAttempts,
	}
	if r.interval <= 0 {
		r.interval = 5 * time.Second
	}
	if r.batchSize <= 0 {
		r.batchSize = 50
	}
	if r.maxAttempts <= 0 {
		r.maxAttempts = 5
	}
	return r
}

// RunOnce claims one batch of due jobs and publishes them. It returns the
// number of jobs handled, whatever their outcome.
func (r *OutboxRelay) RunOnce(ctx context.Context) (int, error) {
	handled := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		handled = 0
		now := r.clock.Now()
		jobs, err := tx.Notifications().ClaimDue(ctx, tx.DB(), now, r.batchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			if err := r.deliver(ctx, tx, job, now); err != nil {
				return err
			}
			handled++
		}
		return nil
	})
	return handled, err
}

func (r *OutboxRelay) deliver(ctx context.Context, tx shared.Tx, job shared.NotificationJob, now time.Time) error {
	pubErr := r.publisher.Publish(ctx, job.Topic, job.ID.String(), job.Payload)
	if pubErr == nil {
		return tx.Notifications().MarkSent(ctx, tx.DB(), job.ID, now)
	}

	attempts := job.Attempts + 1
	if attempts >= int(r.maxAttempts) {
		slog.ErrorContext(ctx, "outbox job failed permanently",
			"job_id", job.ID, "topic", job.Topic, "attempts", attempts, "error", pubErr.Error())
		return tx.Notifications().MarkFailed(ctx, tx.DB(), job.ID, pubErr.Error(), now)
	}

	slog.WarnContext(ctx, "outbox publish failed, will retry",
		"job_id", job.ID, "topic", job.Topic, "attempts", attempts, "error", pubErr.Error())
	return tx.Notifications().MarkRetry(ctx, tx.DB(), job.ID, pubErr.Error(), now.Add(r.retryDelay(attempts)), now)
}

// retryDelay doubles the poll interval per attempt, capped at maxRetryDelay.
func (r *OutboxRelay) retryDelay(attempts int) time.Duration {
	delay := r.interval
	for i := 1; i < attempts && delay < maxRetryDelay; i++ {
		delay *= 2
	}
	return min(delay, maxRetryDelay)
}

// Start launches the polling loop; Stop cancels it and waits for the current
// batch to finish.
func (r *OutboxRelay) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.loop(ctx)
	}()
	slog.Info("outbox relay started", "interval", r.interval.String(), "batch_size", r.batchSize)
}

func (r *OutboxRelay) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
	slog.Info("outbox relay stopped")
}

func (r *OutboxRelay) loop(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// drain backlog without waiting a full interval between batches
			for {
				n, err := r.RunOnce(ctx)
				if err != nil {
					if ctx.Err() == nil {
						slog.Error("outbox batch failed", "error", err.Error())
					}
					break
				}
				if n < int(r.batchSize) {
					break
				}
			}
		}
	}
}
