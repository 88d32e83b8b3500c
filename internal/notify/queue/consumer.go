package queue

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/nirvixtech/nirvix-tracker/internal/notify/domain"
)

// JobHandler processes one dequeued assignment job.
type JobHandler interface {
	Dispatch(ctx context.Context, job domain.AssignmentJob) []domain.DeliveryResult
}

const (
	popTimeout   = 5 * time.Second
	errorBackoff = time.Second
)

// Consumer drains the assignment queue until its context is cancelled.
type Consumer struct {
	queue   *Queue
	handler JobHandler
	logger  *slog.Logger
}

func NewConsumer(q *Queue, handler JobHandler, logger *slog.Logger) *Consumer {
	return &Consumer{queue: q, handler: handler, logger: logger}
}

// Run blocks, popping and dispatching jobs, until ctx is done. Malformed
// payloads are dropped; transient queue errors back off and retry.
func (c *Consumer) Run(ctx context.Context) {
	c.logger.Info("notification consumer started")
	for {
		job, err := c.queue.Dequeue(ctx, popTimeout)
		if ctx.Err() != nil {
			c.logger.Info("notification consumer stopped")
			return
		}
		if err != nil {
			if errors.Is(err, ErrMalformedJob) {
				c.logger.Error("dropping malformed assignment job", "error", err)
				continue
			}
			c.logger.Error("assignment queue read failed", "error", err)
			select {
			case <-time.After(errorBackoff):
			case <-ctx.Done():
				return
			}
			continue
		}
		if job == nil {
			continue
		}
		c.handler.Dispatch(ctx, *job)
	}
}
