package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/nirvixtech/nirvix-tracker/internal/notify/dispatcher"
	"github.com/nirvixtech/nirvix-tracker/internal/notify/domain"
	"github.com/nirvixtech/nirvix-tracker/internal/notify/queue"
)

// Two ways to hand an assignment job from the write path to the dispatcher.
// Both guarantee the HTTP response never waits on the mail relay.

// QueueNotifier pushes jobs to Redis for the queue consumer (in-process or
// the standalone notifier binary) to pick up.
type QueueNotifier struct {
	queue *queue.Queue
}

func NewQueueNotifier(q *queue.Queue) *QueueNotifier {
	return &QueueNotifier{queue: q}
}

func (n *QueueNotifier) NotifyAssignment(ctx context.Context, job domain.AssignmentJob) error {
	return n.queue.Enqueue(ctx, job)
}

const inlineDispatchTimeout = 2 * time.Minute

// InlineNotifier dispatches on a detached goroutine when no Redis queue is
// configured. Jobs do not survive a process crash; deployments that need
// durability configure REDIS_ADDR instead.
type InlineNotifier struct {
	dispatcher *dispatcher.Dispatcher
	logger     *slog.Logger
}

func NewInlineNotifier(d *dispatcher.Dispatcher, logger *slog.Logger) *InlineNotifier {
	return &InlineNotifier{dispatcher: d, logger: logger}
}

func (n *InlineNotifier) NotifyAssignment(ctx context.Context, job domain.AssignmentJob) error {
	go func() {
		dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), inlineDispatchTimeout)
		defer cancel()
		n.dispatcher.Dispatch(dctx, job)
	}()
	return nil
}
