package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nirvixtech/nirvix-tracker/internal/notify/domain"
)

// assignmentsKey is the Redis list holding pending assignment jobs.
// Producers LPUSH, the consumer BRPOPs, so jobs come out in enqueue order.
const assignmentsKey = "notify:assignments"

// ErrMalformedJob marks a dequeued payload that does not decode; the
// consumer logs and drops it rather than blocking the queue.
var ErrMalformedJob = errors.New("malformed assignment job")

// Queue is the Redis-backed hand-off between the write path and the email
// dispatcher. Jobs survive process restarts; delivery is at-least-once.
type Queue struct {
	client *redis.Client
}

func New(client *redis.Client) *Queue {
	return &Queue{client: client}
}

func (q *Queue) Enqueue(ctx context.Context, job domain.AssignmentJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal assignment job: %w", err)
	}
	if err := q.client.LPush(ctx, assignmentsKey, payload).Err(); err != nil {
		return fmt.Errorf("enqueue assignment job: %w", err)
	}
	return nil
}

// Dequeue blocks up to timeout for the next job. A nil job with nil error
// means the timeout elapsed with nothing queued.
func (q *Queue) Dequeue(ctx context.Context, timeout time.Duration) (*domain.AssignmentJob, error) {
	vals, err := q.client.BRPop(ctx, timeout, assignmentsKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("dequeue assignment job: %w", err)
	}
	// BRPop returns [key, value].
	if len(vals) != 2 {
		return nil, ErrMalformedJob
	}

	var job domain.AssignmentJob
	if err := json.Unmarshal([]byte(vals[1]), &job); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJob, err)
	}
	return &job, nil
}

// Len reports the number of pending jobs.
func (q *Queue) Len(ctx context.Context) (int64, error) {
	n, err := q.client.LLen(ctx, assignmentsKey).Result()
	if err != nil {
		return 0, fmt.Errorf("queue length: %w", err)
	}
	return n, nil
}
