// Package queue implements a durable at-least-once job queue on Redis
// lists. Producers LPUSH onto the pending list; consumers move jobs to a
// per-queue active list (BRPOPLPUSH) so a crashed worker never loses a
// job, and acknowledge by removing the active entry. Failed jobs are
// redelivered with backoff through a delayed sorted set and dead-lettered
// once their attempts are exhausted.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rohitchirag97/HazriPro-Server/domain"
)

const popTimeout = 2 * time.Second

// Handler processes a single dequeued job. A non-nil error requests
// redelivery; after max attempts the job is dead-lettered instead.
type Handler func(ctx context.Context, job *domain.OTPJob) error

// RedisQueue implements domain.OTPQueue and the consumer side used by the
// worker process.
type RedisQueue struct {
	client      *redis.Client
	name        string
	maxAttempts int
	backoff     time.Duration
	logger      *zap.Logger
}

// NewRedisQueue creates a new Redis-backed OTP queue
func NewRedisQueue(client *redis.Client, name string, maxAttempts int, backoff time.Duration, logger *zap.Logger) *RedisQueue {
	if name == "" {
		name = "otp-queue"
	}
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	return &RedisQueue{
		client:      client,
		name:        name,
		maxAttempts: maxAttempts,
		backoff:     backoff,
		logger:      logger,
	}
}

func (q *RedisQueue) pendingKey() string { return q.name + ":pending" }
func (q *RedisQueue) activeKey() string  { return q.name + ":active" }
func (q *RedisQueue) delayedKey() string { return q.name + ":delayed" }
func (q *RedisQueue) deadKey() string    { return q.name + ":dead" }

// Enqueue implements domain.OTPQueue. The caller's request must fail when
// this returns an error; there is no silent acceptance.
func (q *RedisQueue) Enqueue(ctx context.Context, job *domain.OTPJob) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}
	if err := q.client.LPush(ctx, q.pendingKey(), payload).Err(); err != nil {
		return fmt.Errorf("failed to enqueue job: %w", err)
	}
	q.logger.Info("otp job enqueued",
		zap.String("event", string(domain.OTPJobEnqueuedEvent)),
		zap.String("job_id", job.ID),
		zap.String("kind", job.Kind),
	)
	return nil
}

// Consume runs `concurrency` consumer loops against the queue and blocks
// until ctx is cancelled and in-flight jobs have finished. Jobs are
// distributed across loops, not broadcast.
func (q *RedisQueue) Consume(ctx context.Context, concurrency int, h Handler) {
	if concurrency <= 0 {
		concurrency = 1
	}
	if err := q.Reclaim(ctx); err != nil && !errors.Is(err, context.Canceled) {
		q.logger.Warn("failed to reclaim stale jobs", zap.Error(err))
	}

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.consumeLoop(ctx, h)
		}()
	}
	wg.Wait()
}

func (q *RedisQueue) consumeLoop(ctx context.Context, h Handler) {
	for {
		if ctx.Err() != nil {
			return
		}
		if err := q.promoteDelayed(ctx); err != nil && !errors.Is(err, context.Canceled) {
			q.logger.Warn("failed to promote delayed jobs", zap.Error(err))
		}

		payload, err := q.client.BRPopLPush(ctx, q.pendingKey(), q.activeKey(), popTimeout).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			if ctx.Err() != nil {
				return
			}
			q.logger.Warn("failed to dequeue job", zap.Error(err))
			time.Sleep(popTimeout)
			continue
		}

		var job domain.OTPJob
		if err := json.Unmarshal([]byte(payload), &job); err != nil {
			// Unparseable payloads can never succeed; dead-letter immediately.
			q.logger.Error("dropping malformed job payload", zap.Error(err))
			if err := q.client.LPush(ctx, q.deadKey(), payload).Err(); err != nil {
				q.logger.Error("failed to dead-letter malformed payload", zap.Error(err))
			}
			if err := q.client.LRem(ctx, q.activeKey(), 1, payload).Err(); err != nil {
				q.logger.Error("failed to remove malformed payload from active list", zap.Error(err))
			}
			continue
		}

		if err := h(ctx, &job); err != nil {
			q.requeue(ctx, payload, &job, err)
			continue
		}

		q.client.LRem(ctx, q.activeKey(), 1, payload)
		q.logger.Info("otp job processed",
			zap.String("event", string(domain.OTPJobProcessedEvent)),
			zap.String("job_id", job.ID),
			zap.String("kind", job.Kind),
		)
	}
}

// requeue schedules a failed job for redelivery with linear backoff, or
// dead-letters it once attempts are exhausted.
func (q *RedisQueue) requeue(ctx context.Context, payload string, job *domain.OTPJob, cause error) {
	q.client.LRem(ctx, q.activeKey(), 1, payload)

	job.Attempts++
	updated, err := json.Marshal(job)
	if err != nil {
		q.logger.Error("failed to marshal retried job", zap.Error(err))
		return
	}

	if job.Attempts >= q.maxAttempts {
		q.client.LPush(ctx, q.deadKey(), updated)
		q.logger.Error("otp job dead-lettered",
			zap.String("event", string(domain.OTPJobDeadLetterEvent)),
			zap.String("job_id", job.ID),
			zap.String("kind", job.Kind),
			zap.Int("attempts", job.Attempts),
			zap.Error(cause),
		)
		return
	}

	due := time.Now().Add(q.backoff * time.Duration(job.Attempts))
	q.client.ZAdd(ctx, q.delayedKey(), redis.Z{
		Score:  float64(due.UnixMilli()),
		Member: string(updated),
	})
	q.logger.Warn("otp job scheduled for retry",
		zap.String("event", string(domain.OTPJobRetriedEvent)),
		zap.String("job_id", job.ID),
		zap.Int("attempts", job.Attempts),
		zap.Time("due", due),
		zap.Error(cause),
	)
}

// promoteDelayed moves due retries back onto the pending list
func (q *RedisQueue) promoteDelayed(ctx context.Context) error {
	now := strconv.FormatInt(time.Now().UnixMilli(), 10)
	due, err := q.client.ZRangeByScore(ctx, q.delayedKey(), &redis.ZRangeBy{
		Min: "-inf",
		Max: now,
	}).Result()
	if err != nil {
		return err
	}
	for _, payload := range due {
		removed, err := q.client.ZRem(ctx, q.delayedKey(), payload).Result()
		if err != nil {
			return err
		}
		// Another consumer may have promoted it first.
		if removed == 0 {
			continue
		}
		if err := q.client.LPush(ctx, q.pendingKey(), payload).Err(); err != nil {
			return err
		}
	}
	return nil
}

// Reclaim moves entries stranded on the active list by a crashed consumer
// back to pending. Called once at consumer startup.
func (q *RedisQueue) Reclaim(ctx context.Context) error {
	for {
		payload, err := q.client.RPopLPush(ctx, q.activeKey(), q.pendingKey()).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return nil
			}
			return err
		}
		q.logger.Info("reclaimed stale job", zap.String("payload_bytes", strconv.Itoa(len(payload))))
	}
}

// DeadLetters returns the jobs that exhausted their retries, newest first
func (q *RedisQueue) DeadLetters(ctx context.Context) ([]*domain.OTPJob, error) {
	payloads, err := q.client.LRange(ctx, q.deadKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	jobs := make([]*domain.OTPJob, 0, len(payloads))
	for _, payload := range payloads {
		var job domain.OTPJob
		if err := json.Unmarshal([]byte(payload), &job); err != nil {
			continue
		}
		jobs = append(jobs, &job)
	}
	return jobs, nil
}
