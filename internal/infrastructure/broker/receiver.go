package broker

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"photoshare/internal/domain/repository/broker"
	"photoshare/pkg/logger"
)

const (
	pendingStart = "0"
	newEntries   = ">"
)

type Receiver struct {
	redis           *redis.Client
	stream          string
	group           string
	blockTime       time.Duration
	retryDelay      time.Duration
	pendingInterval time.Duration
}

func NewReceiver(client *Client) *Receiver {
	return &Receiver{
		redis:           client.redis,
		stream:          client.stream,
		group:           client.group,
		blockTime:       5 * time.Second,
		retryDelay:      time.Second,
		pendingInterval: time.Minute,
	}
}

// Messages first replays entries this consumer read but never acked, then
// switches to new entries. Every pendingInterval the pending list is read
// again, so nacked entries are retried without a restart. The channel is
// closed when ctx is done.
func (r *Receiver) Messages(ctx context.Context, consumerName string) (<-chan broker.Message, error) {
	if r.redis == nil {
		logger.Error("redis client is nil in receiver")

		return nil, errors.New("redis not initialized")
	}

	out := make(chan broker.Message)
	go r.consumeLoop(ctx, out, consumerName)

	return out, nil
}

func (r *Receiver) consumeLoop(ctx context.Context, out chan broker.Message, consumerName string) {
	defer close(out)

	cursor := pendingStart
	lastPendingScan := time.Now()
	for {
		select {
		case <-ctx.Done():
			logger.Debug("message receiving context cancelled", "consumer", consumerName)

			return
		default:
			if cursor == newEntries && r.pendingInterval > 0 && time.Since(lastPendingScan) >= r.pendingInterval {
				cursor = pendingStart
				lastPendingScan = time.Now()
			}

			next, ok := r.readAndEmit(ctx, out, consumerName, cursor)
			if !ok {
				return
			}
			cursor = next
		}
	}
}

func (r *Receiver) readAndEmit(ctx context.Context, out chan broker.Message, consumerName, cursor string) (string, bool) {
	block := r.blockTime
	if cursor != newEntries {
		// the pending list is read without blocking.
		block = -1
	}

	entries, err := r.redis.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    r.group,
		Consumer: consumerName,
		Streams:  []string{r.stream, cursor},
		Count:    1,
		Block:    block,
	}).Result()
	if err != nil {
		if ctx.Err() != nil {
			return cursor, false
		}
		if errors.Is(err, redis.Nil) {
			return cursor, true
		}

		logger.Error("failed to read from redis stream group", "stream", r.stream, "err", err)

		return cursor, r.wait(ctx, r.retryDelay)
	}

	emitted := 0
	for _, stream := range entries {
		for _, msg := range stream.Messages {
			emitted++
			if cursor != newEntries {
				cursor = msg.ID
			}

			body, ok := msg.Values["body"].(string)
			if !ok {
				logger.Error("invalid body type in redis message", "id", msg.ID)
				_ = r.redis.XAck(ctx, r.stream, r.group, msg.ID).Err()

				continue
			}

			select {
			case out <- &RedisMessage{
				stream:      r.stream,
				group:       r.group,
				id:          msg.ID,
				body:        body,
				redisClient: r.redis,
			}:
			case <-ctx.Done():
				return cursor, false
			}
		}
	}

	if cursor != newEntries && emitted == 0 {
		cursor = newEntries
	}

	return cursor, true
}

// wait pauses for d and reports false when ctx ends first.
func (r *Receiver) wait(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
