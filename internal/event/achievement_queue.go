package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"padhobadho/internal/cache"

	"github.com/redis/go-redis/v9"
)

// AchievementEvent asks the worker to re-evaluate a user's achievements.
type AchievementEvent struct {
	UserID     string    `json:"user_id"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// RedisAchievementQueue is a FIFO of achievement events on a Redis list.
// It implements domain.AchievementNotifier.
type RedisAchievementQueue struct {
	client *redis.Client
	key    string
	now    func() time.Time
}

func NewRedisAchievementQueue(client *redis.Client) *RedisAchievementQueue {
	return &RedisAchievementQueue{
		client: client,
		key:    cache.AchievementQueueKey(),
		now:    time.Now,
	}
}

// Notify enqueues an evaluation for userID.
func (q *RedisAchievementQueue) Notify(ctx context.Context, userID string) error {
	payload, err := json.Marshal(AchievementEvent{UserID: userID, EnqueuedAt: q.now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to marshal achievement event: %w", err)
	}
	if err := q.client.LPush(ctx, q.key, string(payload)).Err(); err != nil {
		return fmt.Errorf("failed to enqueue achievement event for user %s: %w", userID, err)
	}
	return nil
}

// Pop blocks up to timeout for the oldest event. It returns (nil, nil) when the wait times out.
func (q *RedisAchievementQueue) Pop(ctx context.Context, timeout time.Duration) (*AchievementEvent, error) {
	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to pop achievement event: %w", err)
	}
	// BRPOP replies with [key, value].
	if len(res) != 2 {
		return nil, fmt.Errorf("unexpected BRPOP reply length %d", len(res))
	}
	var ev AchievementEvent
	if err := json.Unmarshal([]byte(res[1]), &ev); err != nil {
		return nil, fmt.Errorf("failed to decode achievement event: %w", err)
	}
	return &ev, nil
}
