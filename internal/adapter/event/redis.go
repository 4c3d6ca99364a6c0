package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	domain "creditledger/internal/domain/event"

	"github.com/redis/go-redis/v9"
)

const publishTimeout = 2 * time.Second

var _ domain.Publisher = (*RedisPublisher)(nil)

// RedisPublisher fans lifecycle events out over Redis Pub/Sub as JSON.
type RedisPublisher struct {
	rdb     *redis.Client
	channel string
}

func NewRedisPublisher(rdb *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{rdb: rdb, channel: channel}
}

func (p *RedisPublisher) Publish(ctx context.Context, e domain.Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode %s: %w", e.Type, err)
	}
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	return p.rdb.Publish(ctx, p.channel, payload).Err()
}
