package notifications

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// WallChannel is the Redis channel notifications are mirrored to.
const WallChannel = "notifications:wall"

// Notifier publishes notification payloads into a Redis channel so that
// out-of-process consumers (badges, dashboards) can follow the wall.
type Notifier struct {
	rdb *redis.Client
}

// NewNotifier creates a Notifier. A nil client turns publishing into a
// no-op rather than an error.
func NewNotifier(rdb *redis.Client) *Notifier {
	return &Notifier{rdb: rdb}
}

// PublishWall sends a payload to the wall channel.
func (n *Notifier) PublishWall(ctx context.Context, payload string) error {
	if n.rdb == nil {
		return nil
	}
	return n.rdb.Publish(ctx, WallChannel, payload).Err()
}

// Subscribe subscribes to the wall channel and calls onMessage for each
// incoming payload until ctx is cancelled.
func (n *Notifier) Subscribe(ctx context.Context, onMessage func(payload string)) error {
	if n.rdb == nil {
		return nil
	}
	sub := n.rdb.Subscribe(ctx, WallChannel)
	ch := sub.Channel()

	go func() {
		defer func() { _ = sub.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				onMessage(msg.Payload)
			}
		}
	}()

	return nil
}
