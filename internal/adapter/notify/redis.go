package notify

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"loan-request-service/pkg/id"
)

// StreamNotifier appends each message to a Redis stream consumed by the delivery workers.
type StreamNotifier struct {
	rdb    redis.Cmdable
	stream string
	maxLen int64
}

func NewStreamNotifier(rdb redis.Cmdable, stream string, maxLen int64) *StreamNotifier {
	return &StreamNotifier{rdb: rdb, stream: stream, maxLen: maxLen}
}

func (n *StreamNotifier) Send(ctx context.Context, message string) error {
	args := &redis.XAddArgs{
		Stream: n.stream,
		Values: map[string]any{
			"event_id":   id.NewID32(),
			"body":       message,
			"created_at": time.Now().UTC().Format(time.RFC3339Nano),
		},
	}
	if n.maxLen > 0 {
		args.MaxLen = n.maxLen
		args.Approx = true
	}
	return n.rdb.XAdd(ctx, args).Err()
}
