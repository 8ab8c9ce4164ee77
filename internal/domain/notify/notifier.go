package notify

import "context"

// Notifier delivers a message to the notification sink.
// Callers in the lifecycle treat delivery as best effort.
type Notifier interface {
	Send(ctx context.Context, message string) error
}
