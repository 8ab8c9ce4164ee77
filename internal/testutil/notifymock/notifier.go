package notifymock

import (
	"context"
	"sync"

	"loan-request-service/internal/domain/notify"
)

var _ notify.Notifier = (*Notifier)(nil)

// Notifier records every message. Err, when set, is returned from Send after recording.
type Notifier struct {
	Err error

	mu       sync.Mutex
	messages []string
}

func (n *Notifier) Send(_ context.Context, message string) error {
	n.mu.Lock()
	n.messages = append(n.messages, message)
	n.mu.Unlock()
	return n.Err
}

func (n *Notifier) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}
