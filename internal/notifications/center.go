// Package notifications owns the user-facing notification log and the
// unread counter, plus the Redis fan-out used to mirror entries to
// external consumers.
package notifications

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"eventwall/internal/models"
	"eventwall/internal/observability"

	"github.com/google/uuid"
)

// Center holds the ordered notification log, newest first. Entries are
// never deleted; MarkAllRead is the only bulk operation.
type Center struct {
	mu      sync.Mutex
	entries []*models.Notification
	unread  int

	notifier *Notifier
	now      func() time.Time
	newID    func() string
	logger   *observability.StoreLogger
}

// NewCenter creates an empty notification center. The notifier may be
// nil; fan-out is then skipped.
func NewCenter(notifier *Notifier) *Center {
	return &Center{
		notifier: notifier,
		now:      time.Now,
		newID:    uuid.NewString,
		logger:   observability.NewStoreLogger("notifications"),
	}
}

// Push prepends a new unread notification to the log and returns a copy.
func (c *Center) Push(ctx context.Context, kind, message string) *models.Notification {
	c.mu.Lock()
	entry := &models.Notification{
		ID:        c.newID(),
		Kind:      kind,
		Message:   message,
		CreatedAt: c.now(),
	}
	c.entries = append([]*models.Notification{entry}, c.entries...)
	c.unread++
	c.mu.Unlock()

	observability.NotificationsPushed.WithLabelValues(kind).Inc()

	if c.notifier != nil {
		payload, _ := json.Marshal(entry)
		if err := c.notifier.PublishWall(ctx, string(payload)); err != nil {
			c.logger.LogWarn("push", err)
		}
	}

	cp := *entry
	return &cp
}

// MarkAllRead marks every entry read and resets the unread counter.
func (c *Center) MarkAllRead() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.entries {
		e.Read = true
	}
	c.unread = 0
}

// Unread returns the current unread count.
func (c *Center) Unread() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unread
}

// Entries returns copies of all notifications, newest first.
func (c *Center) Entries() []*models.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*models.Notification, len(c.entries))
	for i, e := range c.entries {
		cp := *e
		out[i] = &cp
	}
	return out
}
