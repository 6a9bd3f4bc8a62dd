package notify

import (
	"sync"

	"github.com/google/uuid"

	"github.com/gearhub/gearhub/internal/dependencies/clock"
	"github.com/gearhub/gearhub/internal/model"
)

// Center is the in-memory notification feed. Notifications are transient:
// they live for the lifetime of the process and are never persisted, so a
// restart starts with an empty feed.
//
// The newest notification is always first.
type Center struct {
	clock clock.Clock

	mu            sync.RWMutex
	notifications []*model.Notification
}

// NewCenter creates a new notification Center
func NewCenter(clk clock.Clock) *Center {
	return &Center{
		clock:         clk,
		notifications: []*model.Notification{},
	}
}

// Publish prepends a new unread notification to the feed
func (c *Center) Publish(title, message string, severity model.Severity) {
	n := &model.Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		Severity:  severity,
		Timestamp: c.clock.Now(),
		Read:      false,
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifications = append([]*model.Notification{n}, c.notifications...)
}

// List returns the feed newest-first. The returned notifications are copies;
// mutating them does not affect the feed.
func (c *Center) List() []*model.Notification {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*model.Notification, len(c.notifications))
	for i, n := range c.notifications {
		cp := *n
		out[i] = &cp
	}
	return out
}

// Unread returns the number of unread notifications
func (c *Center) Unread() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	count := 0
	for _, n := range c.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkRead marks a single notification as read. Unknown IDs are ignored.
func (c *Center) MarkRead(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, n := range c.notifications {
		if n.ID == id {
			n.Read = true
			return
		}
	}
}

// MarkAllRead marks every notification in the feed as read
func (c *Center) MarkAllRead() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, n := range c.notifications {
		n.Read = true
	}
}

// Clear empties the feed
func (c *Center) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifications = []*model.Notification{}
}
