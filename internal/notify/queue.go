// Package notify keeps the transient messages shown after cart changes.
package notify

import (
	"sync"
	"time"

	"github.com/babitas-kitchen/storefront/internal/models"
)

// DefaultTTL is how long a notification stays visible.
const DefaultTTL = 3 * time.Second

// Queue holds visible notifications. Each notification is removed by
// its own timer once the TTL elapses. Messages are not de-duplicated.
type Queue struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	items  []models.Notification
	timers map[int64]*time.Timer
	lastID int64
	closed bool
}

// NewQueue creates a queue whose notifications expire after ttl.
// A non-positive ttl selects DefaultTTL.
func NewQueue(ttl time.Duration) *Queue {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Queue{
		ttl:    ttl,
		now:    time.Now,
		timers: make(map[int64]*time.Timer),
	}
}

// Show appends a notification and schedules its removal.
// The id is the creation time in milliseconds, bumped when needed so ids
// stay unique within the queue.
func (q *Queue) Show(message string) models.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	created := q.now()
	id := created.UnixMilli()
	if id <= q.lastID {
		id = q.lastID + 1
	}
	q.lastID = id

	n := models.Notification{ID: id, Message: message, CreatedAt: created}
	if q.closed {
		return n
	}

	q.items = append(q.items, n)
	q.timers[id] = time.AfterFunc(q.ttl, func() { q.expire(id) })
	return n
}

// List returns the visible notifications, oldest first.
func (q *Queue) List() []models.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]models.Notification, len(q.items))
	copy(out, q.items)
	return out
}

// Len is the number of visible notifications.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Close stops all pending expiry timers and drops visible notifications.
// Show after Close returns the notification without queuing it.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for id, t := range q.timers {
		t.Stop()
		delete(q.timers, id)
	}
	q.items = nil
	q.closed = true
}

func (q *Queue) expire(id int64) {
	q.mu.Lock()
	defer q.mu.Unlock()

	delete(q.timers, id)
	for i, n := range q.items {
		if n.ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return
		}
	}
}
