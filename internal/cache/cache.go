// Package cache holds a small TTL+LRU cache used for assistant answers that
// are expensive to regenerate, like the legislative-updates digest. Report
// figures are never cached; they are cheap and must always reflect the
// journal.
package cache

import (
	"log/slog"
	"time"
)

// Cache is the read/write surface handed to consumers.
type Cache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, data T)
	Delete(key string)
	Size() int
}

// Cleaner is implemented by caches that can drop expired entries.
type Cleaner interface {
	CleanExpired() int
}

// Manager runs periodic expiry cleanup for registered caches.
type Manager struct {
	caches      []Cleaner
	stopCleanup chan struct{}
	cleanupDone chan struct{}
}

func NewManager() *Manager {
	return &Manager{
		stopCleanup: make(chan struct{}),
		cleanupDone: make(chan struct{}),
	}
}

// Register must happen before StartCleanup.
func (m *Manager) Register(c Cleaner) {
	m.caches = append(m.caches, c)
}

func (m *Manager) StartCleanup(interval time.Duration) {
	go m.cleanup(interval)
}

func (m *Manager) cleanup(interval time.Duration) {
	defer close(m.cleanupDone)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cleaned := 0
			for _, c := range m.caches {
				cleaned += c.CleanExpired()
			}
			if cleaned > 0 {
				slog.Debug("Cache cleanup removed expired entries", "count", cleaned)
			}
		case <-m.stopCleanup:
			return
		}
	}
}

// Stop ends the cleanup loop and waits for it to exit.
func (m *Manager) Stop() {
	close(m.stopCleanup)
	<-m.cleanupDone
}
