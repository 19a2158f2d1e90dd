package cache

import (
	"context"
	"sync"
	"time"
)

type window struct {
	count   int64
	resetAt time.Time
}

// InMemoryRateLimitStore implements RateLimitStore with a process-local map.
// Counters are not shared between instances.
type InMemoryRateLimitStore struct {
	mu        sync.Mutex
	windows   map[string]*window
	now       func() time.Time
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemoryRateLimitStore creates the store and starts a cleanup loop
// that drops expired windows every cleanupInterval.
func NewInMemoryRateLimitStore(cleanupInterval time.Duration) *InMemoryRateLimitStore {
	if cleanupInterval <= 0 {
		cleanupInterval = time.Minute
	}
	s := &InMemoryRateLimitStore{
		windows:  make(map[string]*window),
		now:      time.Now,
		stopChan: make(chan struct{}),
	}
	s.wg.Add(1)
	go s.cleanupLoop(cleanupInterval)
	return s
}

// Hit implements RateLimitStore
func (s *InMemoryRateLimitStore) Hit(_ context.Context, key string, d time.Duration) (int64, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	w, ok := s.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &window{resetAt: now.Add(d)}
		s.windows[key] = w
	}
	w.count++
	return w.count, w.resetAt.Sub(now), nil
}

// Len returns the number of tracked keys
func (s *InMemoryRateLimitStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.windows)
}

func (s *InMemoryRateLimitStore) cleanupLoop(interval time.Duration) {
	defer s.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopChan:
			return
		}
	}
}

func (s *InMemoryRateLimitStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, w := range s.windows {
		if !now.Before(w.resetAt) {
			delete(s.windows, key)
		}
	}
}

// Close stops the cleanup loop
func (s *InMemoryRateLimitStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
	})
	return nil
}
