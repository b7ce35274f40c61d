package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process memory. Entries past their expiry
// are dropped by a background sweeper, so a dead session never lingers
// longer than one sweep interval.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session

	done chan struct{}
	once sync.Once
}

// NewMemoryStore builds a store and starts its sweeper.
func NewMemoryStore(sweepInterval time.Duration) *MemoryStore {
	if sweepInterval <= 0 {
		sweepInterval = 24 * time.Hour
	}
	s := &MemoryStore{
		sessions: make(map[string]Session),
		done:     make(chan struct{}),
	}
	go s.sweep(sweepInterval)
	return s
}

// Get returns the session for id, nil when absent or already expired.
func (s *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if sess.Expired(time.Now().UTC()) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, nil
	}
	copied := sess
	return &copied, nil
}

// Save stores or replaces the session.
func (s *MemoryStore) Save(_ context.Context, sess *Session) error {
	s.mu.Lock()
	s.sessions[sess.ID] = *sess
	s.mu.Unlock()
	return nil
}

// Delete removes the session if present.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

// Close stops the sweeper.
func (s *MemoryStore) Close() {
	s.once.Do(func() { close(s.done) })
}

func (s *MemoryStore) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, sess := range s.sessions {
				if sess.Expired(now.UTC()) {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
