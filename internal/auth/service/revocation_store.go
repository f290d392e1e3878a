package service

import (
	"log/slog"
	"sync"
	"time"
)

// revocationWarnThreshold is the entry count past which Add logs a warning.
const revocationWarnThreshold = 10000

// memoryRevocationStore is an in-process RevocationStore. Restarting the
// service clears it, which invalidates the revocation state no sooner than
// the tokens themselves would expire. Entries are never evicted; unbounded
// growth is a known limitation pending an external TTL store, so past the
// threshold Add only warns. The stored expiry is what such a store would
// use as the TTL.
type memoryRevocationStore struct {
	mu      sync.RWMutex
	entries map[string]time.Time
	logger  *slog.Logger
}

// NewMemoryRevocationStore creates an in-memory RevocationStore.
func NewMemoryRevocationStore(logger *slog.Logger) RevocationStore {
	return &memoryRevocationStore{
		entries: make(map[string]time.Time),
		logger:  logger,
	}
}

func (s *memoryRevocationStore) Add(jti string, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[jti] = expiresAt

	if len(s.entries) > revocationWarnThreshold {
		s.logger.Warn("revocation store is unusually large, consider an external TTL store",
			"entries", len(s.entries),
			"threshold", revocationWarnThreshold,
		)
	}
}

func (s *memoryRevocationStore) Contains(jti string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[jti]
	return ok
}

func (s *memoryRevocationStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
