package services

import (
	"sync"
	"time"

	"campus-faq-bot/models"
)

// SessionStore holds per-session conversation context. Get and Set are
// individually atomic; a handler's read-modify-write across the two calls is
// not, so concurrent turns on the same session resolve last-write-wins,
// which is accepted for this workload.
type SessionStore interface {
	Get(sessionID string) (models.SessionContext, bool)
	Set(sessionID string, ctx models.SessionContext)
	Evict(olderThan time.Duration) int
	Len() int
}

type sessionEntry struct {
	ctx      models.SessionContext
	lastSeen time.Time
}

// MemorySessionStore keeps all sessions in process memory. With no TTL
// configured it grows without bound for the process lifetime; Evict exists
// for the opt-in cleanup ticker.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
	now      func() time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*sessionEntry),
		now:      time.Now,
	}
}

func (s *MemorySessionStore) Get(sessionID string) (models.SessionContext, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.sessions[sessionID]
	if !ok {
		return models.SessionContext{}, false
	}
	return entry.ctx, true
}

func (s *MemorySessionStore) Set(sessionID string, ctx models.SessionContext) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sessionID] = &sessionEntry{ctx: ctx, lastSeen: s.now()}
}

// Evict drops sessions not touched within olderThan and returns how many
// were removed.
func (s *MemorySessionStore) Evict(olderThan time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-olderThan)
	removed := 0
	for id, entry := range s.sessions {
		if entry.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *MemorySessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
