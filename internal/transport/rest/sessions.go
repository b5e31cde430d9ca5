package rest

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordkeep/internal/service/review"
)

// sessionTTL bounds how long an abandoned session is kept in memory.
const sessionTTL = 24 * time.Hour

// sessionStore keeps running review sessions by id.
type sessionStore struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*review.Session
	now  func() time.Time
}

func newSessionStore() *sessionStore {
	return &sessionStore{byID: make(map[uuid.UUID]*review.Session), now: time.Now}
}

func (s *sessionStore) put(sess *review.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-sessionTTL)
	for id, old := range s.byID {
		if old.StartedAt.Before(cutoff) {
			delete(s.byID, id)
		}
	}
	s.byID[sess.ID] = sess
}

func (s *sessionStore) get(id uuid.UUID) (*review.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.byID[id]
	return sess, ok
}

func (s *sessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}
