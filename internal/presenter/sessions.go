package presenter

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alnoi/pr-workload-dashboard/internal/metrics"
)

// Sessions keeps one Presenter per browser session, so a rendered table or chart is
// only ever shown to the client that submitted the token.
type Sessions struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	items map[string]*session
}

type session struct {
	p    *Presenter
	seen time.Time
}

// NewSessions creates an empty session store. Sessions idle for longer than ttl are
// dropped; ttl <= 0 keeps them for the life of the process.
func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{
		ttl:   ttl,
		now:   time.Now,
		items: make(map[string]*session),
	}
}

// Get returns the presenter for id, starting a new session under a fresh id when id is
// unknown or expired. The returned id is the one the client must present next time.
func (s *Sessions) Get(id string) (string, *Presenter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.prune(now)

	if sess, ok := s.items[id]; ok && id != "" {
		sess.seen = now
		return id, sess.p
	}

	id = uuid.NewString()
	sess := &session{p: New(), seen: now}
	s.items[id] = sess
	metrics.SessionsActive.Set(float64(len(s.items)))

	return id, sess.p
}

// Lookup returns the presenter for an existing session without creating one.
func (s *Sessions) Lookup(id string) (*Presenter, bool) {
	if id == "" {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.prune(now)

	sess, ok := s.items[id]
	if !ok {
		return nil, false
	}
	sess.seen = now

	return sess.p, true
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.items)
}

// prune drops idle sessions; a session with a cycle in flight is never dropped.
// Callers hold s.mu.
func (s *Sessions) prune(now time.Time) {
	if s.ttl <= 0 {
		return
	}

	for id, sess := range s.items {
		if now.Sub(sess.seen) > s.ttl && !sess.p.Busy() {
			delete(s.items, id)
		}
	}
	metrics.SessionsActive.Set(float64(len(s.items)))
}
