// Package session keeps one keypad machine per browser session, keyed by a
// random id carried in a cookie.
package session

import (
	"net/http"
	"sync"
	"time"

	"go-chi-calculator/internal/keypad"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CookieName is the cookie that carries the session id.
const CookieName = "calc_session"

var (
	activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "calculator_sessions_active",
		Help: "Number of keypad sessions currently held in memory.",
	})
	evictedSessions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "calculator_sessions_evicted_total",
		Help: "Keypad sessions dropped from memory, by reason.",
	}, []string{"reason"})
)

type entry struct {
	machine  *keypad.Machine
	lastSeen time.Time
}

// Store holds keypad machines in memory. Idle sessions are dropped lazily
// when the store is next touched; when full, the least recently used
// session is evicted.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	limit    int
	now      func() time.Time
	secure   bool
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithSecureCookie marks the session cookie Secure.
func WithSecureCookie(secure bool) Option {
	return func(s *Store) { s.secure = secure }
}

// NewStore returns an empty store. A non-positive ttl disables expiry and
// a non-positive limit disables the size limit.
func NewStore(ttl time.Duration, limit int, opts ...Option) *Store {
	s := &Store{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		limit:    limit,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the machine for id if it is still live.
func (s *Store) Get(id string) (*keypad.Machine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.expireLocked(now)

	e, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = now
	return e.machine, true
}

// Create starts a new session and returns its id and machine.
func (s *Store) Create() (string, *keypad.Machine) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.expireLocked(now)
	if s.limit > 0 {
		for len(s.sessions) >= s.limit {
			s.evictOldestLocked()
		}
	}

	id := uuid.NewString()
	m := keypad.NewMachine(keypad.Local)
	s.sessions[id] = &entry{machine: m, lastSeen: now}
	activeSessions.Inc()

	return id, m
}

// Delete drops a session.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; ok {
		delete(s.sessions, id)
		activeSessions.Dec()
	}
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expireLocked(s.now())
	return len(s.sessions)
}

// Resolve returns the machine for the request's session cookie, starting a
// new session when there is none or it expired. The cookie is written on
// every call so its lifetime tracks the server-side idle timeout.
func (s *Store) Resolve(w http.ResponseWriter, r *http.Request) (string, *keypad.Machine) {
	id, m := s.lookup(r)
	if m == nil {
		id, m = s.Create()
	}
	http.SetCookie(w, s.cookie(id))
	return id, m
}

func (s *Store) lookup(r *http.Request) (string, *keypad.Machine) {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return "", nil
	}
	m, ok := s.Get(c.Value)
	if !ok {
		return "", nil
	}
	return c.Value, m
}

func (s *Store) cookie(id string) *http.Cookie {
	c := &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
	if s.ttl > 0 {
		c.MaxAge = int(s.ttl / time.Second)
	}
	return c
}

func (s *Store) expireLocked(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for id, e := range s.sessions {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.sessions, id)
			activeSessions.Dec()
			evictedSessions.WithLabelValues("expired").Inc()
		}
	}
}

func (s *Store) evictOldestLocked() {
	var (
		oldestID string
		oldest   time.Time
	)
	for id, e := range s.sessions {
		if oldestID == "" || e.lastSeen.Before(oldest) {
			oldestID, oldest = id, e.lastSeen
		}
	}
	if oldestID == "" {
		return
	}
	delete(s.sessions, oldestID)
	activeSessions.Dec()
	evictedSessions.WithLabelValues("capacity").Inc()
}
