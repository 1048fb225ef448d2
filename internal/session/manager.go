package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager keeps sessions in memory, mapping opaque tokens to user ids. The
// application is single-process, so nothing is persisted; a restart logs
// everyone out. Handlers run concurrently, hence the lock.
type Manager struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]entry
	now      func() time.Time
}

type entry struct {
	userID  string
	expires time.Time
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		ttl:      ttl,
		sessions: make(map[string]entry),
		now:      time.Now,
	}
}

// Create opens a session for the user and returns its token.
func (m *Manager) Create(userID string) string {
	token := uuid.New().String()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[token] = entry{userID: userID, expires: m.now().Add(m.ttl)}
	return token
}

// UserID resolves a token to the user it belongs to. Expired sessions are
// dropped on access.
func (m *Manager) UserID(token string) (string, bool) {
	if token == "" {
		return "", false
	}

	m.mu.RLock()
	e, ok := m.sessions[token]
	m.mu.RUnlock()
	if !ok {
		return "", false
	}

	if m.now().After(e.expires) {
		m.mu.Lock()
		delete(m.sessions, token)
		m.mu.Unlock()
		return "", false
	}
	return e.userID, true
}

// Validate reports whether the token belongs to a live session.
func (m *Manager) Validate(token string) bool {
	_, ok := m.UserID(token)
	return ok
}

// Invalidate ends the session for the given token.
func (m *Manager) Invalidate(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}
