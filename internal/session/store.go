// Package session holds the authenticated session for the running client and
// makes it available to the transport layer. The store is injected into every
// component that needs tokens, so tests can substitute their own
// implementation and the transport never reaches for global state.
package session

import (
	"sync"

	"github.com/lumapix/lumapix-client/models"
)

//go:generate mockgen -source=store.go -destination=../mock/session_store_mock.go -package=mock

// Store is the single holder of the client's authenticated session.
//
// Login and Logout mark the session boundaries; UpdateTokens replaces the
// token pair mid-session after a refresh. Current reports the session and
// whether one is active. All methods are safe for concurrent use.
type Store interface {
	// Login installs a fresh session after authentication.
	Login(session models.Session)

	// UpdateTokens replaces the token pair of the active session, keeping
	// the rest of the session intact.
	UpdateTokens(session models.Session)

	// Logout discards the session.
	Logout()

	// Current returns the active session. The second return value is false
	// when no session is active.
	Current() (models.Session, bool)
}

// memoryStore keeps the session in process memory only. It is the store of
// choice when the user opted out of session persistence.
type memoryStore struct {
	mu      sync.RWMutex
	session models.Session
	active  bool
}

// NewMemoryStore returns an in-memory [Store]. The session does not survive
// a client restart.
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) Login(session models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = session
	s.active = true
}

func (s *memoryStore) UpdateTokens(session models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return
	}
	s.session = session
}

func (s *memoryStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = models.Session{}
	s.active = false
}

func (s *memoryStore) Current() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session, s.active
}
