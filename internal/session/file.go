package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/lumapix/lumapix-client/internal/logger"
	"github.com/lumapix/lumapix-client/models"
)

// fileStore is a [Store] that additionally persists the session to an
// encrypted file, letting a relaunched client restore its session without
// asking the user to sign in again.
//
// The file holds the session JSON sealed with AES-256-GCM under a key derived
// from the configured secret (see keyring.go). Persistence is best-effort:
// a failed write keeps the in-memory session valid and is logged, never
// surfaced to the caller.
type fileStore struct {
	mu      sync.RWMutex
	session models.Session
	active  bool

	path   string
	secret string
	log    *logger.Logger
}

// NewFileStore returns a file-backed [Store] persisting to path under secret.
// An existing session file is decrypted and restored; a missing file starts
// the store empty. A file that cannot be decrypted (wrong secret, corruption)
// is discarded with a warning rather than blocking startup.
func NewFileStore(path, secret string, log *logger.Logger) (Store, error) {
	if path == "" {
		return nil, fmt.Errorf("session file path is empty")
	}

	s := &fileStore{
		path:   path,
		secret: secret,
		log:    log,
	}

	if err := s.restore(); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("stored session unusable, starting signed out")
	}

	return s, nil
}

func (s *fileStore) Login(session models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = session
	s.active = true
	s.persist()
}

func (s *fileStore) UpdateTokens(session models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return
	}
	s.session = session
	s.persist()
}

func (s *fileStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = models.Session{}
	s.active = false

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		s.log.Warn().Err(err).Str("path", s.path).Msg("error removing session file")
	}
}

func (s *fileStore) Current() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session, s.active
}

// restore loads and decrypts the session file into the store. A missing file
// is not an error.
func (s *fileStore) restore() error {
	blob, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read session file: %w", err)
	}

	plaintext, err := open(s.secret, blob)
	if err != nil {
		return err
	}

	var session models.Session
	if err := json.Unmarshal(plaintext, &session); err != nil {
		return fmt.Errorf("unmarshal session: %w", err)
	}

	s.session = session
	s.active = session.AccessToken != ""
	return nil
}

// persist seals the current session and writes it to disk. Callers must hold
// the write lock.
func (s *fileStore) persist() {
	plaintext, err := json.Marshal(s.session)
	if err != nil {
		s.log.Warn().Err(err).Msg("error marshalling session")
		return
	}

	blob, err := seal(s.secret, plaintext)
	if err != nil {
		s.log.Warn().Err(err).Msg("error sealing session")
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("error creating session dir")
		return
	}
	if err := os.WriteFile(s.path, blob, 0o600); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("error writing session file")
	}
}
