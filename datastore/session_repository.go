package datastore

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/color-picker/api/colors"
	"github.com/color-picker/api/models"
)

var ErrSessionNotFound = errors.New("session not found")
var ErrSessionExpired = errors.New("session expired")

type SessionRepository interface {
	Create(session models.Session, initial models.HSV) (models.Session, error)
	Get(sessionID string) (models.Session, error)
	With(sessionID string, fn func(session *models.Session, model *colors.Model) error) (models.Session, error)
	Delete(sessionID string) error
	DeleteExpired(now time.Time) int
	Count() int
}

type sessionEntry struct {
	session models.Session
	model   *colors.Model
}

// SessionMemory keeps sessions in process memory. One mutex guards every
// entry, so a With closure sees no interleaved writes.
type SessionMemory struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
	now      func() time.Time
}

func NewSessionMemory() (*SessionMemory, error) {
	return &SessionMemory{
		sessions: map[string]*sessionEntry{},
		now:      time.Now,
	}, nil
}

// Create registers session holding a model seeded with initial
func (sm *SessionMemory) Create(session models.Session, initial models.HSV) (models.Session, error) {
	if session.SessionID == "" {
		return models.Session{}, fmt.Errorf("failed to create session: missing id")
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.sessions[session.SessionID]; exists {
		return models.Session{}, fmt.Errorf("failed to create session: %s already exists", session.SessionID)
	}
	sm.sessions[session.SessionID] = &sessionEntry{
		session: session,
		model:   colors.NewModel(initial),
	}
	return session, nil
}

func (sm *SessionMemory) lookup(sessionID string) (*sessionEntry, error) {
	entry, ok := sm.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if entry.session.Expired(sm.now()) {
		delete(sm.sessions, sessionID)
		return nil, ErrSessionExpired
	}
	return entry, nil
}

// Get retrieves a session by id
func (sm *SessionMemory) Get(sessionID string) (models.Session, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	entry, err := sm.lookup(sessionID)
	if err != nil {
		return models.Session{}, err
	}
	return entry.session, nil
}

// With runs fn against the session's color model while holding the store
// lock. The session is returned as fn left it.
func (sm *SessionMemory) With(sessionID string, fn func(session *models.Session, model *colors.Model) error) (models.Session, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	entry, err := sm.lookup(sessionID)
	if err != nil {
		return models.Session{}, err
	}
	if err := fn(&entry.session, entry.model); err != nil {
		return entry.session, err
	}
	return entry.session, nil
}

func (sm *SessionMemory) Delete(sessionID string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, ok := sm.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(sm.sessions, sessionID)
	return nil
}

// DeleteExpired drops every session whose expiry is before now and
// reports how many went.
func (sm *SessionMemory) DeleteExpired(now time.Time) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	removed := 0
	for id, entry := range sm.sessions {
		if entry.session.Expired(now) {
			delete(sm.sessions, id)
			removed++
		}
	}
	return removed
}

func (sm *SessionMemory) Count() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return len(sm.sessions)
}
