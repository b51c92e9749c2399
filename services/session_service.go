package services

import (
	"TandoorMate/models"
	"sync"

	"github.com/google/uuid"
)

// SessionService owns the conversation-id to session mapping. The dialog
// engine never touches this map; it only ever receives the one session the
// caller looked up, so two conversations can never share state. The mutex
// guards the map itself; a single conversation is one request/one reply at
// a time.
type SessionService struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

var (
	sessionService     *SessionService
	sessionServiceOnce sync.Once
)

// NewSessionService returns the process-wide session store.
func NewSessionService() *SessionService {
	sessionServiceOnce.Do(func() {
		sessionService = &SessionService{
			sessions: make(map[string]*models.Session),
		}
	})
	return sessionService
}

// Create opens a new conversation and returns its id.
func (s *SessionService) Create() string {
	conversationID := uuid.NewString()

	s.mu.Lock()
	s.sessions[conversationID] = models.NewSession()
	s.mu.Unlock()

	return conversationID
}

// Get returns the session for the conversation id when it exists.
func (s *SessionService) Get(conversationID string) (*models.Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[conversationID]
	s.mu.RUnlock()
	return sess, ok
}

// End discards the conversation's state.
func (s *SessionService) End(conversationID string) {
	s.mu.Lock()
	delete(s.sessions, conversationID)
	s.mu.Unlock()
}
