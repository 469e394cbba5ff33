package chat

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/imsaksham-c/webchat"
)

// Compile-time interface verification.
var _ webchat.SessionService = (*SessionService)(nil)

// SessionService is an in-memory implementation of webchat.SessionService.
// Sessions live for the process lifetime; chat history is not persisted.
// It is safe for concurrent use.
type SessionService struct {
	mu       sync.Mutex
	sessions map[string]*webchat.Session
}

// NewSessionService creates a new SessionService.
func NewSessionService() *SessionService {
	return &SessionService{
		sessions: make(map[string]*webchat.Session),
	}
}

// CreateSession creates a new session for a site.
func (s *SessionService) CreateSession(_ context.Context, siteID string) (*webchat.Session, error) {
	if siteID == "" {
		return nil, webchat.Errorf(webchat.EINVALID, "session site ID required")
	}

	session := &webchat.Session{
		ID:        uuid.New().String(),
		SiteID:    siteID,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session, nil
}

// FindSessionByID retrieves a session by ID.
// The returned session is a copy; mutate it through AppendMessages.
func (s *SessionService) FindSessionByID(_ context.Context, id string) (*webchat.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, webchat.Errorf(webchat.ENOTFOUND, "session not found")
	}

	cp := *session
	cp.History = append([]webchat.Message(nil), session.History...)
	return &cp, nil
}

// AppendMessages appends messages to a session's history.
func (s *SessionService) AppendMessages(_ context.Context, id string, messages ...webchat.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return webchat.Errorf(webchat.ENOTFOUND, "session not found")
	}

	session.History = append(session.History, messages...)
	return nil
}

// DeleteSession ends a session and discards its history.
func (s *SessionService) DeleteSession(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return webchat.Errorf(webchat.ENOTFOUND, "session not found")
	}
	delete(s.sessions, id)
	return nil
}
