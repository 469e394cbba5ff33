package mock

import (
	"context"

	"github.com/imsaksham-c/webchat"
)

var _ webchat.SessionService = (*SessionService)(nil)

// SessionService is a mock implementation of webchat.SessionService.
type SessionService struct {
	CreateSessionFn   func(ctx context.Context, siteID string) (*webchat.Session, error)
	FindSessionByIDFn func(ctx context.Context, id string) (*webchat.Session, error)
	AppendMessagesFn  func(ctx context.Context, id string, messages ...webchat.Message) error
	DeleteSessionFn   func(ctx context.Context, id string) error
}

func (s *SessionService) CreateSession(ctx context.Context, siteID string) (*webchat.Session, error) {
	return s.CreateSessionFn(ctx, siteID)
}

func (s *SessionService) FindSessionByID(ctx context.Context, id string) (*webchat.Session, error) {
	return s.FindSessionByIDFn(ctx, id)
}

func (s *SessionService) AppendMessages(ctx context.Context, id string, messages ...webchat.Message) error {
	return s.AppendMessagesFn(ctx, id, messages...)
}

func (s *SessionService) DeleteSession(ctx context.Context, id string) error {
	return s.DeleteSessionFn(ctx, id)
}

var _ webchat.Responder = (*Responder)(nil)

// Responder is a mock implementation of webchat.Responder.
type Responder struct {
	RespondFn       func(ctx context.Context, history []webchat.Message, question string, results []webchat.SearchResult) (string, error)
	CondenseQueryFn func(ctx context.Context, history []webchat.Message, question string) (string, error)
}

func (r *Responder) Respond(ctx context.Context, history []webchat.Message, question string, results []webchat.SearchResult) (string, error) {
	return r.RespondFn(ctx, history, question, results)
}

func (r *Responder) CondenseQuery(ctx context.Context, history []webchat.Message, question string) (string, error) {
	return r.CondenseQueryFn(ctx, history, question)
}
