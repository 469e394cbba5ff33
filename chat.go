package webchat

import (
	"context"
	"time"
)

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message represents one turn in a conversation.
type Message struct {
	Role    string    `json:"role"`
	Content string    `json:"content"`
	SentAt  time.Time `json:"sentAt"`
}

// Session holds the conversational state for one chat over one site.
// It is created on the first user interaction and discarded on teardown;
// history grows by two messages (user, assistant) per answered turn.
type Session struct {
	ID        string    `json:"id"`
	SiteID    string    `json:"siteId"`
	History   []Message `json:"history"`
	CreatedAt time.Time `json:"createdAt"`
}

// SessionService manages chat sessions.
type SessionService interface {
	// CreateSession creates a new session for a site.
	CreateSession(ctx context.Context, siteID string) (*Session, error)

	// FindSessionByID retrieves a session by ID.
	// Returns ENOTFOUND if session does not exist.
	FindSessionByID(ctx context.Context, id string) (*Session, error)

	// AppendMessages appends messages to a session's history.
	// Returns ENOTFOUND if session does not exist.
	AppendMessages(ctx context.Context, id string, messages ...Message) error

	// DeleteSession ends a session and discards its history.
	// Returns ENOTFOUND if session does not exist.
	DeleteSession(ctx context.Context, id string) error
}

// Responder produces a grounded answer to a user question.
// The context documents come from retrieval; history carries prior turns.
type Responder interface {
	// Respond answers the question using only the provided context.
	Respond(ctx context.Context, history []Message, question string, results []SearchResult) (string, error)

	// CondenseQuery rewrites a follow-up question into a standalone
	// search query using the conversation history. With empty history
	// the question is returned as-is.
	CondenseQuery(ctx context.Context, history []Message, question string) (string, error)
}
