// Package chat provides the conversation engine that answers user
// questions about an indexed site with retrieval-augmented generation.
package chat

import (
	"context"
	"time"

	"github.com/imsaksham-c/webchat"
)

// Engine answers chat turns for a session. Each turn condenses the
// question against the session history into a standalone search query,
// retrieves the most similar chunks, and asks the responder for an
// answer grounded in them. The user question and the answer are then
// appended to the session history.
type Engine struct {
	Search    webchat.SearchService
	Responder webchat.Responder
	Sessions  webchat.SessionService

	// TopK is the number of chunks retrieved per turn. Zero uses the
	// search service default.
	TopK int
}

// Respond answers one chat turn for the given session.
func (e *Engine) Respond(ctx context.Context, sessionID string, input string) (string, error) {
	if input == "" {
		return "", webchat.Errorf(webchat.EINVALID, "message required")
	}

	session, err := e.Sessions.FindSessionByID(ctx, sessionID)
	if err != nil {
		return "", err
	}

	query, err := e.Responder.CondenseQuery(ctx, session.History, input)
	if err != nil {
		return "", err
	}

	results, err := e.Search.Search(ctx, session.SiteID, query, webchat.SearchOptions{Limit: e.TopK})
	if err != nil {
		return "", err
	}

	answer, err := e.Responder.Respond(ctx, session.History, input, results)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	err = e.Sessions.AppendMessages(ctx, sessionID,
		webchat.Message{Role: webchat.RoleUser, Content: input, SentAt: now},
		webchat.Message{Role: webchat.RoleAssistant, Content: answer, SentAt: now},
	)
	if err != nil {
		return "", err
	}

	return answer, nil
}
