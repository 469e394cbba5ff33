package gemini

import (
	"context"
	"strings"

	"github.com/imsaksham-c/webchat"
	"google.golang.org/genai"
)

// DefaultModel is the generation model used when none is given.
const DefaultModel = "gemini-2.5-flash"

// Ensure Responder implements webchat.Responder at compile time.
var _ webchat.Responder = (*Responder)(nil)

// Responder answers questions about indexed site content using Gemini.
// Answering is two-stage: the conversation history first condenses the
// question into a standalone search query (used by the caller for
// retrieval), then the retrieved chunks ground the final answer.
type Responder struct {
	client *genai.Client
	model  string
}

// NewResponder creates a new Responder. An empty model selects DefaultModel.
func NewResponder(client *genai.Client, model string) *Responder {
	if model == "" {
		model = DefaultModel
	}
	return &Responder{client: client, model: model}
}

// CondenseQuery rewrites a follow-up question into a standalone search
// query using the conversation history. With no history the question is
// already standalone and is returned unchanged without an API call.
func (r *Responder) CondenseQuery(ctx context.Context, history []webchat.Message, question string) (string, error) {
	if question == "" {
		return "", webchat.Errorf(webchat.EINVALID, "question required")
	}
	if len(history) == 0 {
		return question, nil
	}

	contents := historyContents(history)
	contents = append(contents, genai.NewContentFromText(question, genai.RoleUser))
	contents = append(contents, genai.NewContentFromText(
		"Given the above conversation, generate a search query to look up in order to get information relevant to the conversation. Respond with the query only.",
		genai.RoleUser,
	))

	result, err := r.client.Models.GenerateContent(ctx, r.model, contents, nil)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", webchat.Errorf(webchat.EINTERNAL, "gemini returned nil result")
	}

	query := strings.TrimSpace(result.Text())
	if query == "" {
		return question, nil
	}
	return query, nil
}

// Respond answers the question grounded in the retrieved chunks, with
// the conversation history included for follow-up resolution.
func (r *Responder) Respond(ctx context.Context, history []webchat.Message, question string, results []webchat.SearchResult) (string, error) {
	if question == "" {
		return "", webchat.Errorf(webchat.EINVALID, "question required")
	}

	contents := historyContents(history)
	contents = append(contents, genai.NewContentFromText(question, genai.RoleUser))

	result, err := r.client.Models.GenerateContent(ctx, r.model, contents, BuildAnswerConfig(results))
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", webchat.Errorf(webchat.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildAnswerConfig returns the GenerateContentConfig for answering,
// with the retrieved context in the system instruction.
func BuildAnswerConfig(results []webchat.SearchResult) *genai.GenerateContentConfig {
	temp := float32(0.4)
	instruction := "Answer the user's questions based on the below context. " +
		"If the answer is not in the context, say so.\n\n" +
		webchat.FormatResults(results)

	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: instruction}},
		},
		Temperature: &temp,
	}
}

// historyContents converts chat history to Gemini content turns.
func historyContents(history []webchat.Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)+2)
	for _, msg := range history {
		var role genai.Role = genai.RoleUser
		if msg.Role == webchat.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Content, role))
	}
	return contents
}
