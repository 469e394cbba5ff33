package mock

import (
	"context"

	"github.com/imsaksham-c/webchat"
)

var _ webchat.Embedder = (*Embedder)(nil)

// Embedder is a mock implementation of webchat.Embedder.
type Embedder struct {
	EmbedTextsFn func(ctx context.Context, texts []string) ([][]float32, error)
	EmbedQueryFn func(ctx context.Context, query string) ([]float32, error)
}

func (e *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	return e.EmbedTextsFn(ctx, texts)
}

func (e *Embedder) EmbedQuery(ctx context.Context, query string) ([]float32, error) {
	return e.EmbedQueryFn(ctx, query)
}

var _ webchat.TokenCounter = (*TokenCounter)(nil)

// TokenCounter is a mock implementation of webchat.TokenCounter.
type TokenCounter struct {
	CountTokensFn func(ctx context.Context, text string) (int, error)
}

func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	return tc.CountTokensFn(ctx, text)
}
