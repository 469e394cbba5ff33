package webchat

import "context"

// Embedder produces vector embeddings for text.
type Embedder interface {
	// EmbedTexts embeds a batch of texts. The result has one vector per
	// input, in input order, all of the same dimension.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)

	// EmbedQuery embeds a single search query.
	EmbedQuery(ctx context.Context, query string) ([]float32, error)
}
