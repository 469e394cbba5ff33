package webchat

import "context"

// Chunk represents a section of a page optimized for embedding and retrieval.
type Chunk struct {
	ID        string    `json:"id"`
	PageID    string    `json:"pageId"`
	SiteID    string    `json:"siteId"` // Denormalized for efficient filtering
	Content   string    `json:"content"`
	Embedding []float32 `json:"embedding,omitempty"`
	Position  int       `json:"position"`
	SourceURL string    `json:"sourceUrl"` // For citation
}

// Validate returns an error if the chunk contains invalid fields.
func (c *Chunk) Validate() error {
	if c.PageID == "" {
		return Errorf(EINVALID, "chunk page ID required")
	}
	if c.SiteID == "" {
		return Errorf(EINVALID, "chunk site ID required")
	}
	if c.Content == "" {
		return Errorf(EINVALID, "chunk content required")
	}
	return nil
}

// ChunkService represents a service for managing chunks.
type ChunkService interface {
	// CreateChunks creates multiple chunks in a batch.
	CreateChunks(ctx context.Context, chunks []*Chunk) error

	// FindChunks retrieves chunks matching the filter.
	// Embeddings are included in the returned chunks.
	FindChunks(ctx context.Context, filter ChunkFilter) ([]*Chunk, error)

	// DeleteChunksBySite removes all chunks for a site.
	DeleteChunksBySite(ctx context.Context, siteID string) error
}

// ChunkFilter represents a filter for FindChunks.
type ChunkFilter struct {
	ID     *string `json:"id"`
	PageID *string `json:"pageId"`
	SiteID *string `json:"siteId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// SearchService provides semantic search over a site's chunks.
type SearchService interface {
	// Search returns chunks from the site ordered by similarity to the
	// query, most similar first.
	Search(ctx context.Context, siteID string, query string, opts SearchOptions) ([]SearchResult, error)
}

// SearchOptions configures search behavior.
type SearchOptions struct {
	// Maximum number of results to return. Defaults to 4 when zero.
	Limit int `json:"limit,omitempty"`

	// Minimum cosine similarity. Results scoring below are dropped.
	// Zero means no threshold.
	MinScore float32 `json:"minScore,omitempty"`
}

// SearchResult represents a search match.
type SearchResult struct {
	Chunk *Chunk  `json:"chunk"`
	Score float32 `json:"score"`
}
