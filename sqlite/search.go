package sqlite

import (
	"context"
	"math"
	"sort"

	"github.com/imsaksham-c/webchat"
)

// defaultSearchLimit is the number of results returned when
// SearchOptions.Limit is zero.
const defaultSearchLimit = 4

// Compile-time interface verification.
var _ webchat.SearchService = (*SearchService)(nil)

// SearchService implements webchat.SearchService with brute-force cosine
// similarity over a site's chunk embeddings. Sites index at most a few
// thousand chunks, so a linear scan stays well under query latency that
// would justify an ANN index.
type SearchService struct {
	chunks   webchat.ChunkService
	embedder webchat.Embedder
}

// NewSearchService creates a new SearchService.
func NewSearchService(chunks webchat.ChunkService, embedder webchat.Embedder) *SearchService {
	return &SearchService{chunks: chunks, embedder: embedder}
}

// Search embeds the query and returns the site's chunks ordered by
// cosine similarity, most similar first.
func (s *SearchService) Search(ctx context.Context, siteID string, query string, opts webchat.SearchOptions) ([]webchat.SearchResult, error) {
	if siteID == "" {
		return nil, webchat.Errorf(webchat.EINVALID, "site ID required")
	}
	if query == "" {
		return nil, webchat.Errorf(webchat.EINVALID, "search query required")
	}

	queryVec, err := s.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	chunks, err := s.chunks.FindChunks(ctx, webchat.ChunkFilter{SiteID: &siteID})
	if err != nil {
		return nil, err
	}

	results := make([]webchat.SearchResult, 0, len(chunks))
	for _, chunk := range chunks {
		score := cosineSimilarity(queryVec, chunk.Embedding)
		// A zero MinScore means no threshold: cosine scores can be
		// negative, and those chunks still rank.
		if opts.MinScore > 0 && score < opts.MinScore {
			continue
		}
		results = append(results, webchat.SearchResult{Chunk: chunk, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if len(results) > limit {
		results = results[:limit]
	}

	return results, nil
}

// cosineSimilarity returns the cosine of the angle between two vectors.
// Mismatched dimensions or zero vectors score 0.
func cosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
