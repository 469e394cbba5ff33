package mock

import (
	"context"

	"github.com/imsaksham-c/webchat"
)

var _ webchat.ChunkService = (*ChunkService)(nil)

// ChunkService is a mock implementation of webchat.ChunkService.
type ChunkService struct {
	CreateChunksFn       func(ctx context.Context, chunks []*webchat.Chunk) error
	FindChunksFn         func(ctx context.Context, filter webchat.ChunkFilter) ([]*webchat.Chunk, error)
	DeleteChunksBySiteFn func(ctx context.Context, siteID string) error
}

func (s *ChunkService) CreateChunks(ctx context.Context, chunks []*webchat.Chunk) error {
	return s.CreateChunksFn(ctx, chunks)
}

func (s *ChunkService) FindChunks(ctx context.Context, filter webchat.ChunkFilter) ([]*webchat.Chunk, error) {
	return s.FindChunksFn(ctx, filter)
}

func (s *ChunkService) DeleteChunksBySite(ctx context.Context, siteID string) error {
	return s.DeleteChunksBySiteFn(ctx, siteID)
}

var _ webchat.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of webchat.SearchService.
type SearchService struct {
	SearchFn func(ctx context.Context, siteID string, query string, opts webchat.SearchOptions) ([]webchat.SearchResult, error)
}

func (s *SearchService) Search(ctx context.Context, siteID string, query string, opts webchat.SearchOptions) ([]webchat.SearchResult, error) {
	return s.SearchFn(ctx, siteID, query, opts)
}
