package sqlite

import (
	"context"
	"encoding/binary"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/imsaksham-c/webchat"
)

// Compile-time interface verification.
var _ webchat.ChunkService = (*ChunkService)(nil)

// ChunkService implements webchat.ChunkService using SQLite.
// Embeddings are stored as little-endian float32 BLOBs.
type ChunkService struct {
	db *DB
}

// NewChunkService creates a new ChunkService.
func NewChunkService(db *DB) *ChunkService {
	return &ChunkService{db: db}
}

// encodeEmbedding serializes an embedding vector to a byte slice.
func encodeEmbedding(vec []float32) []byte {
	buf := make([]byte, 4*len(vec))
	for i, v := range vec {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	return buf
}

// decodeEmbedding deserializes a byte slice back into a vector.
func decodeEmbedding(buf []byte) []float32 {
	vec := make([]float32, len(buf)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[4*i:]))
	}
	return vec
}

// CreateChunks creates multiple chunks in a single transaction-free batch.
// The database connection is limited to one writer, so sequential inserts
// are already serialized.
func (s *ChunkService) CreateChunks(ctx context.Context, chunks []*webchat.Chunk) error {
	for _, chunk := range chunks {
		if err := chunk.Validate(); err != nil {
			return err
		}
		if len(chunk.Embedding) == 0 {
			return webchat.Errorf(webchat.EINVALID, "chunk embedding required")
		}

		chunk.ID = uuid.New().String()

		_, err := s.db.ExecContext(ctx, `
			INSERT INTO chunks (id, page_id, site_id, content, embedding, position, source_url)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, chunk.ID, chunk.PageID, chunk.SiteID, chunk.Content,
			encodeEmbedding(chunk.Embedding), chunk.Position, chunk.SourceURL)
		if err != nil {
			return err
		}
	}
	return nil
}

// FindChunks retrieves chunks matching the filter, embeddings included.
func (s *ChunkService) FindChunks(ctx context.Context, filter webchat.ChunkFilter) ([]*webchat.Chunk, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, page_id, site_id, content, embedding, position, source_url FROM chunks WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.PageID != nil {
		query.WriteString(" AND page_id = ?")
		args = append(args, *filter.PageID)
	}
	if filter.SiteID != nil {
		query.WriteString(" AND site_id = ?")
		args = append(args, *filter.SiteID)
	}

	query.WriteString(" ORDER BY position ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chunks []*webchat.Chunk
	for rows.Next() {
		var chunk webchat.Chunk
		var embedding []byte

		if err := rows.Scan(&chunk.ID, &chunk.PageID, &chunk.SiteID, &chunk.Content,
			&embedding, &chunk.Position, &chunk.SourceURL); err != nil {
			return nil, err
		}

		chunk.Embedding = decodeEmbedding(embedding)
		chunks = append(chunks, &chunk)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return chunks, nil
}

// DeleteChunksBySite removes all chunks for a site.
func (s *ChunkService) DeleteChunksBySite(ctx context.Context, siteID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM chunks WHERE site_id = ?", siteID)
	return err
}
