package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/imsaksham-c/webchat"
	"github.com/imsaksham-c/webchat/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkService_CreateChunks(t *testing.T) {
	t.Parallel()

	t.Run("stores chunks and round-trips embeddings", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		svc := sqlite.NewChunkService(db)
		ctx := context.Background()

		site := MustCreateSite(t, db, "docs")
		page := MustCreatePage(t, db, site.ID, "https://docs.example.com/", "content")

		embedding := []float32{0.25, -1.5, 3.14159, 0}
		err := svc.CreateChunks(ctx, []*webchat.Chunk{{
			PageID:    page.ID,
			SiteID:    site.ID,
			Content:   "first chunk",
			Embedding: embedding,
			Position:  0,
			SourceURL: page.SourceURL,
		}})
		require.NoError(t, err)

		chunks, err := svc.FindChunks(ctx, webchat.ChunkFilter{SiteID: &site.ID})
		require.NoError(t, err)
		require.Len(t, chunks, 1)
		assert.Equal(t, "first chunk", chunks[0].Content)
		assert.Equal(t, embedding, chunks[0].Embedding)
		assert.Equal(t, page.SourceURL, chunks[0].SourceURL)
		assert.NotEmpty(t, chunks[0].ID)
	})

	t.Run("rejects chunks without an embedding", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		svc := sqlite.NewChunkService(db)

		site := MustCreateSite(t, db, "docs")
		page := MustCreatePage(t, db, site.ID, "https://docs.example.com/", "content")

		err := svc.CreateChunks(context.Background(), []*webchat.Chunk{{
			PageID:  page.ID,
			SiteID:  site.ID,
			Content: "no embedding",
		}})
		require.Error(t, err)
		assert.Equal(t, webchat.EINVALID, webchat.ErrorCode(err))
	})

	t.Run("rejects chunks without content", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		svc := sqlite.NewChunkService(db)

		site := MustCreateSite(t, db, "docs")
		page := MustCreatePage(t, db, site.ID, "https://docs.example.com/", "content")

		err := svc.CreateChunks(context.Background(), []*webchat.Chunk{{
			PageID:    page.ID,
			SiteID:    site.ID,
			Embedding: []float32{1},
		}})
		require.Error(t, err)
		assert.Equal(t, webchat.EINVALID, webchat.ErrorCode(err))
	})
}

func TestChunkService_FindChunks(t *testing.T) {
	t.Parallel()

	t.Run("orders by position within a page", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		svc := sqlite.NewChunkService(db)
		ctx := context.Background()

		site := MustCreateSite(t, db, "docs")
		page := MustCreatePage(t, db, site.ID, "https://docs.example.com/", "content")

		var chunks []*webchat.Chunk
		for i := 2; i >= 0; i-- {
			chunks = append(chunks, &webchat.Chunk{
				PageID:    page.ID,
				SiteID:    site.ID,
				Content:   fmt.Sprintf("chunk %d", i),
				Embedding: []float32{float32(i)},
				Position:  i,
			})
		}
		require.NoError(t, svc.CreateChunks(ctx, chunks))

		got, err := svc.FindChunks(ctx, webchat.ChunkFilter{PageID: &page.ID})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "chunk 0", got[0].Content)
		assert.Equal(t, "chunk 1", got[1].Content)
		assert.Equal(t, "chunk 2", got[2].Content)
	})
}

func TestChunkService_DeleteChunksBySite(t *testing.T) {
	t.Parallel()

	db := MustOpenDB(t)
	svc := sqlite.NewChunkService(db)
	ctx := context.Background()

	site := MustCreateSite(t, db, "docs")
	other := MustCreateSite(t, db, "blog")
	page := MustCreatePage(t, db, site.ID, "https://docs.example.com/", "content")
	otherPage := MustCreatePage(t, db, other.ID, "https://blog.example.com/", "content")

	require.NoError(t, svc.CreateChunks(ctx, []*webchat.Chunk{
		{PageID: page.ID, SiteID: site.ID, Content: "a", Embedding: []float32{1}},
		{PageID: otherPage.ID, SiteID: other.ID, Content: "b", Embedding: []float32{1}},
	}))

	require.NoError(t, svc.DeleteChunksBySite(ctx, site.ID))

	chunks, err := svc.FindChunks(ctx, webchat.ChunkFilter{SiteID: &site.ID})
	require.NoError(t, err)
	assert.Empty(t, chunks)

	chunks, err = svc.FindChunks(ctx, webchat.ChunkFilter{SiteID: &other.ID})
	require.NoError(t, err)
	assert.Len(t, chunks, 1)
}
