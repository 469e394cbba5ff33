package sqlite_test

import (
	"context"
	"testing"

	"github.com/imsaksham-c/webchat"
	"github.com/imsaksham-c/webchat/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteService_CreateSite(t *testing.T) {
	t.Parallel()

	t.Run("creates site with generated ID and timestamps", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		svc := sqlite.NewSiteService(db)

		site := &webchat.Site{Name: "docs", SeedURL: "https://example.com/", MaxDepth: 2}
		err := svc.CreateSite(context.Background(), site)
		require.NoError(t, err)

		assert.NotEmpty(t, site.ID)
		assert.False(t, site.CreatedAt.IsZero())
		assert.False(t, site.UpdatedAt.IsZero())

		got, err := svc.FindSiteByID(context.Background(), site.ID)
		require.NoError(t, err)
		assert.Equal(t, "docs", got.Name)
		assert.Equal(t, "https://example.com/", got.SeedURL)
		assert.Equal(t, 2, got.MaxDepth)
	})

	t.Run("rejects site without a name", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		svc := sqlite.NewSiteService(db)

		err := svc.CreateSite(context.Background(), &webchat.Site{SeedURL: "https://example.com/", MaxDepth: 1})
		require.Error(t, err)
		assert.Equal(t, webchat.EINVALID, webchat.ErrorCode(err))
	})

	t.Run("rejects site with max depth below one", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		svc := sqlite.NewSiteService(db)

		err := svc.CreateSite(context.Background(), &webchat.Site{Name: "docs", SeedURL: "https://example.com/"})
		require.Error(t, err)
		assert.Equal(t, webchat.EINVALID, webchat.ErrorCode(err))
	})
}

func TestSiteService_FindSiteByID(t *testing.T) {
	t.Parallel()

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		svc := sqlite.NewSiteService(db)

		_, err := svc.FindSiteByID(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, webchat.ENOTFOUND, webchat.ErrorCode(err))
	})
}

func TestSiteService_FindSites(t *testing.T) {
	t.Parallel()

	t.Run("filters by name", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		svc := sqlite.NewSiteService(db)

		MustCreateSite(t, db, "alpha")
		MustCreateSite(t, db, "beta")

		name := "alpha"
		sites, err := svc.FindSites(context.Background(), webchat.SiteFilter{Name: &name})
		require.NoError(t, err)
		require.Len(t, sites, 1)
		assert.Equal(t, "alpha", sites[0].Name)
	})

	t.Run("returns all sites without a filter", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		svc := sqlite.NewSiteService(db)

		MustCreateSite(t, db, "alpha")
		MustCreateSite(t, db, "beta")

		sites, err := svc.FindSites(context.Background(), webchat.SiteFilter{})
		require.NoError(t, err)
		assert.Len(t, sites, 2)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		svc := sqlite.NewSiteService(db)

		MustCreateSite(t, db, "alpha")
		MustCreateSite(t, db, "beta")
		MustCreateSite(t, db, "gamma")

		sites, err := svc.FindSites(context.Background(), webchat.SiteFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, sites, 2)

		sites, err = svc.FindSites(context.Background(), webchat.SiteFilter{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, sites, 1)
	})
}

func TestSiteService_DeleteSite(t *testing.T) {
	t.Parallel()

	t.Run("removes the site and cascades to pages and chunks", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		svc := sqlite.NewSiteService(db)
		ctx := context.Background()

		site := MustCreateSite(t, db, "docs")
		page := MustCreatePage(t, db, site.ID, "https://docs.example.com/", "content")

		chunkSvc := sqlite.NewChunkService(db)
		err := chunkSvc.CreateChunks(ctx, []*webchat.Chunk{{
			PageID:    page.ID,
			SiteID:    site.ID,
			Content:   "content",
			Embedding: []float32{0.1, 0.2},
			SourceURL: page.SourceURL,
		}})
		require.NoError(t, err)

		require.NoError(t, svc.DeleteSite(ctx, site.ID))

		_, err = svc.FindSiteByID(ctx, site.ID)
		assert.Equal(t, webchat.ENOTFOUND, webchat.ErrorCode(err))

		pages, err := sqlite.NewPageService(db).FindPages(ctx, webchat.PageFilter{SiteID: &site.ID})
		require.NoError(t, err)
		assert.Empty(t, pages)

		chunks, err := chunkSvc.FindChunks(ctx, webchat.ChunkFilter{SiteID: &site.ID})
		require.NoError(t, err)
		assert.Empty(t, chunks)
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		svc := sqlite.NewSiteService(db)

		err := svc.DeleteSite(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, webchat.ENOTFOUND, webchat.ErrorCode(err))
	})
}
