package sqlite_test

import (
	"context"
	"testing"

	"github.com/imsaksham-c/webchat"
	"github.com/imsaksham-c/webchat/sqlite"
	"github.com/stretchr/testify/require"
)

// MustOpenDB returns an open in-memory database, closed on cleanup.
func MustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// MustCreateSite creates a site fixture.
func MustCreateSite(t *testing.T, db *sqlite.DB, name string) *webchat.Site {
	t.Helper()

	site := &webchat.Site{Name: name, SeedURL: "https://" + name + ".example.com/", MaxDepth: 2}
	require.NoError(t, sqlite.NewSiteService(db).CreateSite(context.Background(), site))
	return site
}

// MustCreatePage creates a page fixture for the site.
func MustCreatePage(t *testing.T, db *sqlite.DB, siteID, url, content string) *webchat.Page {
	t.Helper()

	page := &webchat.Page{SiteID: siteID, SourceURL: url, Title: "Title", Content: content}
	require.NoError(t, sqlite.NewPageService(db).CreatePage(context.Background(), page))
	return page
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates schema on first open", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		ctx := context.Background()

		for _, table := range []string{"sites", "pages", "chunks"} {
			var count int
			err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count)
			require.NoError(t, err, table)
		}
	})

	t.Run("returns error for invalid path", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/db.sqlite")
		require.Error(t, db.Open())
	})

	t.Run("enables WAL mode for file-based databases", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(t.TempDir() + "/test.db")
		require.NoError(t, db.Open())
		defer db.Close()

		var journalMode string
		err := db.QueryRowContext(context.Background(), "PRAGMA journal_mode").Scan(&journalMode)
		require.NoError(t, err)
		require.Equal(t, "wal", journalMode)
	})

	t.Run("enforces foreign keys", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		_, err := db.ExecContext(context.Background(), `
			INSERT INTO pages (id, site_id, source_url, fetched_at)
			VALUES ('p1', 'no-such-site', 'https://example.com/', '2026-01-01T00:00:00Z')
		`)
		require.Error(t, err)
	})
}
