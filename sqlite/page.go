package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/imsaksham-c/webchat"
)

// Compile-time interface verification.
var _ webchat.PageService = (*PageService)(nil)

// PageService implements webchat.PageService using SQLite.
type PageService struct {
	db *DB
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := []byte{
		byte(h >> 56), byte(h >> 48), byte(h >> 40), byte(h >> 32),
		byte(h >> 24), byte(h >> 16), byte(h >> 8), byte(h),
	}
	return hex.EncodeToString(b)
}

// CreatePage creates a new page.
func (s *PageService) CreatePage(ctx context.Context, page *webchat.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	page.ID = uuid.New().String()
	page.FetchedAt = time.Now().UTC()
	page.ContentHash = hashContent(page.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pages (id, site_id, source_url, title, content, content_hash, position, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, page.ID, page.SiteID, page.SourceURL, page.Title, page.Content, page.ContentHash,
		page.Position, page.FetchedAt.Format(time.RFC3339))

	return err
}

// FindPageByID retrieves a page by ID.
func (s *PageService) FindPageByID(ctx context.Context, id string) (*webchat.Page, error) {
	var page webchat.Page
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, site_id, source_url, title, content, content_hash, position, fetched_at
		FROM pages
		WHERE id = ?
	`, id).Scan(&page.ID, &page.SiteID, &page.SourceURL, &page.Title,
		&page.Content, &page.ContentHash, &page.Position, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, webchat.Errorf(webchat.ENOTFOUND, "page not found")
	}
	if err != nil {
		return nil, err
	}

	if page.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at"); err != nil {
		return nil, err
	}

	return &page, nil
}

// FindPages retrieves pages matching the filter.
func (s *PageService) FindPages(ctx context.Context, filter webchat.PageFilter) ([]*webchat.Page, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, site_id, source_url, title, content, content_hash, position, fetched_at FROM pages WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SiteID != nil {
		query.WriteString(" AND site_id = ?")
		args = append(args, *filter.SiteID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	switch filter.SortBy {
	case webchat.SortByPosition:
		query.WriteString(" ORDER BY position ASC")
	default:
		query.WriteString(" ORDER BY fetched_at DESC")
	}

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*webchat.Page
	for rows.Next() {
		var page webchat.Page
		var fetchedAt string

		if err := rows.Scan(&page.ID, &page.SiteID, &page.SourceURL, &page.Title,
			&page.Content, &page.ContentHash, &page.Position, &fetchedAt); err != nil {
			return nil, err
		}

		if page.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at"); err != nil {
			return nil, err
		}

		pages = append(pages, &page)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return pages, nil
}

// DeletePage permanently removes a page and its chunks (via cascade).
func (s *PageService) DeletePage(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM pages WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return webchat.Errorf(webchat.ENOTFOUND, "page not found")
	}

	return nil
}

// DeletePagesBySite removes all pages for a site.
func (s *PageService) DeletePagesBySite(ctx context.Context, siteID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM pages WHERE site_id = ?", siteID)
	return err
}
