package webchat

import (
	"context"
	"time"
)

// Page represents a crawled website page stored as markdown.
type Page struct {
	ID          string    `json:"id"`
	SiteID      string    `json:"siteId"`
	SourceURL   string    `json:"sourceUrl"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	Position    int       `json:"position"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.SiteID == "" {
		return Errorf(EINVALID, "page site ID required")
	}
	if p.SourceURL == "" {
		return Errorf(EINVALID, "page source URL required")
	}
	return nil
}

// SortOrder represents the sort order for page queries.
type SortOrder string

// SortOrder constants for PageFilter.
const (
	SortByFetchedAt SortOrder = "fetched_at"
	SortByPosition  SortOrder = "position"
)

// PageService represents a service for managing pages.
type PageService interface {
	// CreatePage creates a new page.
	CreatePage(ctx context.Context, page *Page) error

	// FindPageByID retrieves a page by ID.
	// Returns ENOTFOUND if page does not exist.
	FindPageByID(ctx context.Context, id string) (*Page, error)

	// FindPages retrieves pages matching the filter.
	FindPages(ctx context.Context, filter PageFilter) ([]*Page, error)

	// DeletePage permanently removes a page and all associated chunks.
	// Returns ENOTFOUND if page does not exist.
	DeletePage(ctx context.Context, id string) error

	// DeletePagesBySite removes all pages for a site.
	DeletePagesBySite(ctx context.Context, siteID string) error
}

// PageFilter represents a filter for FindPages.
type PageFilter struct {
	ID        *string `json:"id"`
	SiteID    *string `json:"siteId"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}
