package webchat

import (
	"context"
	"time"
)

// Site represents a website registered for indexing and chat.
// SeedURL is the crawl starting point; MaxDepth bounds link discovery
// in hops from the seed (the seed itself is depth 0).
type Site struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	SeedURL   string    `json:"seedUrl"`
	MaxDepth  int       `json:"maxDepth"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the site contains invalid fields.
func (s *Site) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "site name required")
	}
	if s.SeedURL == "" {
		return Errorf(EINVALID, "site seed URL required")
	}
	if s.MaxDepth < 1 {
		return Errorf(EINVALID, "site max depth must be at least 1")
	}
	return nil
}

// SiteService represents a service for managing sites.
type SiteService interface {
	// CreateSite creates a new site.
	CreateSite(ctx context.Context, site *Site) error

	// FindSiteByID retrieves a site by ID.
	// Returns ENOTFOUND if site does not exist.
	FindSiteByID(ctx context.Context, id string) (*Site, error)

	// FindSites retrieves sites matching the filter.
	FindSites(ctx context.Context, filter SiteFilter) ([]*Site, error)

	// DeleteSite permanently removes a site and all associated pages
	// and chunks. Returns ENOTFOUND if site does not exist.
	DeleteSite(ctx context.Context, id string) error
}

// SiteFilter represents a filter for FindSites.
type SiteFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
