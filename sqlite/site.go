package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/imsaksham-c/webchat"
)

// Compile-time interface verification.
var _ webchat.SiteService = (*SiteService)(nil)

// SiteService implements webchat.SiteService using SQLite.
type SiteService struct {
	db *DB
}

// NewSiteService creates a new SiteService.
func NewSiteService(db *DB) *SiteService {
	return &SiteService{db: db}
}

// CreateSite creates a new site.
func (s *SiteService) CreateSite(ctx context.Context, site *webchat.Site) error {
	if err := site.Validate(); err != nil {
		return err
	}

	site.ID = uuid.New().String()
	now := time.Now().UTC()
	site.CreatedAt = now
	site.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sites (id, name, seed_url, max_depth, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, site.ID, site.Name, site.SeedURL, site.MaxDepth,
		site.CreatedAt.Format(time.RFC3339), site.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindSiteByID retrieves a site by ID.
func (s *SiteService) FindSiteByID(ctx context.Context, id string) (*webchat.Site, error) {
	var site webchat.Site
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, seed_url, max_depth, created_at, updated_at
		FROM sites
		WHERE id = ?
	`, id).Scan(&site.ID, &site.Name, &site.SeedURL, &site.MaxDepth, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, webchat.Errorf(webchat.ENOTFOUND, "site not found")
	}
	if err != nil {
		return nil, err
	}

	if site.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if site.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &site, nil
}

// FindSites retrieves sites matching the filter.
func (s *SiteService) FindSites(ctx context.Context, filter webchat.SiteFilter) ([]*webchat.Site, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, seed_url, max_depth, created_at, updated_at FROM sites WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sites []*webchat.Site
	for rows.Next() {
		var site webchat.Site
		var createdAt, updatedAt string

		if err := rows.Scan(&site.ID, &site.Name, &site.SeedURL, &site.MaxDepth, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		if site.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		if site.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
			return nil, err
		}

		sites = append(sites, &site)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sites, nil
}

// DeleteSite permanently removes a site. Pages and chunks are removed
// by the ON DELETE CASCADE constraints.
func (s *SiteService) DeleteSite(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM sites WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return webchat.Errorf(webchat.ENOTFOUND, "site not found")
	}

	return nil
}
