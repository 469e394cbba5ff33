package mock

import (
	"context"

	"github.com/imsaksham-c/webchat"
)

var _ webchat.SiteService = (*SiteService)(nil)

// SiteService is a mock implementation of webchat.SiteService.
type SiteService struct {
	CreateSiteFn   func(ctx context.Context, site *webchat.Site) error
	FindSiteByIDFn func(ctx context.Context, id string) (*webchat.Site, error)
	FindSitesFn    func(ctx context.Context, filter webchat.SiteFilter) ([]*webchat.Site, error)
	DeleteSiteFn   func(ctx context.Context, id string) error
}

func (s *SiteService) CreateSite(ctx context.Context, site *webchat.Site) error {
	return s.CreateSiteFn(ctx, site)
}

func (s *SiteService) FindSiteByID(ctx context.Context, id string) (*webchat.Site, error) {
	return s.FindSiteByIDFn(ctx, id)
}

func (s *SiteService) FindSites(ctx context.Context, filter webchat.SiteFilter) ([]*webchat.Site, error) {
	return s.FindSitesFn(ctx, filter)
}

func (s *SiteService) DeleteSite(ctx context.Context, id string) error {
	return s.DeleteSiteFn(ctx, id)
}
