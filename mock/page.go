package mock

import (
	"context"

	"github.com/imsaksham-c/webchat"
)

var _ webchat.PageService = (*PageService)(nil)

// PageService is a mock implementation of webchat.PageService.
type PageService struct {
	CreatePageFn        func(ctx context.Context, page *webchat.Page) error
	FindPageByIDFn      func(ctx context.Context, id string) (*webchat.Page, error)
	FindPagesFn         func(ctx context.Context, filter webchat.PageFilter) ([]*webchat.Page, error)
	DeletePageFn        func(ctx context.Context, id string) error
	DeletePagesBySiteFn func(ctx context.Context, siteID string) error
}

func (s *PageService) CreatePage(ctx context.Context, page *webchat.Page) error {
	return s.CreatePageFn(ctx, page)
}

func (s *PageService) FindPageByID(ctx context.Context, id string) (*webchat.Page, error) {
	return s.FindPageByIDFn(ctx, id)
}

func (s *PageService) FindPages(ctx context.Context, filter webchat.PageFilter) ([]*webchat.Page, error) {
	return s.FindPagesFn(ctx, filter)
}

func (s *PageService) DeletePage(ctx context.Context, id string) error {
	return s.DeletePageFn(ctx, id)
}

func (s *PageService) DeletePagesBySite(ctx context.Context, siteID string) error {
	return s.DeletePagesBySiteFn(ctx, siteID)
}
