package mock

import (
	"context"

	"github.com/imsaksham-c/webchat"
)

var _ webchat.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of webchat.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ webchat.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of webchat.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]string, error) {
	return e.ExtractLinksFn(html, baseURL)
}
