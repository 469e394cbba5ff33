// Package slog provides logging decorators for webchat services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/imsaksham-c/webchat"
)

// Ensure Fetcher implements webchat.Fetcher.
var _ webchat.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a webchat.Fetcher with debug logging of fetch outcomes.
type Fetcher struct {
	next   webchat.Fetcher
	logger *slog.Logger
}

// NewFetcher creates a new logging Fetcher.
func NewFetcher(next webchat.Fetcher, logger *slog.Logger) *Fetcher {
	return &Fetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the result.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Warn("fetch failed",
			"url", url,
			"duration", time.Since(begin),
			"error", err,
		)
		return "", err
	}
	f.logger.Debug("fetch",
		"url", url,
		"bytes", len(html),
		"duration", time.Since(begin),
	)
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}
