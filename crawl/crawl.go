// Package crawl provides depth-bounded discovery of a website's pages.
// Starting from a seed URL it follows same-host links breadth-first up
// to a maximum number of hops, returning the deduplicated set of URLs
// in discovery order.
package crawl

import (
	"context"
	"net/url"
	"time"

	"github.com/imsaksham-c/webchat"
)

// Frontier sizing for the Bloom filter deduplication.
const (
	frontierExpectedURLs      = 10000
	frontierFalsePositiveRate = 0.01

	// defaultMaxURLs limits the number of URLs visited to prevent
	// runaway crawls on very large sites.
	defaultMaxURLs = 1000
)

// Crawler discovers a site's pages by following links from a seed URL.
// Fetcher and Links must be set; Limiter, RetryDelays and MaxURLs are
// optional.
type Crawler struct {
	Fetcher     webchat.Fetcher
	Links       webchat.LinkExtractor
	Limiter     *DomainLimiter
	RetryDelays []time.Duration
	MaxURLs     int
}

// Result holds the outcome of a crawl.
type Result struct {
	// URLs are the discovered in-scope URLs in discovery order,
	// seed first, each at most once, all within MaxDepth hops of
	// the seed.
	URLs []string

	// Failed counts pages whose fetch failed. Their children were
	// not discovered; the pages themselves remain in URLs unless
	// the seed itself was unreachable.
	Failed int
}

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type  ProgressType
	URL   string
	Count int // URLs discovered so far
	Error error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressVisited ProgressType = iota
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Crawl performs a breadth-first, depth-bounded traversal from seedURL.
// The seed is depth 0; pages at exactly maxDepth are kept in the result
// but not fetched for further links. Each URL is visited at most once,
// so cyclic link graphs terminate. A page whose fetch fails stays in
// the result but contributes no children; an unreachable seed yields an
// empty result and no error.
func (c *Crawler) Crawl(ctx context.Context, seedURL string, maxDepth int, progress ProgressFunc) (*Result, error) {
	if maxDepth < 1 {
		return nil, webchat.Errorf(webchat.EINVALID, "max depth must be at least 1")
	}

	seed, err := url.Parse(seedURL)
	if err != nil {
		return nil, webchat.Errorf(webchat.EINVALID, "invalid seed URL: %v", err)
	}
	normSeed, ok := Normalize(nil, seedURL)
	if !ok {
		return nil, webchat.Errorf(webchat.EINVALID, "seed URL must be http or https")
	}
	seedHost := seed.Host

	maxURLs := c.MaxURLs
	if maxURLs <= 0 {
		maxURLs = defaultMaxURLs
	}
	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(normSeed, 0)

	var result Result

	for {
		entry, ok := frontier.Pop()
		if !ok {
			break
		}
		if len(result.URLs) >= maxURLs {
			break
		}
		if ctx.Err() != nil {
			break
		}

		// Pages at the depth bound are kept without fetching:
		// their links would exceed maxDepth anyway.
		if entry.Depth == maxDepth {
			result.URLs = append(result.URLs, entry.URL)
			if progress != nil {
				progress(ProgressEvent{Type: ProgressVisited, URL: entry.URL, Count: len(result.URLs)})
			}
			continue
		}

		if c.Limiter != nil {
			entryURL, err := url.Parse(entry.URL)
			if err != nil {
				continue
			}
			if err := c.Limiter.Wait(ctx, entryURL.Host); err != nil {
				break // context canceled
			}
		}

		html, err := FetchWithRetryDelays(ctx, entry.URL, c.Fetcher.Fetch, nil, delays)
		if err != nil {
			result.Failed++
			// The seed was never discovered through a link; if it
			// is unreachable the crawl found nothing.
			if entry.Depth > 0 {
				result.URLs = append(result.URLs, entry.URL)
			}
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, URL: entry.URL, Count: len(result.URLs), Error: err})
			}
			continue
		}

		result.URLs = append(result.URLs, entry.URL)
		if progress != nil {
			progress(ProgressEvent{Type: ProgressVisited, URL: entry.URL, Count: len(result.URLs)})
		}

		links, err := c.Links.ExtractLinks(html, entry.URL)
		if err != nil {
			continue
		}

		base, err := url.Parse(entry.URL)
		if err != nil {
			continue
		}
		for _, href := range links {
			norm, ok := Normalize(base, href)
			if !ok {
				continue
			}
			if !InScope(seedHost, norm) {
				continue
			}
			frontier.Push(norm, entry.Depth+1)
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Count: len(result.URLs)})
	}

	return &result, nil
}
