// Package index provides the pipeline that turns crawled URLs into a
// queryable store: fetch, extract, convert to markdown, chunk, embed,
// persist.
package index

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/imsaksham-c/webchat"
	"github.com/imsaksham-c/webchat/crawl"
	"golang.org/x/sync/errgroup"
)

// defaultEmbedBatchSize bounds the number of chunks sent to the
// embedder in one request.
const defaultEmbedBatchSize = 64

// Pipeline indexes a site's pages. Fetcher, Extractor, Converter,
// Embedder, Pages and Chunks must be set; the rest are optional.
type Pipeline struct {
	Fetcher      webchat.Fetcher
	Extractor    webchat.Extractor
	Converter    webchat.Converter
	Embedder     webchat.Embedder
	Pages        webchat.PageService
	Chunks       webchat.ChunkService
	TokenCounter webchat.TokenCounter
	Splitter     *Splitter
	Concurrency  int
	RetryDelays  []time.Duration
	EmbedBatch   int
}

// Result holds the outcome of an indexing run.
type Result struct {
	Saved  int
	Failed int
	Chunks int
	Bytes  int
	Tokens int
}

// ProgressEvent reports progress during an indexing run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting indexing progress.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of processing a single URL.
type pageResult struct {
	position int
	url      string
	title    string
	markdown string
	err      error
}

// IndexSite fetches, converts, chunks, embeds, and persists the given
// URLs for a site. URLs are processed concurrently; pages are saved in
// input order. A failed URL is skipped and counted, never fatal.
func (p *Pipeline) IndexSite(ctx context.Context, site *webchat.Site, urls []string, progress ProgressFunc) (*Result, error) {
	if len(urls) == 0 {
		return &Result{}, nil
	}

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	resultCh := make(chan pageResult, len(urls))

	var completed atomic.Int64
	total := len(urls)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, url := range urls {
			g.Go(func() error {
				resultCh <- p.processURL(gctx, i, url)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in input order.
	results := make([]pageResult, len(urls))
	var result Result
	for pr := range resultCh {
		completed.Add(1)
		results[pr.position] = pr

		if progress == nil {
			continue
		}
		if pr.err != nil {
			progress(ProgressEvent{
				Type:      ProgressFailed,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       pr.url,
				Error:     pr.err,
			})
		} else {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       pr.url,
			})
		}
	}

	// Persist pages and chunks sequentially. SQLite has a single
	// writer anyway, and order makes positions deterministic.
	for _, pr := range results {
		if pr.err != nil {
			result.Failed++
			continue
		}

		if err := p.savePage(ctx, site, &pr, &result); err != nil {
			result.Failed++
			continue
		}

		result.Saved++
		result.Bytes += len(pr.markdown)
		if p.TokenCounter != nil {
			if tokens, err := p.TokenCounter.CountTokens(ctx, pr.markdown); err == nil {
				result.Tokens += tokens
			}
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return &result, nil
}

// processURL fetches and converts a single URL to markdown.
func (p *Pipeline) processURL(ctx context.Context, position int, url string) pageResult {
	result := pageResult{
		position: position,
		url:      url,
	}

	delays := p.RetryDelays
	if delays == nil {
		delays = crawl.DefaultRetryDelays()
	}

	html, err := crawl.FetchWithRetryDelays(ctx, url, p.Fetcher.Fetch, nil, delays)
	if err != nil {
		result.err = err
		return result
	}

	extracted, err := p.Extractor.Extract(html)
	if err != nil {
		result.err = err
		return result
	}

	markdown, err := p.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		result.err = err
		return result
	}

	result.title = extracted.Title
	result.markdown = markdown
	return result
}

// savePage persists one page and its embedded chunks.
func (p *Pipeline) savePage(ctx context.Context, site *webchat.Site, pr *pageResult, result *Result) error {
	page := &webchat.Page{
		SiteID:    site.ID,
		SourceURL: pr.url,
		Title:     pr.title,
		Content:   pr.markdown,
		Position:  pr.position,
	}
	if err := p.Pages.CreatePage(ctx, page); err != nil {
		return err
	}

	splitter := p.Splitter
	if splitter == nil {
		splitter = NewSplitter()
	}
	texts := splitter.Split(pr.markdown)
	if len(texts) == 0 {
		return nil
	}

	batchSize := p.EmbedBatch
	if batchSize <= 0 {
		batchSize = defaultEmbedBatchSize
	}

	position := 0
	for start := 0; start < len(texts); start += batchSize {
		end := start + batchSize
		if end > len(texts) {
			end = len(texts)
		}
		batch := texts[start:end]

		vectors, err := p.Embedder.EmbedTexts(ctx, batch)
		if err != nil {
			return err
		}

		chunks := make([]*webchat.Chunk, 0, len(batch))
		for i, text := range batch {
			chunks = append(chunks, &webchat.Chunk{
				PageID:    page.ID,
				SiteID:    site.ID,
				Content:   text,
				Embedding: vectors[i],
				Position:  position,
				SourceURL: pr.url,
			})
			position++
		}

		if err := p.Chunks.CreateChunks(ctx, chunks); err != nil {
			return err
		}
		result.Chunks += len(chunks)
	}

	return nil
}
