package main

import (
	"fmt"

	"github.com/imsaksham-c/webchat"
	"github.com/imsaksham-c/webchat/crawl"
	"github.com/imsaksham-c/webchat/index"
)

// maxIndexDepth caps how many link hops from the seed are followed.
const maxIndexDepth = 5

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	if c.Depth < 1 || c.Depth > maxIndexDepth {
		fmt.Fprintf(deps.Stderr, "error: depth must be between 1 and %d\n", maxIndexDepth)
		return webchat.Errorf(webchat.EINVALID, "depth must be between 1 and %d", maxIndexDepth)
	}

	// Preview mode: show discovered URLs without indexing
	if c.Preview {
		result, err := deps.Crawler.Crawl(deps.Ctx, c.URL, c.Depth, nil)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", webchat.ErrorMessage(err))
			return err
		}
		for _, u := range result.URLs {
			fmt.Fprintln(deps.Stdout, u)
		}
		return nil
	}

	// Force mode: delete existing site first
	if c.Force {
		existing, err := deps.Sites.FindSites(deps.Ctx, webchat.SiteFilter{Name: &c.Name})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", webchat.ErrorMessage(err))
			return err
		}
		if len(existing) > 0 {
			if err := deps.Sites.DeleteSite(deps.Ctx, existing[0].ID); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", webchat.ErrorMessage(err))
				return err
			}
		}
	}

	site := &webchat.Site{
		Name:     c.Name,
		SeedURL:  c.URL,
		MaxDepth: c.Depth,
	}

	if err := deps.Sites.CreateSite(deps.Ctx, site); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webchat.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added site %q (%s)\n", c.Name, site.ID)

	// Discover pages
	crawlProgress := func(event crawl.ProgressEvent) {
		if event.Type == crawl.ProgressFailed {
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		}
	}

	crawlResult, err := deps.Crawler.Crawl(deps.Ctx, c.URL, c.Depth, crawlProgress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error crawling: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Found %d pages\n", len(crawlResult.URLs))
	if len(crawlResult.URLs) == 0 {
		fmt.Fprintln(deps.Stdout, "  No pages discovered")
		return nil
	}

	// Index them
	indexProgress := func(event index.ProgressEvent) {
		if event.Type == index.ProgressFailed {
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		}
	}

	result, err := deps.Pipeline.IndexSite(deps.Ctx, site, crawlResult.URLs, indexProgress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error indexing: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Indexed %d pages, %d chunks (%s, %s)\n",
		result.Saved, result.Chunks, index.FormatBytes(result.Bytes), index.FormatTokens(result.Tokens))

	return nil
}
