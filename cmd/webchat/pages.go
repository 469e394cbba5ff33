package main

import (
	"fmt"

	"github.com/imsaksham-c/webchat"
)

// Run executes the pages command.
func (c *PagesCmd) Run(deps *Dependencies) error {
	site, err := findSiteByName(deps, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s. Use 'webchat list' to see available sites.\n", webchat.ErrorMessage(err))
		return err
	}

	pages, err := deps.Pages.FindPages(deps.Ctx, webchat.PageFilter{
		SiteID: &site.ID,
		SortBy: webchat.SortByPosition,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webchat.ErrorMessage(err))
		return err
	}

	if len(pages) == 0 {
		fmt.Fprintf(deps.Stderr, "error: site %q has no pages. To re-index, first run 'webchat delete %s --force', then 'webchat index %s <url>'.\n", c.Name, c.Name, c.Name)
		return webchat.Errorf(webchat.ENOTFOUND, "site %q has no pages", c.Name)
	}

	if c.Full {
		for _, page := range pages {
			header := page.Title
			if header == "" {
				header = page.SourceURL
			}
			fmt.Fprintf(deps.Stdout, "## Page: %s\n%s\n\n", header, page.Content)
		}
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Pages for %s (%d total):\n\n", c.Name, len(pages))
	for i, page := range pages {
		title := page.Title
		if title == "" {
			title = page.SourceURL
		}
		fmt.Fprintf(deps.Stdout, "  %d. %s\n     %s\n", i+1, title, page.SourceURL)
	}

	return nil
}
