package main

import (
	"context"
	"io"

	"github.com/imsaksham-c/webchat"
	"github.com/imsaksham-c/webchat/chat"
	"github.com/imsaksham-c/webchat/crawl"
	"github.com/imsaksham-c/webchat/index"
	"github.com/imsaksham-c/webchat/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Stdin    io.Reader
	DB       *sqlite.DB
	Sites    webchat.SiteService
	Pages    webchat.PageService
	Chunks   webchat.ChunkService
	Search   webchat.SearchService
	Sessions webchat.SessionService
	Crawler  *crawl.Crawler
	Pipeline *index.Pipeline
	Engine   *chat.Engine
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug bool `help:"Enable debug logging to stderr"`

	Index  IndexCmd  `cmd:"" help:"Crawl and index a website for chat"`
	Chat   ChatCmd   `cmd:"" help:"Chat interactively about an indexed site"`
	Ask    AskCmd    `cmd:"" help:"Ask a single question about an indexed site"`
	List   ListCmd   `cmd:"" help:"List all indexed sites"`
	Pages  PagesCmd  `cmd:"" help:"List indexed pages for a site"`
	Delete DeleteCmd `cmd:"" help:"Delete a site and its index"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Name        string `arg:"" help:"Site name"`
	URL         string `arg:"" help:"Website URL to crawl"`
	Depth       int    `short:"d" default:"1" help:"Maximum scraping depth in link hops from the URL (1-5)"`
	Preview     bool   `short:"p" help:"Show discovered URLs without indexing"`
	Force       bool   `short:"f" help:"Delete existing site first"`
	Concurrency int    `short:"c" default:"10" help:"Concurrent fetch limit for indexing"`
}

// ChatCmd is the "chat" subcommand.
type ChatCmd struct {
	Name string `arg:"" help:"Site name"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Name     string `arg:"" help:"Site name"`
	Question string `arg:"" help:"Question to ask about the site"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// PagesCmd is the "pages" subcommand.
type PagesCmd struct {
	Name string `arg:"" help:"Site name"`
	Full bool   `help:"Show full page content"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Site name"`
	Force bool   `help:"Confirm deletion"`
}

// findSiteByName resolves a site name to a site, with a friendly error.
func findSiteByName(deps *Dependencies, name string) (*webchat.Site, error) {
	sites, err := deps.Sites.FindSites(deps.Ctx, webchat.SiteFilter{Name: &name})
	if err != nil {
		return nil, err
	}
	if len(sites) == 0 {
		return nil, webchat.Errorf(webchat.ENOTFOUND, "site %q not found", name)
	}
	return sites[0], nil
}
