package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/imsaksham-c/webchat"
	"github.com/imsaksham-c/webchat/chat"
	"github.com/imsaksham-c/webchat/crawl"
	"github.com/imsaksham-c/webchat/gemini"
	"github.com/imsaksham-c/webchat/goquery"
	"github.com/imsaksham-c/webchat/htmltomarkdown"
	wchttp "github.com/imsaksham-c/webchat/http"
	"github.com/imsaksham-c/webchat/index"
	wcslog "github.com/imsaksham-c/webchat/slog"
	"github.com/imsaksham-c/webchat/sqlite"
	"github.com/imsaksham-c/webchat/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	SiteService webchat.SiteService
	PageService webchat.PageService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("webchat"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'webchat --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set WEBCHAT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.SiteService = sqlite.NewSiteService(m.DB)
	m.PageService = sqlite.NewPageService(m.DB)
	chunkService := sqlite.NewChunkService(m.DB)
	deps.DB = m.DB
	deps.Sites = m.SiteService
	deps.Pages = m.PageService
	deps.Chunks = chunkService
	deps.Sessions = chat.NewSessionService()

	var fetcher webchat.Fetcher = wchttp.NewFetcher()
	defer fetcher.Close()

	if cli.Debug {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		fetcher = wcslog.NewFetcher(fetcher, logger)
	}

	// Crawling needs no API key; 1 request per second per domain.
	deps.Crawler = &crawl.Crawler{
		Fetcher: fetcher,
		Links:   goquery.NewLinkExtractor(),
		Limiter: crawl.NewDomainLimiter(1.0),
	}

	// Indexing and answering talk to the Gemini API.
	if needsGemini(cmd, cli) {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		embedder := gemini.NewEmbedder(client, "")
		responder := gemini.NewResponder(client, "")
		deps.Search = sqlite.NewSearchService(chunkService, embedder)

		if cmd == "index" {
			tokenCounter, err := gemini.NewTokenCounter(tokenizerModel)
			if err != nil {
				return fmt.Errorf("failed to create token counter: %w", err)
			}

			deps.Pipeline = &index.Pipeline{
				Fetcher:      fetcher,
				Extractor:    trafilatura.NewExtractor(),
				Converter:    htmltomarkdown.NewConverter(),
				Embedder:     embedder,
				Pages:        m.PageService,
				Chunks:       chunkService,
				TokenCounter: tokenCounter,
				Concurrency:  cli.Index.Concurrency,
			}
		}

		deps.Engine = &chat.Engine{
			Search:    deps.Search,
			Responder: responder,
			Sessions:  deps.Sessions,
		}
	}

	return kongCtx.Run(deps)
}

// needsGemini reports whether the command requires a Gemini API client.
// Preview-mode indexing only crawls, so it stays key-free.
func needsGemini(cmd string, cli *CLI) bool {
	switch cmd {
	case "index":
		return !cli.Index.Preview
	case "ask", "chat":
		return true
	}
	return false
}

// tokenizerModel is used for token counting in indexing stats.
const tokenizerModel = "gemini-2.5-flash"

func defaultDBPath() string {
	if path := os.Getenv("WEBCHAT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "webchat.db"
	}
	dir := filepath.Join(home, ".webchat")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "webchat.db")
}
