package webchat

import "context"

// Fetcher retrieves HTML content from URLs.
type Fetcher interface {
	// Fetch retrieves the HTML document at url.
	// Non-2xx responses and non-HTML content types are errors.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// LinkExtractor extracts outbound hyperlink targets from an HTML page.
type LinkExtractor interface {
	// ExtractLinks parses HTML and returns the href targets of anchor
	// elements, resolved against baseURL. Non-http(s) schemes are
	// skipped; fragments are stripped. Order follows document order
	// with duplicates removed.
	ExtractLinks(html string, baseURL string) ([]string, error)
}
