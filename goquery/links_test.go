package goquery_test

import (
	"testing"

	"github.com/imsaksham-c/webchat/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkExtractor_ExtractLinks(t *testing.T) {
	t.Parallel()

	extractor := goquery.NewLinkExtractor()

	t.Run("extracts and resolves anchors in document order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="/docs">Docs</a>
			<a href="about">About</a>
			<a href="https://other.com/page">External</a>
		</body></html>`

		links, err := extractor.ExtractLinks(html, "https://example.com/guide/")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/docs",
			"https://example.com/guide/about",
			"https://other.com/page",
		}, links)
	})

	t.Run("deduplicates repeated targets", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="/docs">Docs</a>
			<a href="/docs">Documentation</a>
			<a href="/docs#section">Section</a>
		</body></html>`

		links, err := extractor.ExtractLinks(html, "https://example.com/")
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/docs"}, links)
	})

	t.Run("skips non-HTTP links", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="javascript:void(0)">JS</a>
			<a href="mailto:team@example.com">Mail</a>
			<a href="tel:+123456">Call</a>
			<a href="data:text/plain,hi">Data</a>
			<a href="/real">Real</a>
		</body></html>`

		links, err := extractor.ExtractLinks(html, "https://example.com/")
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/real"}, links)
	})

	t.Run("skips self-referential anchor links", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="#top">Top</a>
			<a href="https://example.com/page#section">Same page</a>
			<a href="/other">Other</a>
		</body></html>`

		links, err := extractor.ExtractLinks(html, "https://example.com/page")
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/other"}, links)
	})

	t.Run("returns no links for anchor-free HTML", func(t *testing.T) {
		t.Parallel()

		links, err := extractor.ExtractLinks("<html><body><p>No links here.</p></body></html>", "https://example.com/")
		require.NoError(t, err)
		assert.Empty(t, links)
	})

	t.Run("skips empty hrefs", func(t *testing.T) {
		t.Parallel()

		links, err := extractor.ExtractLinks(`<a href="">Empty</a><a href="/x">X</a>`, "https://example.com/")
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/x"}, links)
	})
}
