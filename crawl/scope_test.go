package crawl_test

import (
	"testing"

	"github.com/imsaksham-c/webchat/crawl"
	"github.com/stretchr/testify/assert"
)

func TestInScope(t *testing.T) {
	t.Parallel()

	t.Run("accepts same-host URLs", func(t *testing.T) {
		t.Parallel()

		assert.True(t, crawl.InScope("example.com", "https://example.com/docs"))
		assert.True(t, crawl.InScope("example.com", "http://example.com/"))
	})

	t.Run("rejects other hosts and subdomains", func(t *testing.T) {
		t.Parallel()

		assert.False(t, crawl.InScope("example.com", "https://other.com/docs"))
		assert.False(t, crawl.InScope("example.com", "https://sub.example.com/docs"))
		assert.False(t, crawl.InScope("example.com", "https://example.com.evil.com/"))
	})

	t.Run("rejects non-document resources by extension", func(t *testing.T) {
		t.Parallel()

		for _, candidate := range []string{
			"https://example.com/logo.png",
			"https://example.com/theme.css",
			"https://example.com/app.js",
			"https://example.com/manual.pdf",
			"https://example.com/ARCHIVE.ZIP",
		} {
			assert.False(t, crawl.InScope("example.com", candidate), candidate)
		}
	})

	t.Run("accepts document-like paths", func(t *testing.T) {
		t.Parallel()

		assert.True(t, crawl.InScope("example.com", "https://example.com/guide.html"))
		assert.True(t, crawl.InScope("example.com", "https://example.com/api/v1.2"))
		assert.True(t, crawl.InScope("example.com", "https://example.com/docs/"))
	})
}
