package crawl_test

import (
	"net/url"
	"testing"

	"github.com/imsaksham-c/webchat/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	base, err := url.Parse("https://example.com/docs/guide")
	require.NoError(t, err)

	t.Run("resolves relative references against the base", func(t *testing.T) {
		t.Parallel()

		norm, ok := crawl.Normalize(base, "../api")
		require.True(t, ok)
		assert.Equal(t, "https://example.com/api", norm)

		norm, ok = crawl.Normalize(base, "intro")
		require.True(t, ok)
		assert.Equal(t, "https://example.com/docs/intro", norm)

		norm, ok = crawl.Normalize(base, "/about")
		require.True(t, ok)
		assert.Equal(t, "https://example.com/about", norm)
	})

	t.Run("strips fragments", func(t *testing.T) {
		t.Parallel()

		norm, ok := crawl.Normalize(base, "https://example.com/page#section")
		require.True(t, ok)
		assert.Equal(t, "https://example.com/page", norm)
	})

	t.Run("lowercases scheme and host", func(t *testing.T) {
		t.Parallel()

		norm, ok := crawl.Normalize(nil, "HTTPS://Example.COM/Path")
		require.True(t, ok)
		assert.Equal(t, "https://example.com/Path", norm)
	})

	t.Run("gives bare-host URLs the root path", func(t *testing.T) {
		t.Parallel()

		norm, ok := crawl.Normalize(nil, "https://example.com")
		require.True(t, ok)
		assert.Equal(t, "https://example.com/", norm)

		// A bare host and a root link canonicalize identically.
		rootBase, err := url.Parse("https://example.com")
		require.NoError(t, err)
		fromLink, ok := crawl.Normalize(rootBase, "/")
		require.True(t, ok)
		assert.Equal(t, norm, fromLink)
	})

	t.Run("rejects non-http schemes", func(t *testing.T) {
		t.Parallel()

		for _, href := range []string{
			"mailto:info@example.com",
			"javascript:void(0)",
			"tel:+1234567890",
			"ftp://example.com/file",
		} {
			_, ok := crawl.Normalize(base, href)
			assert.False(t, ok, href)
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		hrefs := []string{
			"../api#usage",
			"/About Us",
			"HTTP://EXAMPLE.com/a/b?q=1#frag",
			"relative/path",
		}
		for _, href := range hrefs {
			first, ok := crawl.Normalize(base, href)
			require.True(t, ok, href)
			second, ok := crawl.Normalize(nil, first)
			require.True(t, ok, href)
			assert.Equal(t, first, second, href)
		}
	})

	t.Run("rejects malformed URLs", func(t *testing.T) {
		t.Parallel()

		_, ok := crawl.Normalize(base, "http://exa mple.com/%zz")
		assert.False(t, ok)
	})
}
