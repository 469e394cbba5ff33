package crawl_test

import (
	"fmt"
	"testing"

	"github.com/imsaksham-c/webchat/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontier(t *testing.T) {
	t.Parallel()

	t.Run("pops entries in push order", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(100, 0.01)
		f.Push("https://example.com/a", 0)
		f.Push("https://example.com/b", 1)
		f.Push("https://example.com/c", 1)

		entry, ok := f.Pop()
		require.True(t, ok)
		assert.Equal(t, crawl.Entry{URL: "https://example.com/a", Depth: 0}, entry)

		entry, ok = f.Pop()
		require.True(t, ok)
		assert.Equal(t, crawl.Entry{URL: "https://example.com/b", Depth: 1}, entry)

		entry, ok = f.Pop()
		require.True(t, ok)
		assert.Equal(t, crawl.Entry{URL: "https://example.com/c", Depth: 1}, entry)

		_, ok = f.Pop()
		assert.False(t, ok)
	})

	t.Run("rejects duplicate pushes", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(100, 0.01)
		assert.True(t, f.Push("https://example.com/a", 0))
		assert.False(t, f.Push("https://example.com/a", 2))
		assert.Equal(t, 1, f.Len())
	})

	t.Run("remembers popped URLs", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(100, 0.01)
		f.Push("https://example.com/a", 0)
		_, ok := f.Pop()
		require.True(t, ok)

		assert.True(t, f.Seen("https://example.com/a"))
		assert.False(t, f.Push("https://example.com/a", 1))
	})

	t.Run("tracks queue length", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(1000, 0.01)
		for i := 0; i < 10; i++ {
			f.Push(fmt.Sprintf("https://example.com/%d", i), 1)
		}
		assert.Equal(t, 10, f.Len())

		f.Pop()
		assert.Equal(t, 9, f.Len())
	})
}
