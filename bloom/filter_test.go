package bloom_test

import (
	"fmt"
	"testing"

	"github.com/imsaksham-c/webchat/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	t.Run("added URLs always test positive", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.01)
		urls := []string{
			"https://example.com/",
			"https://example.com/docs",
			"https://example.com/about",
		}
		for _, url := range urls {
			f.Add(url)
		}
		for _, url := range urls {
			assert.True(t, f.Test(url), url)
		}
	})

	t.Run("unseen URLs mostly test negative", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(10000, 0.01)
		for i := 0; i < 1000; i++ {
			f.Add(fmt.Sprintf("https://example.com/page-%d", i))
		}

		falsePositives := 0
		for i := 0; i < 1000; i++ {
			if f.Test(fmt.Sprintf("https://example.com/other-%d", i)) {
				falsePositives++
			}
		}
		// Sized for a 1% rate; 5% leaves generous slack.
		assert.Less(t, falsePositives, 50)
	})

	t.Run("estimates the item count", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.01)
		for i := 0; i < 100; i++ {
			f.Add(fmt.Sprintf("https://example.com/page-%d", i))
		}
		assert.InDelta(t, 100, float64(f.EstimatedCount()), 10)
	})
}
