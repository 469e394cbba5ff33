package webchat

import "strings"

// FormatResults formats retrieved chunks for LLM context.
// Each chunk is headed by its source URL for citation.
// Chunks are separated by blank lines.
func FormatResults(results []SearchResult) string {
	if len(results) == 0 {
		return ""
	}

	parts := make([]string, 0, len(results))
	for _, r := range results {
		parts = append(parts, "## Source: "+r.Chunk.SourceURL+"\n"+r.Chunk.Content)
	}

	return strings.Join(parts, "\n\n")
}
