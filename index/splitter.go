package index

import "strings"

// Splitter defaults, matching common retrieval pipeline settings.
const (
	DefaultChunkSize    = 4000
	DefaultChunkOverlap = 200
)

// separators are tried in order: paragraph breaks first, then lines,
// then words, then a hard character split as the last resort.
var separators = []string{"\n\n", "\n", " "}

// Splitter divides markdown into overlapping chunks bounded by
// ChunkSize characters. It prefers splitting at paragraph boundaries
// and degrades to line, word, and finally fixed-width splits for
// oversized pieces.
type Splitter struct {
	ChunkSize    int
	ChunkOverlap int
}

// NewSplitter creates a Splitter with the default size and overlap.
func NewSplitter() *Splitter {
	return &Splitter{
		ChunkSize:    DefaultChunkSize,
		ChunkOverlap: DefaultChunkOverlap,
	}
}

// Split divides text into chunks of at most ChunkSize characters.
// Consecutive chunks overlap by roughly ChunkOverlap characters so
// context at chunk boundaries is not lost. Empty and whitespace-only
// chunks are dropped.
func (s *Splitter) Split(text string) []string {
	size := s.ChunkSize
	if size <= 0 {
		size = DefaultChunkSize
	}
	overlap := s.ChunkOverlap
	if overlap < 0 || overlap >= size {
		overlap = 0
	}

	var chunks []string
	for _, chunk := range split(text, size, overlap, separators) {
		chunk = strings.TrimSpace(chunk)
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
	}
	return chunks
}

// split recursively divides text using the first separator present,
// merging the pieces back into chunks bounded by size.
func split(text string, size, overlap int, seps []string) []string {
	if len(text) <= size {
		return []string{text}
	}

	if len(seps) == 0 {
		return splitFixed(text, size, overlap)
	}

	sep := seps[0]
	rest := seps[1:]
	if !strings.Contains(text, sep) {
		return split(text, size, overlap, rest)
	}

	parts := strings.Split(text, sep)

	var chunks []string
	var current []string
	curLen := 0
	newSinceFlush := false

	flush := func() {
		if len(current) == 0 || !newSinceFlush {
			return
		}
		newSinceFlush = false
		chunks = append(chunks, strings.Join(current, sep))
		// Retain trailing parts up to the overlap size so the next
		// chunk starts with shared context.
		keep := 0
		keepLen := 0
		for i := len(current) - 1; i >= 0; i-- {
			pieceLen := len(current[i]) + len(sep)
			if keepLen+pieceLen > overlap {
				break
			}
			keep++
			keepLen += pieceLen
		}
		current = current[len(current)-keep:]
		curLen = keepLen
	}

	for _, part := range parts {
		// A single part larger than the chunk size needs a finer split.
		if len(part) > size {
			flush()
			current = nil
			curLen = 0
			chunks = append(chunks, split(part, size, overlap, rest)...)
			continue
		}

		if curLen+len(part)+len(sep) > size && curLen > 0 {
			flush()
		}
		current = append(current, part)
		curLen += len(part) + len(sep)
		newSinceFlush = true
	}
	if newSinceFlush {
		chunks = append(chunks, strings.Join(current, sep))
	}

	return chunks
}

// splitFixed cuts text into fixed-width windows stepping by
// size-overlap. Used only when no separator can break up the text.
func splitFixed(text string, size, overlap int) []string {
	step := size - overlap
	if step <= 0 {
		step = size
	}

	var chunks []string
	for start := 0; start < len(text); start += step {
		end := start + size
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, text[start:end])
		if end == len(text) {
			break
		}
	}
	return chunks
}
