// Package chunker splits document text into overlapping fixed-size
// pieces. Embedding models have bounded input sizes, so long documents
// are embedded chunk by chunk.
package chunker

// DefaultSize is the default number of characters per chunk.
const DefaultSize = 1000

// DefaultOverlap is the default number of overlapping characters.
const DefaultOverlap = 200

// Chunker splits text into fixed-size chunks.
type Chunker struct {
	size    int
	overlap int
}

// Option configures a Chunker.
type Option func(*Chunker)

// WithSize sets the chunk size in characters.
func WithSize(size int) Option {
	return func(c *Chunker) {
		if size > 0 {
			c.size = size
		}
	}
}

// WithOverlap sets the overlap between chunks in characters.
func WithOverlap(overlap int) Option {
	return func(c *Chunker) {
		if overlap >= 0 {
			c.overlap = overlap
		}
	}
}

// New creates a Chunker with the given options.
func New(opts ...Option) *Chunker {
	c := &Chunker{
		size:    DefaultSize,
		overlap: DefaultOverlap,
	}

	for _, opt := range opts {
		opt(c)
	}

	// Overlap must leave room for the window to advance.
	if c.overlap >= c.size {
		c.overlap = c.size / 4
	}

	return c
}

// Split breaks text into chunks of at most the configured size, each
// overlapping the previous one. Empty text produces no chunks.
func (c *Chunker) Split(text string) []string {
	if text == "" {
		return nil
	}

	textLen := len(text)
	step := c.size - c.overlap

	chunks := make([]string, 0, textLen/step+1)

	for start := 0; start < textLen; start += step {
		end := start + c.size
		if end > textLen {
			end = textLen
		}

		chunks = append(chunks, text[start:end])

		if end == textLen {
			break
		}
	}

	return chunks
}
