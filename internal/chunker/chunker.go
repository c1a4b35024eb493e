// Package chunker provides a fixed-size overlapping word-window chunker.
package chunker

import "strings"

// DefaultChunkSize is the default number of words per chunk.
const DefaultChunkSize = 500

// DefaultOverlap is the default number of overlapping words between
// consecutive chunks.
const DefaultOverlap = 50

// Processor splits document text into overlapping word windows.
type Processor struct {
	chunkSize int
	overlap   int
}

// Option configures the chunker processor.
type Option func(*Processor)

// WithChunkSize sets the chunk size in words.
func WithChunkSize(size int) Option {
	return func(p *Processor) {
		if size > 0 {
			p.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between chunks in words.
func WithOverlap(overlap int) Option {
	return func(p *Processor) {
		if overlap > 0 {
			p.overlap = overlap
		}
	}
}

// New creates a new chunker processor with the given options.
func New(opts ...Option) *Processor {
	p := &Processor{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultOverlap,
	}

	for _, opt := range opts {
		opt(p)
	}

	// Overlap must stay strictly below chunk size or the window never advances.
	if p.overlap >= p.chunkSize {
		p.overlap = p.chunkSize / 4
	}

	return p
}

// ChunkSize returns the configured window size in words.
func (p *Processor) ChunkSize() int {
	return p.chunkSize
}

// Overlap returns the configured overlap in words.
func (p *Processor) Overlap() int {
	return p.overlap
}

// Split divides text into overlapping word windows.
//
// The text is split into words on whitespace and a window of chunkSize
// words slides across with stride chunkSize-overlap, starting at offset 0.
// The window that reaches the last word is the final chunk; no shorter
// trailing window is emitted after it. Each window is joined by single
// spaces. Text with
// fewer words than the window yields exactly one chunk; empty or
// whitespace-only text yields none.
//
// Split is pure and deterministic: identical input always yields identical
// output, which makes reindexing idempotent.
func (p *Processor) Split(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	stride := p.chunkSize - p.overlap
	estimated := (len(words) / stride) + 1
	chunks := make([]string, 0, estimated)

	for start := 0; start < len(words); start += stride {
		end := start + p.chunkSize
		if end >= len(words) {
			chunks = append(chunks, strings.Join(words[start:], " "))
			break
		}
		chunks = append(chunks, strings.Join(words[start:end], " "))
	}

	return chunks
}
