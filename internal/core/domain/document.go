package domain

// Document represents a source text file discovered in the corpus.
// It is immutable once read: the indexer consumes it, chunks it, and
// discards it. Filename is unique within a corpus.
type Document struct {
	// Filename is the base name of the source file.
	Filename string

	// Path is the absolute location the content was read from.
	Path string

	// Content is the full decoded text of the file.
	Content string
}

// EmbeddingRecord is the unit stored in the vector store: one chunk of
// one document together with its embedding vector. Records are owned
// by the store once inserted and are replaced wholesale on reindex.
type EmbeddingRecord struct {
	// ID is the globally unique record identifier.
	ID string

	// Filename is the source document the chunk came from.
	Filename string

	// ChunkIndex is the 0-based position of the chunk within its source.
	// Indexes for a given source are dense and increasing in document order.
	ChunkIndex int

	// Content is the chunk text.
	Content string

	// Embedding is the fixed-length vector for the chunk. Its length must
	// match the dimensionality of the embedding model used for queries.
	Embedding []float32
}

// RetrievedChunk is a single nearest-neighbour hit for a query vector.
type RetrievedChunk struct {
	// Content is the chunk text.
	Content string

	// Filename is the source document of the chunk.
	Filename string

	// ChunkIndex is the chunk's position within its source document.
	ChunkIndex int

	// Distance is the cosine distance to the query vector (lower is closer).
	Distance float64
}
