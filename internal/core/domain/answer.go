package domain

// Answer is the result of a question-answering run.
type Answer struct {
	// Text is the generated answer. Empty when NoContext is true.
	Text string

	// Retrieved holds the chunks that grounded the answer, nearest first.
	Retrieved []RetrievedChunk

	// NoContext is true when retrieval returned nothing and the LLM was
	// never called. The caller should tell the user to index documents.
	NoContext bool
}

// IndexReport summarises a reindex run.
type IndexReport struct {
	// FilesProcessed counts files that were chunked, embedded and inserted.
	FilesProcessed int

	// ChunksTotal counts chunks inserted across all processed files.
	ChunksTotal int

	// Failures lists files that were skipped due to read, embedding or
	// insert errors. A non-empty list does not mean the run failed.
	Failures []*FileFailure
}
