package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStoreUnavailable indicates the vector store could not be reached
	// within the retry budget. An indexing run aborts without touching state.
	ErrStoreUnavailable = errors.New("vector store unavailable")

	// ErrEmbeddingUnavailable indicates the embedding provider failed to
	// load or run. Fatal for the operation that invoked it; callers decide
	// whether to retry.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrLLMUnreachable indicates the LLM transport could not connect.
	ErrLLMUnreachable = errors.New("cannot connect to LLM service")

	// ErrLLMTimeout indicates the LLM did not respond within the deadline.
	ErrLLMTimeout = errors.New("LLM request timed out")

	// ErrNoDocumentsIndexed indicates a query ran against an empty store.
	// This is a valid terminal state, not a failure.
	ErrNoDocumentsIndexed = errors.New("no documents indexed")

	// ErrDimensionMismatch indicates a vector's length does not match the
	// store's configured dimensionality. This is a configuration fault.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)

// LLMServiceError indicates the LLM service responded with a non-success
// status. Recoverable from the caller's perspective: surfaced as a readable
// message, never a crash.
type LLMServiceError struct {
	// Status is the HTTP status code returned by the service.
	Status int
}

// Error implements the error interface.
func (e *LLMServiceError) Error() string {
	return fmt.Sprintf("LLM service returned status %d", e.Status)
}

// FileFailure records a per-file indexing failure. Per-file failures are
// isolated: they are collected into the IndexReport and do not abort the run.
type FileFailure struct {
	// Filename is the file that failed.
	Filename string

	// Err is the underlying failure.
	Err error
}

// Error implements the error interface.
func (f *FileFailure) Error() string {
	return fmt.Sprintf("processing %s: %v", f.Filename, f.Err)
}

// Unwrap returns the underlying error for errors.Is/As.
func (f *FileFailure) Unwrap() error {
	return f.Err
}
