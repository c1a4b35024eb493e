// Package filesystem provides a corpus connector that reads documents
// from a local directory tree.
package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arkestra-labs/askdocs-cli/internal/core/domain"
	"github.com/arkestra-labs/askdocs-cli/internal/core/ports/driven"
)

// Ensure Connector implements the interface.
var _ driven.Corpus = (*Connector)(nil)

// Connector discovers supported files under a root directory.
type Connector struct {
	rootPath string
}

// New creates a filesystem connector rooted at rootPath.
func New(rootPath string) *Connector {
	return &Connector{rootPath: rootPath}
}

// Type returns the connector type identifier.
func (c *Connector) Type() string {
	return "filesystem"
}

// RootPath returns the configured corpus root.
func (c *Connector) RootPath() string {
	return c.rootPath
}

// Validate checks the root exists and is a readable directory.
func (c *Connector) Validate(_ context.Context) error {
	info, err := os.Stat(c.rootPath)
	if err != nil {
		return fmt.Errorf("corpus directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("corpus path %s: %w", c.rootPath, domain.ErrInvalidInput)
	}
	return nil
}

// Documents walks the tree recursively and streams every supported file.
// Directories and files with unrecognised extensions are skipped silently.
// Read failures are reported per file on the error channel and do not
// stop discovery.
func (c *Connector) Documents(ctx context.Context) (<-chan domain.Document, <-chan error) {
	docs := make(chan domain.Document)
	errs := make(chan error, 1)

	go func() {
		defer close(docs)
		defer close(errs)

		walkErr := filepath.WalkDir(c.rootPath, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if d.IsDir() || !IsSupported(path) {
				return nil
			}

			content, readErr := os.ReadFile(path)
			if readErr != nil {
				select {
				case errs <- &domain.FileFailure{Filename: d.Name(), Err: readErr}:
				case <-ctx.Done():
					return ctx.Err()
				}
				return nil
			}

			doc := domain.Document{
				Filename: d.Name(),
				Path:     path,
				Content:  string(content),
			}
			select {
			case docs <- doc:
			case <-ctx.Done():
				return ctx.Err()
			}
			return nil
		})

		if walkErr != nil && ctx.Err() == nil {
			errs <- fmt.Errorf("walking %s: %w", c.rootPath, walkErr)
		}
	}()

	return docs, errs
}

// Close releases resources.
func (c *Connector) Close() error {
	// Nothing to release for local filesystem access
	return nil
}
