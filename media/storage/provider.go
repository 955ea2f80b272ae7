package storage

import (
	"context"
	"io"
)

// Provider abstracts where source and output images live.
type Provider interface {
	// Read opens the file at path for reading.
	Read(ctx context.Context, path string) (io.ReadCloser, error)
	// Write persists the contents of r at path, overwriting any existing
	// file, and returns the number of bytes written.
	Write(ctx context.Context, path string, r io.Reader) (int64, error)
	// Exists reports whether a file exists at path.
	Exists(ctx context.Context, path string) (bool, error)
	// Name identifies the provider.
	Name() string
}
