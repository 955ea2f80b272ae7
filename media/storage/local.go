package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	apperrors "github.com/LoganBrinsmead/DRSB/errors"
)

// LocalProvider implements Provider for the local filesystem. Writes go
// through a temp file in the destination directory and are renamed into
// place, so a failed write never leaves a truncated output file.
type LocalProvider struct{}

// NewLocalProvider creates a new local storage provider.
func NewLocalProvider() *LocalProvider {
	return &LocalProvider{}
}

// Read opens the file at path for reading.
func (p *LocalProvider) Read(ctx context.Context, path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewStorage(err, fmt.Sprintf("cannot open %s", path))
	}
	return f, nil
}

// Write persists the contents of r at path, overwriting any existing file.
func (p *LocalProvider) Write(ctx context.Context, path string, r io.Reader) (int64, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, apperrors.NewStorage(err, fmt.Sprintf("cannot create directory %s", dir))
		}
	}

	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	tmp, err := os.Create(tmpPath)
	if err != nil {
		return 0, apperrors.NewStorage(err, fmt.Sprintf("cannot create %s", tmpPath))
	}

	n, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return 0, apperrors.NewStorage(err, fmt.Sprintf("cannot write %s", path))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return 0, apperrors.NewStorage(err, fmt.Sprintf("cannot write %s", path))
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return 0, apperrors.NewStorage(err, fmt.Sprintf("cannot save %s", path))
	}

	return n, nil
}

// Exists reports whether a file exists at path.
func (p *LocalProvider) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, apperrors.NewStorage(err, fmt.Sprintf("cannot stat %s", path))
}

func (p *LocalProvider) Name() string {
	return "local"
}

// Ensure LocalProvider implements Provider.
var _ Provider = (*LocalProvider)(nil)
