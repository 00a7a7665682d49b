package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/afs"

	"jsonlscope/internal/domain"
	"jsonlscope/internal/ports"
)

// Source implements ports.FileSource on top of afs.
// Plain paths are read from the local filesystem; URLs with a scheme
// (file://, mem://, ...) are handed to afs unchanged.
type Source struct {
	fs afs.Service
}

// Ensure Source implements FileSource
var _ ports.FileSource = (*Source)(nil)

// NewSource creates a new afs backed Source
func NewSource() *Source {
	return &Source{fs: afs.New()}
}

// Stat returns the on-disk size of the file at path
func (s *Source) Stat(ctx context.Context, path string) (*domain.FileInfo, error) {
	location, err := resolve(path)
	if err != nil {
		return nil, err
	}

	exists, err := s.fs.Exists(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", path, err)
	}
	if !exists {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrFileNotFound)
	}

	object, err := s.fs.Object(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if object.IsDir() {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrNotRegularFile)
	}

	return &domain.FileInfo{Path: path, Size: object.Size()}, nil
}

// Open returns a reader over the raw bytes of the file at path
func (s *Source) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	location, err := resolve(path)
	if err != nil {
		return nil, err
	}

	reader, err := s.fs.OpenURL(ctx, location)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, domain.ErrFileNotFound)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return reader, nil
}

// resolve turns a user supplied path into an afs location
func resolve(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path: %w", domain.ErrFileNotFound)
	}
	if strings.Contains(path, "://") {
		return path, nil
	}

	// Expand ~ to home directory
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return abs, nil
}
