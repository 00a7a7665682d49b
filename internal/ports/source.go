package ports

import (
	"context"
	"io"

	"jsonlscope/internal/domain"
)

// FileSource provides the JSONL inputs to analyze
type FileSource interface {
	// Stat returns the size of the file at path.
	// A path that does not exist yields an error wrapping domain.ErrFileNotFound.
	Stat(ctx context.Context, path string) (*domain.FileInfo, error)

	// Open returns a reader over the raw file content; the caller closes it
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// Decompressor detects compressed framings and unwraps them
type Decompressor interface {
	// Decompress returns a reader over the decoded content and the name of the
	// codec it detected ("" when the content is plain text)
	Decompress(r io.Reader) (io.ReadCloser, string, error)
}

// RecordDecoder turns one non-blank line into a Value
type RecordDecoder interface {
	// Decode returns an error wrapping domain.ErrInvalidJSON when the line
	// is not a single valid JSON value
	Decode(line []byte) (domain.Value, error)
}
