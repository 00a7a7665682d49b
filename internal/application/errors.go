package application

import (
	"errors"
	"fmt"

	"jsonlscope/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrFileNotFound    = domain.ErrFileNotFound
	ErrNotRegularFile  = domain.ErrNotRegularFile
	ErrInvalidJSON     = domain.ErrInvalidJSON
	ErrInvalidEncoding = domain.ErrInvalidEncoding
	ErrCancelled       = errors.New("cancelled")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ScanError represents a failure that aborted a scan before end of file
type ScanError struct {
	Path string
	Line int // 1-based line being read when the failure happened, 0 if none
	Err  error
}

func (e *ScanError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("reading %s at line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// IsMissingFile reports whether err means the input path does not exist
func IsMissingFile(err error) bool {
	return errors.Is(err, ErrFileNotFound)
}
