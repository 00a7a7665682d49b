package domain

import "errors"

var (
	ErrFileNotFound    = errors.New("file not found")
	ErrNotRegularFile  = errors.New("not a regular file")
	ErrInvalidJSON     = errors.New("invalid JSON")
	ErrInvalidEncoding = errors.New("invalid UTF-8")
)
