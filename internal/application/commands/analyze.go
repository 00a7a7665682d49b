package commands

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"unicode"
	"unicode/utf8"

	"jsonlscope/internal/application"
	"jsonlscope/internal/domain"
	"jsonlscope/internal/ports"
)

// AnalyzeCommand scans one JSONL file and builds its Report
type AnalyzeCommand struct {
	source  ports.FileSource
	codecs  ports.Decompressor
	decoder ports.RecordDecoder
	logger  *slog.Logger
	Path    string
}

// NewAnalyzeCommand creates a new AnalyzeCommand.
// codecs may be nil, in which case the file is read as plain text.
func NewAnalyzeCommand(
	source ports.FileSource,
	codecs ports.Decompressor,
	decoder ports.RecordDecoder,
	path string,
) *AnalyzeCommand {
	return &AnalyzeCommand{
		source:  source,
		codecs:  codecs,
		decoder: decoder,
		logger:  slog.New(slog.DiscardHandler),
		Path:    path,
	}
}

// WithLogger sets the logger used for per-line diagnostics
func (c *AnalyzeCommand) WithLogger(logger *slog.Logger) *AnalyzeCommand {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// Validate checks if the analyze operation is valid
func (c *AnalyzeCommand) Validate() error {
	return application.ValidateRequired("path", c.Path)
}

// Execute runs the scan to end of file.
// It returns either a complete Report or an error, never both.
func (c *AnalyzeCommand) Execute(ctx context.Context) (*domain.Report, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	info, err := c.source.Stat(ctx, c.Path)
	if err != nil {
		return nil, err
	}

	raw, err := c.source.Open(ctx, c.Path)
	if err != nil {
		return nil, err
	}
	defer raw.Close()

	report := domain.NewReport(*info)

	var stream io.Reader = raw
	if c.codecs != nil {
		decoded, codec, err := c.codecs.Decompress(raw)
		if err != nil {
			return nil, &application.ScanError{Path: c.Path, Err: err}
		}
		defer decoded.Close()

		stream = decoded
		report.Compression = codec
	}

	c.logger.Debug("scanning file",
		"path", c.Path,
		"size", info.Size,
		"compression", report.Compression,
	)

	if err := c.scan(ctx, stream, report); err != nil {
		return nil, err
	}

	c.logger.Debug("scan complete",
		"path", c.Path,
		"lines", report.Lines.Total,
		"valid", report.Lines.Valid,
		"paths", report.Structure.Len(),
	)

	return report, nil
}

func (c *AnalyzeCommand) scan(ctx context.Context, r io.Reader, report *domain.Report) error {
	reader := bufio.NewReader(r)
	lineNo := 0

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", application.ErrCancelled, err)
		}

		chunk, readErr := reader.ReadBytes('\n')
		for _, line := range splitLines(chunk) {
			lineNo++
			if !utf8.Valid(line) {
				return &application.ScanError{Path: c.Path, Line: lineNo, Err: application.ErrInvalidEncoding}
			}
			c.classify(report, lineNo, line)
		}

		if errors.Is(readErr, io.EOF) {
			return nil
		}
		if readErr != nil {
			return &application.ScanError{Path: c.Path, Line: lineNo + 1, Err: readErr}
		}
	}
}

// splitLines breaks a chunk ending in "\n" (or at end of input) into lines.
// "\n", "\r\n" and a lone "\r" all end a line; terminators are dropped.
func splitLines(chunk []byte) [][]byte {
	if len(chunk) == 0 {
		return nil
	}
	chunk = bytes.TrimSuffix(chunk, []byte("\n"))
	if len(chunk) == 0 {
		return [][]byte{chunk}
	}

	lines := bytes.Split(chunk, []byte("\r"))
	if chunk[len(chunk)-1] == '\r' {
		// the last "\r" terminated the line before it
		lines = lines[:len(lines)-1]
	}
	return lines
}

// classify counts one line as blank, valid or invalid and feeds valid records
// to the structure and empty-value walkers
func (c *AnalyzeCommand) classify(report *domain.Report, lineNo int, line []byte) {
	report.Lines.Total++

	trimmed := bytes.TrimFunc(line, isSpace)
	if len(trimmed) == 0 {
		report.Lines.Blank++
		return
	}

	record, err := c.decoder.Decode(trimmed)
	if err != nil {
		report.Lines.Invalid++
		report.InvalidLines = append(report.InvalidLines, lineNo)
		c.logger.Debug("skipping invalid line", "line", lineNo, "error", err)
		return
	}

	report.Lines.Valid++
	report.AddRecord(record)
}

// isSpace reports the characters trimmed around a line: Unicode white space
// plus the file, group, record and unit separators (0x1c-0x1f)
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// AnalyzeFactory creates AnalyzeCommands sharing the same adapters
type AnalyzeFactory struct {
	source  ports.FileSource
	codecs  ports.Decompressor
	decoder ports.RecordDecoder
	logger  *slog.Logger
}

// NewAnalyzeFactory creates a new AnalyzeFactory
func NewAnalyzeFactory(
	source ports.FileSource,
	codecs ports.Decompressor,
	decoder ports.RecordDecoder,
	logger *slog.Logger,
) *AnalyzeFactory {
	return &AnalyzeFactory{
		source:  source,
		codecs:  codecs,
		decoder: decoder,
		logger:  logger,
	}
}

// New creates an AnalyzeCommand for path
func (f *AnalyzeFactory) New(path string) *AnalyzeCommand {
	return NewAnalyzeCommand(f.source, f.codecs, f.decoder, path).WithLogger(f.logger)
}

// Execute analyzes path
func (f *AnalyzeFactory) Execute(ctx context.Context, path string) (*domain.Report, error) {
	return f.New(path).Execute(ctx)
}
