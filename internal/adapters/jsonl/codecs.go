package jsonl

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"jsonlscope/internal/ports"
)

// Codec names a compressed framing recognised on input
type Codec string

const (
	CodecNone Codec = ""
	CodecGzip Codec = "gzip"
	CodecZstd Codec = "zstd"
	CodecLZ4  Codec = "lz4"
)

var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// Codecs implements ports.Decompressor by sniffing the leading magic bytes
type Codecs struct{}

// Ensure Codecs implements Decompressor
var _ ports.Decompressor = (*Codecs)(nil)

// NewCodecs creates a new Codecs
func NewCodecs() *Codecs {
	return &Codecs{}
}

// Detect returns the codec whose magic number prefixes header
func Detect(header []byte) Codec {
	switch {
	case bytes.HasPrefix(header, magicZstd):
		return CodecZstd
	case bytes.HasPrefix(header, magicLZ4):
		return CodecLZ4
	case bytes.HasPrefix(header, magicGzip):
		return CodecGzip
	default:
		return CodecNone
	}
}

// Decompress wraps r with the decoder matching its framing.
// Plain content is passed through unchanged.
func (c *Codecs) Decompress(r io.Reader) (io.ReadCloser, string, error) {
	br := bufio.NewReader(r)

	header, err := br.Peek(len(magicZstd))
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, "", fmt.Errorf("failed to read header: %w", err)
	}

	codec := Detect(header)
	switch codec {
	case CodecGzip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open gzip stream: %w", err)
		}
		return zr, string(codec), nil

	case CodecZstd:
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open zstd stream: %w", err)
		}
		return zr.IOReadCloser(), string(codec), nil

	case CodecLZ4:
		return io.NopCloser(lz4.NewReader(br)), string(codec), nil

	default:
		return io.NopCloser(br), string(codec), nil
	}
}
