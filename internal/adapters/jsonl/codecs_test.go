package jsonl

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

const sample = "{\"a\":1}\n\n{\"b\":null}\n"

func compressGzip(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write([]byte(data)); err != nil {
		t.Fatalf("gzip write failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("gzip close failed: %v", err)
	}
	return buf.Bytes()
}

func compressZstd(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatalf("zstd writer failed: %v", err)
	}
	if _, err := w.Write([]byte(data)); err != nil {
		t.Fatalf("zstd write failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("zstd close failed: %v", err)
	}
	return buf.Bytes()
}

func compressLZ4(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write([]byte(data)); err != nil {
		t.Fatalf("lz4 write failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("lz4 close failed: %v", err)
	}
	return buf.Bytes()
}

func TestCodecs_Decompress(t *testing.T) {
	tests := []struct {
		name      string
		input     []byte
		wantCodec Codec
	}{
		{"plain", []byte(sample), CodecNone},
		{"gzip", compressGzip(t, sample), CodecGzip},
		{"zstd", compressZstd(t, sample), CodecZstd},
		{"lz4", compressLZ4(t, sample), CodecLZ4},
	}

	codecs := NewCodecs()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc, codec, err := codecs.Decompress(bytes.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Decompress failed: %v", err)
			}
			defer rc.Close()

			if codec != string(tt.wantCodec) {
				t.Errorf("codec = %q, want %q", codec, tt.wantCodec)
			}

			got, err := io.ReadAll(rc)
			if err != nil {
				t.Fatalf("read failed: %v", err)
			}
			if string(got) != sample {
				t.Errorf("content = %q, want %q", got, sample)
			}
		})
	}
}

func TestCodecs_Decompress_ShortInput(t *testing.T) {
	for _, input := range []string{"", "{", "{}"} {
		rc, codec, err := NewCodecs().Decompress(strings.NewReader(input))
		if err != nil {
			t.Fatalf("Decompress(%q) failed: %v", input, err)
		}
		if codec != "" {
			t.Errorf("codec = %q, want plain", codec)
		}
		got, _ := io.ReadAll(rc)
		if string(got) != input {
			t.Errorf("content = %q, want %q", got, input)
		}
	}
}

func TestCodecs_Decompress_CorruptGzip(t *testing.T) {
	_, _, err := NewCodecs().Decompress(bytes.NewReader([]byte{0x1f, 0x8b, 0x00, 0x00}))
	if err == nil {
		t.Error("expected error for truncated gzip header")
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		header []byte
		want   Codec
	}{
		{[]byte{0x1f, 0x8b, 0x08, 0x00}, CodecGzip},
		{[]byte{0x28, 0xb5, 0x2f, 0xfd}, CodecZstd},
		{[]byte{0x04, 0x22, 0x4d, 0x18}, CodecLZ4},
		{[]byte(`{"a"`), CodecNone},
		{nil, CodecNone},
	}

	for _, tt := range tests {
		if got := Detect(tt.header); got != tt.want {
			t.Errorf("Detect(%x) = %q, want %q", tt.header, got, tt.want)
		}
	}
}
