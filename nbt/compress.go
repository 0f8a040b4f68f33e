package nbt

import (
	"bufio"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// The codec itself only ever sees a decompressed buffer, but NBT on disk
// is conventionally wrapped: files are gzipped, region chunks are
// zlib-deflated. These helpers strip that envelope and hand the result
// to Read.

// MaxDocumentSize is the default decompressed-size limit (64 MiB).
const MaxDocumentSize = 64 << 20

// ReadOption configures the compressed-input readers.
type ReadOption func(*readConfig)

type readConfig struct {
	maxSize int
}

// WithMaxSize caps the decompressed document size. Guards against
// decompression bombs from untrusted streams.
func WithMaxSize(n int) ReadOption {
	return func(c *readConfig) {
		c.maxSize = n
	}
}

func applyReadOptions(opts []ReadOption) readConfig {
	cfg := readConfig{maxSize: MaxDocumentSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// ReadCompressed decodes a document from r, sniffing the envelope: gzip,
// zlib, or already-decompressed bytes.
func ReadCompressed(r io.Reader, opts ...ReadOption) (*Nbt, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(2)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read header: %w", err)
	}
	switch {
	case len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b:
		return ReadGzip(br, opts...)
	case len(magic) == 2 && magic[0] == 0x78:
		return ReadZlib(br, opts...)
	default:
		return readAll(br, applyReadOptions(opts))
	}
}

// ReadGzip decodes a gzip-wrapped document from r.
func ReadGzip(r io.Reader, opts ...ReadOption) (*Nbt, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("gzip: %w", err)
	}
	defer zr.Close()
	return readAll(zr, applyReadOptions(opts))
}

// ReadZlib decodes a zlib-wrapped document from r.
func ReadZlib(r io.Reader, opts ...ReadOption) (*Nbt, error) {
	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("zlib: %w", err)
	}
	defer zr.Close()
	return readAll(zr, applyReadOptions(opts))
}

func readAll(r io.Reader, cfg readConfig) (*Nbt, error) {
	buf, err := io.ReadAll(io.LimitReader(r, int64(cfg.maxSize)+1))
	if err != nil {
		return nil, err
	}
	if len(buf) > cfg.maxSize {
		return nil, fmt.Errorf("nbt: document too large: > %d bytes", cfg.maxSize)
	}
	return Read(buf)
}

// WriteGzip encodes doc and writes it to w inside a gzip envelope.
func WriteGzip(w io.Writer, doc *Nbt) error {
	zw := gzip.NewWriter(w)
	if _, err := zw.Write(Write(nil, doc)); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// WriteZlib encodes doc and writes it to w inside a zlib envelope.
func WriteZlib(w io.Writer, doc *Nbt) error {
	zw := zlib.NewWriter(w)
	if _, err := zw.Write(Write(nil, doc)); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}
