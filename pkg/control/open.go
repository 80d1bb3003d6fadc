// pkg/control/open.go
package control

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Open opens an index file for reading. Files ending in .xz, .gz or .zst
// are decompressed on the fly; anything else is returned as-is.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	rc, err := decompress(f, path)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return rc, nil
}

func decompress(f *os.File, name string) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(name, SuffixXz):
		xzReader, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("creating xz reader: %w", err)
		}
		return &readCloser{Reader: xzReader, closers: []io.Closer{f}}, nil

	case strings.HasSuffix(name, SuffixGzip):
		gzReader, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("creating gzip reader: %w", err)
		}
		return &readCloser{Reader: gzReader, closers: []io.Closer{gzReader, f}}, nil

	case strings.HasSuffix(name, SuffixZstd):
		zstdReader, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("creating zstd reader: %w", err)
		}
		return &readCloser{Reader: zstdReader, closers: []io.Closer{zstdCloser{zstdReader}, f}}, nil
	}

	return f, nil
}

// readCloser closes a decompressor and its underlying file in order.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var first error
	for _, c := range r.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// zstd.Decoder.Close returns nothing.
type zstdCloser struct {
	d *zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.d.Close()
	return nil
}
