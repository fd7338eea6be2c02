// Package wordlist reads dictionaries and grids from text files.
//
// Files are memory-mapped rather than read into a buffer. Dictionaries
// compressed with gzip or zstd are recognised by their magic bytes and
// decompressed while reading.
package wordlist

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/exp/mmap"
)

// Compression identifies how a file's contents are encoded.
type Compression int

const (
	None Compression = iota
	Gzip
	Zstd
)

func (c Compression) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	}
	return "none"
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// File is a memory-mapped text file.
type File struct {
	r    *mmap.ReaderAt
	path string
}

// Open maps the named file into memory.
func Open(path string) (*File, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &File{r: r, path: path}, nil
}

// Path returns the name the file was opened with.
func (f *File) Path() string { return f.path }

// Len returns the size of the file in bytes.
func (f *File) Len() int { return f.r.Len() }

// ReadAt implements io.ReaderAt over the raw (possibly compressed) bytes.
func (f *File) ReadAt(p []byte, off int64) (int, error) {
	return f.r.ReadAt(p, off)
}

// Close unmaps the file.
func (f *File) Close() error {
	return f.r.Close()
}

// Compression sniffs the leading magic bytes.
func (f *File) Compression() Compression {
	return detect(f.r)
}

func detect(r io.ReaderAt) Compression {
	head := make([]byte, len(zstdMagic))
	n, _ := r.ReadAt(head, 0)
	head = head[:n]

	switch {
	case bytes.HasPrefix(head, gzipMagic):
		return Gzip
	case bytes.HasPrefix(head, zstdMagic):
		return Zstd
	}
	return None
}

// Reader returns the decoded contents of the file. The returned reader must
// be closed before the file is.
func (f *File) Reader() (io.ReadCloser, error) {
	size := int64(f.r.Len())
	rc, err := decode(io.NewSectionReader(f.r, 0, size), detect(f.r))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", f.path, err)
	}
	return rc, nil
}

func decode(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case Gzip:
		return gzip.NewReader(r)
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	}
	return io.NopCloser(r), nil
}
