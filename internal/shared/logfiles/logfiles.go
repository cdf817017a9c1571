package logfiles

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// ErrFileNotFound is returned by Open when the target does not exist.
// Callers treat it as a skip, not a failure.
var ErrFileNotFound = errors.New("log file not found")

const gzipSuffix = ".gz"

// Exists reports whether path names an existing regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Open opens an access log for reading. Targets ending in .gz (the
// rotated monthly archives) are decompressed transparently; the
// returned ReadCloser closes both the gzip stream and the file.
func Open(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}

	if !strings.HasSuffix(path, gzipSuffix) {
		return file, nil
	}

	gz, err := gzip.NewReader(file)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("corrupt gzip archive %q: %w", path, err)
	}

	return &gzipReadCloser{gz: gz, file: file}, nil
}

type gzipReadCloser struct {
	gz   *gzip.Reader
	file *os.File
}

func (r *gzipReadCloser) Read(p []byte) (int, error) {
	return r.gz.Read(p)
}

func (r *gzipReadCloser) Close() error {
	err := r.gz.Close()
	if cerr := r.file.Close(); err == nil {
		err = cerr
	}
	return err
}
