// Package writers resolves a log output specification into a writer.
package writers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// WriterType represents the kind of destination a log output string refers to
type WriterType string

const (
	WriterTypeStdout WriterType = "stdout"
	WriterTypeStderr WriterType = "stderr"
	WriterTypeFile   WriterType = "file"
)

const filePrefix = "file://"

// stdStream keeps the process streams open when the caller closes the writer
type stdStream struct {
	io.Writer
}

func (stdStream) Close() error { return nil }

// CreateWriter opens the destination for a log output specification:
//   - "stdout" or "" - os.Stdout
//   - "stderr" - os.Stderr
//   - "file:///path/to/file" or "/path/to/file" - appends to the file, creating parent directories
//
// Closing the returned writer only closes files, never the process streams.
func CreateWriter(output string) (io.WriteCloser, error) {
	switch ParseWriterType(output) {
	case WriterTypeStdout:
		return stdStream{os.Stdout}, nil
	case WriterTypeStderr:
		return stdStream{os.Stderr}, nil
	}

	if !isFilePath(output) {
		return nil, fmt.Errorf("unsupported output format: %s", output)
	}
	return createFileWriter(strings.TrimPrefix(output, filePrefix))
}

// ParseWriterType determines the writer type from an output string
func ParseWriterType(output string) WriterType {
	switch strings.ToLower(output) {
	case "", "stdout":
		return WriterTypeStdout
	case "stderr":
		return WriterTypeStderr
	}
	return WriterTypeFile
}

// isFilePath rejects URLs with a scheme other than file:// and anything that does not look like a path
func isFilePath(path string) bool {
	if strings.HasPrefix(path, filePrefix) {
		return len(path) > len(filePrefix)
	}
	if strings.Contains(path, "://") {
		return false
	}
	return strings.ContainsAny(path, `/\`)
}

func createFileWriter(filePath string) (io.WriteCloser, error) {
	dir := filepath.Dir(filePath)
	if dir != "." && dir != "/" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	return file, nil
}
