package writers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWriter(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()

	tests := []struct {
		name       string
		output     string
		wantStream *os.File
		wantFile   string
		shouldFail bool
	}{
		{name: "empty string defaults to stdout", output: "", wantStream: os.Stdout},
		{name: "stdout", output: "stdout", wantStream: os.Stdout},
		{name: "uppercase stderr", output: "STDERR", wantStream: os.Stderr},
		{
			name:     "file path",
			output:   filepath.Join(tmpDir, "plain.log"),
			wantFile: filepath.Join(tmpDir, "plain.log"),
		},
		{
			name:     "file protocol",
			output:   "file://" + filepath.Join(tmpDir, "proto", "access.log"),
			wantFile: filepath.Join(tmpDir, "proto", "access.log"),
		},
		{name: "unsupported scheme", output: "redis://localhost:6379", shouldFail: true},
		{name: "bare word", output: "syslog", shouldFail: true},
		{name: "empty file protocol", output: "file://", shouldFail: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer, err := CreateWriter(tt.output)
			if tt.shouldFail {
				require.Error(t, err)
				assert.Nil(t, writer)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, writer)

			if tt.wantStream != nil {
				stream, ok := writer.(stdStream)
				require.True(t, ok, "expected a process stream, got %T", writer)
				assert.Equal(t, tt.wantStream, stream.Writer)
				require.NoError(t, writer.Close())
				return
			}

			_, err = writer.Write([]byte("line\n"))
			require.NoError(t, err)
			require.NoError(t, writer.Close())

			content, err := os.ReadFile(tt.wantFile)
			require.NoError(t, err)
			assert.Equal(t, "line\n", string(content))
		})
	}
}

func TestCreateWriter_Appends(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "existing.log")
	require.NoError(t, os.WriteFile(path, []byte("existing content\n"), 0o644))

	writer, err := CreateWriter(path)
	require.NoError(t, err)
	_, err = writer.Write([]byte("new content\n"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "existing content\nnew content\n", string(content))
}

func TestStdStreamCloseKeepsStreamOpen(t *testing.T) {
	t.Parallel()
	writer, err := CreateWriter("stderr")
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	_, err = os.Stderr.Write(nil)
	assert.NoError(t, err)
}

func TestParseWriterType(t *testing.T) {
	t.Parallel()
	tests := []struct {
		output   string
		expected WriterType
	}{
		{output: "", expected: WriterTypeStdout},
		{output: "stdout", expected: WriterTypeStdout},
		{output: "Stdout", expected: WriterTypeStdout},
		{output: "stderr", expected: WriterTypeStderr},
		{output: "/var/log/app.log", expected: WriterTypeFile},
		{output: "file:///var/log/app.log", expected: WriterTypeFile},
		{output: "./logs/app.log", expected: WriterTypeFile},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseWriterType(tt.output))
		})
	}
}
