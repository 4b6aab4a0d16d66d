package output

import (
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileWriter(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name        string
		config      FileConfig
		expectError bool
	}{
		{
			name:   "valid config",
			config: FileConfig{Path: filepath.Join(tempDir, "test.log"), FileMode: 0o600},
		},
		{
			name:   "nested directory is created",
			config: FileConfig{Path: filepath.Join(tempDir, "nested", "dir", "test.log")},
		},
		{
			name:        "empty path",
			config:      FileConfig{Path: ""},
			expectError: true,
		},
		{
			name:        "path is a directory",
			config:      FileConfig{Path: tempDir},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer, err := NewFileWriter(tt.config)
			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, writer)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, writer)
			assert.NoError(t, writer.Close())
		})
	}
}

func TestFileWriterAppendAndTruncate(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "mode.log")
	require.NoError(t, os.WriteFile(logPath, []byte("old\n"), 0o600))

	appender, err := NewFileWriter(FileConfig{Path: logPath, Append: true})
	require.NoError(t, err)
	assert.Equal(t, int64(4), appender.Size())

	_, err = appender.Write([]byte("new\n"))
	require.NoError(t, err)
	require.NoError(t, appender.Close())

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, "old\nnew\n", string(content))

	truncater, err := NewFileWriter(FileConfig{Path: logPath})
	require.NoError(t, err)
	assert.Equal(t, int64(0), truncater.Size())
	require.NoError(t, truncater.Close())

	content, err = os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Empty(t, content)
}

func TestFileWriterRotate(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "rotation.log")
	archivePath := filepath.Join(tempDir, "archive", "rotation-1.log")

	var rotated string

	writer, err := NewFileWriter(FileConfig{
		Path:             logPath,
		RotationCallback: func(path string) { rotated = path },
	})
	require.NoError(t, err)

	defer writer.Close()

	_, err = writer.Write([]byte("before\n"))
	require.NoError(t, err)

	archive, err := writer.Rotate(archivePath)
	require.NoError(t, err)
	assert.Equal(t, archivePath, archive)
	assert.Equal(t, archivePath, rotated)
	assert.Equal(t, int64(0), writer.Size())

	_, err = writer.Write([]byte("after\n"))
	require.NoError(t, err)

	archived, err := os.ReadFile(archivePath)
	require.NoError(t, err)
	assert.Equal(t, "before\n", string(archived))

	active, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, "after\n", string(active))
}

func TestFileWriterRotateCollision(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "collision.log")
	archivePath := filepath.Join(tempDir, "taken.log")
	require.NoError(t, os.WriteFile(archivePath, []byte("keep me\n"), 0o600))

	writer, err := NewFileWriter(FileConfig{Path: logPath})
	require.NoError(t, err)

	defer writer.Close()

	_, err = writer.Write([]byte("first\n"))
	require.NoError(t, err)

	_, err = writer.Rotate(archivePath)
	require.ErrorIs(t, err, ErrArchiveExists)

	_, err = writer.Rotate(logPath)
	require.Error(t, err, "rotating onto the active file is rejected")

	_, err = writer.Write([]byte("second\n"))
	require.NoError(t, err, "the active file stays open after a failed rotation")

	archived, err := os.ReadFile(archivePath)
	require.NoError(t, err)
	assert.Equal(t, "keep me\n", string(archived))

	active, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(active))
}

func TestFileWriterRotateCompressed(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "compressed.log")
	archivePath := filepath.Join(tempDir, "compressed-1.log")

	writer, err := NewFileWriter(FileConfig{Path: logPath, Compress: true})
	require.NoError(t, err)

	defer writer.Close()

	_, err = writer.Write([]byte("gzip me\n"))
	require.NoError(t, err)

	archive, err := writer.Rotate(archivePath)
	require.NoError(t, err)
	assert.Equal(t, archivePath+".gz", archive)

	_, err = os.Stat(archivePath)
	assert.True(t, os.IsNotExist(err), "uncompressed archive is removed")

	file, err := os.Open(archive)
	require.NoError(t, err)

	defer file.Close()

	reader, err := gzip.NewReader(file)
	require.NoError(t, err)

	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "gzip me\n", string(content))
}

func TestMoveExclusiveKeepsExistingArchive(t *testing.T) {
	tempDir := t.TempDir()
	src := filepath.Join(tempDir, "active.log")
	dst := filepath.Join(tempDir, "archive.log")

	require.NoError(t, os.WriteFile(src, []byte("active\n"), 0o600))
	require.NoError(t, os.WriteFile(dst, []byte("archived\n"), 0o600))

	err := moveExclusive(src, dst)
	require.ErrorIs(t, err, ErrArchiveExists)

	archived, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "archived\n", string(archived))

	active, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, "active\n", string(active))

	free := filepath.Join(tempDir, "free.log")
	require.NoError(t, moveExclusive(src, free))

	_, err = os.Stat(src)
	assert.True(t, os.IsNotExist(err))

	moved, err := os.ReadFile(free)
	require.NoError(t, err)
	assert.Equal(t, "active\n", string(moved))
}

func TestFileWriterRotateCompressionFailure(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "uncompressed.log")
	archivePath := filepath.Join(tempDir, "uncompressed-1.log")

	var rotated string

	writer, err := NewFileWriter(FileConfig{
		Path:              logPath,
		Compress:          true,
		CompressionConfig: &CompressionConfig{Algorithm: "zip"},
		RotationCallback:  func(path string) { rotated = path },
	})
	require.NoError(t, err)

	defer writer.Close()

	_, err = writer.Write([]byte("kept plain\n"))
	require.NoError(t, err)

	archive, err := writer.Rotate(archivePath)
	require.ErrorIs(t, err, ErrArchiveNotCompressed)
	require.ErrorIs(t, err, ErrInvalidCompression)
	assert.False(t, errors.Is(err, ErrArchiveExists))
	assert.Equal(t, archivePath, archive)
	assert.Equal(t, archivePath, rotated)

	archived, err := os.ReadFile(archivePath)
	require.NoError(t, err)
	assert.Equal(t, "kept plain\n", string(archived))

	_, err = writer.Write([]byte("fresh\n"))
	require.NoError(t, err)

	active, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, "fresh\n", string(active))
}

func TestFileWriterWriteAfterClose(t *testing.T) {
	writer, err := NewFileWriter(FileConfig{Path: filepath.Join(t.TempDir(), "closed.log")})
	require.NoError(t, err)

	require.NoError(t, writer.Close())
	require.NoError(t, writer.Close())
	require.NoError(t, writer.Sync())

	_, err = writer.Write([]byte("test data\n"))
	require.ErrorIs(t, err, ErrWriterClosed)

	_, err = writer.Rotate(filepath.Join(t.TempDir(), "archive.log"))
	require.ErrorIs(t, err, ErrWriterClosed)
}

func TestCompressFileInvalidAlgorithm(t *testing.T) {
	_, err := CompressFile("whatever", CompressionConfig{Algorithm: "zip"})
	require.ErrorIs(t, err, ErrInvalidCompression)

	path, err := CompressFile("untouched.log", CompressionConfig{Algorithm: NoCompression})
	require.NoError(t, err)
	assert.Equal(t, "untouched.log", path)
}
