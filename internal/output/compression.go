package output

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hyp3rd/ewrap"
)

// CompressionAlgorithm represents a compression algorithm.
type CompressionAlgorithm string

const (
	// NoCompression represents no compression.
	NoCompression CompressionAlgorithm = "none"
	// GzipCompression represents gzip compression.
	GzipCompression CompressionAlgorithm = "gzip"
)

// copyBufferSize is the chunk size used while compressing archives.
const copyBufferSize = 32 * 1024

// CompressionConfig configures compression for archived log files.
type CompressionConfig struct {
	// Algorithm is the compression algorithm to use.
	Algorithm CompressionAlgorithm
	// Level is the gzip compression level to use.
	Level int
	// DeleteOriginal determines if the uncompressed archive is deleted after compression.
	DeleteOriginal bool
	// Extension is the file extension to use for compressed files (default: .gz).
	Extension string
}

// defaultCompressionConfig returns the default compression configuration.
func defaultCompressionConfig() CompressionConfig {
	return CompressionConfig{
		Algorithm:      GzipCompression,
		Level:          gzip.DefaultCompression,
		DeleteOriginal: true,
		Extension:      ".gz",
	}
}

// CompressFile compresses path with the configured algorithm and returns the path of
// the resulting file. With NoCompression the input path is returned unchanged.
func CompressFile(path string, config CompressionConfig) (string, error) {
	if config.Extension == "" {
		config.Extension = ".gz"
	}

	switch config.Algorithm {
	case NoCompression:
		return path, nil
	case GzipCompression:
		return compressGzip(path, config)
	default:
		return "", ErrInvalidCompression
	}
}

// compressGzip writes path+extension and removes the source when configured to.
// A partially written target is removed on failure.
func compressGzip(path string, config CompressionConfig) (string, error) {
	dstPath := path + config.Extension

	err := writeGzip(path, dstPath, config.Level)
	if err != nil {
		removePartial(dstPath)

		return "", err
	}

	err = verifyCompressedFile(dstPath)
	if err != nil {
		removePartial(dstPath)

		return "", ewrap.Wrap(err, "verifying compressed file").WithMetadata("path", dstPath)
	}

	if config.DeleteOriginal {
		err = os.Remove(path)
		if err != nil {
			return dstPath, ewrap.Wrap(err, "removing original file").WithMetadata("path", path)
		}
	}

	return dstPath, nil
}

func writeGzip(srcPath, dstPath string, level int) error {
	//nolint:gosec // G304: archive paths are normalized by the FileWriter
	source, err := os.Open(srcPath)
	if err != nil {
		return ewrap.Wrapf(err, "opening source file").WithMetadata("path", srcPath)
	}

	defer func() {
		err := source.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to close source file: %v\n", err)
		}
	}()

	//nolint:gosec // G304: archive paths are normalized by the FileWriter
	compressed, err := os.OpenFile(dstPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return ewrap.Wrapf(err, "creating compressed file").WithMetadata("path", dstPath)
	}

	gzipWriter, err := gzip.NewWriterLevel(compressed, level)
	if err != nil {
		_ = compressed.Close()

		return ewrap.Wrapf(err, "creating gzip writer")
	}

	gzipWriter.Name = filepath.Base(srcPath)

	_, err = io.CopyBuffer(gzipWriter, source, make([]byte, copyBufferSize))
	if err != nil {
		_ = gzipWriter.Close()
		_ = compressed.Close()

		return ewrap.Wrapf(err, "copying file content").WithMetadata("path", srcPath)
	}

	err = gzipWriter.Close()
	if err != nil {
		_ = compressed.Close()

		return ewrap.Wrapf(err, "closing gzip writer")
	}

	err = compressed.Sync()
	if err != nil {
		_ = compressed.Close()

		return ewrap.Wrapf(err, "syncing compressed file")
	}

	err = compressed.Close()
	if err != nil {
		return ewrap.Wrapf(err, "closing compressed file")
	}

	return nil
}

// verifyCompressedFile verifies that a compressed file carries a readable gzip stream.
func verifyCompressedFile(path string) error {
	//nolint:gosec // G304: archive paths are normalized by the FileWriter
	file, err := os.Open(path)
	if err != nil {
		return ewrap.Wrapf(err, "opening compressed file for verification")
	}

	defer func() {
		err := file.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to close file during verification: %v\n", err)
		}
	}()

	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		return ewrap.Wrapf(err, "creating gzip reader for verification")
	}

	defer func() {
		_ = gzipReader.Close()
	}()

	_, err = io.Copy(io.Discard, gzipReader)
	if err != nil && !errors.Is(err, io.EOF) {
		return ewrap.Wrapf(err, "verifying gzip content")
	}

	return nil
}

func removePartial(path string) {
	_, err := os.Stat(path)
	if err != nil {
		return
	}

	err = os.Remove(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to remove partial compressed file %s: %v\n", path, err)
	}
}
