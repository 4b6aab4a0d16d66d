// Package output provides the low-level writers behind the logger destinations.
//
// This package implements the building blocks used by pkg/destination:
// - FileWriter: append or truncate a log file, explicit rotation to a caller-supplied
//   archive path, optional gzip compression of archives
// - ConsoleWriter: synchronized console output with ANSI color support based on
//   terminal capabilities
// - Queue: a single-worker task queue that runs work strictly in enqueue order
//
// Nothing in this package knows about log levels or records; destinations
// translate records to bytes and colors before reaching it.
package output

import (
	"errors"
	"io/fs"
	"os"
	"sync"

	"github.com/hyp3rd/ewrap"

	"github.com/simonhopkin/xcglogger/internal/utils"
)

// DefaultFileMode is the permission used for new log files.
const DefaultFileMode = 0o644

// FileWriter writes to a single log file. It owns the file handle exclusively and
// serializes writes, syncs and rotation with a mutex.
type FileWriter struct {
	mu                sync.Mutex
	file              *os.File
	path              string
	mode              os.FileMode
	size              int64
	compress          bool
	compressionConfig CompressionConfig
	rotationCallback  func(string) // Called after rotation with the final archive path
}

// FileConfig holds configuration for file output.
type FileConfig struct {
	// Path is the log file path
	Path string
	// Append keeps existing content; otherwise the file is truncated on open
	Append bool
	// FileMode sets the permissions for new log files
	FileMode os.FileMode
	// Compress gzips archives produced by Rotate
	Compress bool
	// CompressionConfig provides detailed compression options
	CompressionConfig *CompressionConfig
	// RotationCallback is called after rotation with the path of the archive
	RotationCallback func(string)
}

// NewFileWriter opens (or creates) the log file described by config. Missing
// parent directories are created.
func NewFileWriter(config FileConfig) (*FileWriter, error) {
	path, err := utils.CleanLogPath(config.Path)
	if err != nil {
		return nil, ewrap.Wrap(err, "invalid log file path")
	}

	if config.FileMode == 0 {
		config.FileMode = DefaultFileMode
	}

	compressionConfig := defaultCompressionConfig()
	if config.CompressionConfig != nil {
		compressionConfig = *config.CompressionConfig
	}

	err = utils.EnsureDir(path)
	if err != nil {
		return nil, err
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if !config.Append {
		flags |= os.O_TRUNC
	}

	file, err := openLogFile(path, flags, config.FileMode)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		closeErr := file.Close()

		return nil, ewrap.Wrapf(err, "getting file stats").
			WithMetadata("path", path).
			WithMetadata("close_error", closeErr)
	}

	return &FileWriter{
		file:              file,
		path:              path,
		mode:              config.FileMode,
		size:              info.Size(),
		compress:          config.Compress,
		compressionConfig: compressionConfig,
		rotationCallback:  config.RotationCallback,
	}, nil
}

// Path returns the absolute path of the active log file.
func (w *FileWriter) Path() string {
	return w.path
}

// Size returns the number of bytes in the active log file.
func (w *FileWriter) Size() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.size
}

// Write implements io.Writer.
func (w *FileWriter) Write(data []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return 0, ErrWriterClosed
	}

	bytesWritten, err := w.file.Write(data)
	w.size += int64(bytesWritten)

	if err != nil {
		return bytesWritten, ewrap.Wrap(err, "failed writing to log file").
			WithMetadata("path", w.path)
	}

	return bytesWritten, nil
}

// Sync commits the file content to stable storage.
// If the file has already been closed, Sync returns nil without error.
func (w *FileWriter) Sync() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}

	err := w.file.Sync()
	if err != nil {
		return ewrap.Wrapf(err, "syncing log file").WithMetadata("path", w.path)
	}

	return nil
}

// Close syncs and closes the underlying file. Closing twice is a no-op.
func (w *FileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}

	err := w.file.Sync()
	if err != nil {
		return ewrap.Wrapf(err, "final sync before close").WithMetadata("path", w.path)
	}

	err = w.file.Close()
	if err != nil {
		return ewrap.Wrapf(err, "closing log file").WithMetadata("path", w.path)
	}

	w.file = nil

	return nil
}

// Rotate moves the current content to archivePath and reopens an empty file at the
// original path. It returns the final archive path, which carries the compression
// extension when compression is enabled.
//
// An occupied archivePath fails with ErrArchiveExists and leaves the active file
// open and untouched. If the rotation succeeds but compression fails, the error
// matches ErrArchiveNotCompressed and the returned path is the archive that was
// left behind.
func (w *FileWriter) Rotate(archivePath string) (string, error) {
	archive, err := w.rotateLocked(archivePath)
	if err != nil {
		return "", err
	}

	if w.compress {
		compressed, err := CompressFile(archive, w.compressionConfig)
		if err != nil {
			if compressed != "" {
				archive = compressed
			}

			if w.rotationCallback != nil {
				w.rotationCallback(archive)
			}

			return archive, ewrap.Wrap(errors.Join(ErrArchiveNotCompressed, err), "compressing archive").
				WithMetadata("archive", archive)
		}

		archive = compressed
	}

	if w.rotationCallback != nil {
		w.rotationCallback(archive)
	}

	return archive, nil
}

func (w *FileWriter) rotateLocked(archivePath string) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return "", ErrWriterClosed
	}

	archive, err := w.checkArchive(archivePath)
	if err != nil {
		return "", err
	}

	err = utils.EnsureDir(archive)
	if err != nil {
		return "", err
	}

	err = w.file.Sync()
	if err != nil {
		return "", ewrap.Wrapf(err, "syncing log file before rotation").WithMetadata("path", w.path)
	}

	err = w.file.Close()
	if err != nil {
		return "", ewrap.Wrapf(err, "closing current log file").WithMetadata("path", w.path)
	}

	w.file = nil

	err = moveExclusive(w.path, archive)
	if err != nil {
		reopened, reopenErr := openLogFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, w.mode)
		if reopenErr != nil {
			return "", ewrap.Wrap(err, "moving log file").WithMetadata("reopen_error", reopenErr)
		}

		w.file = reopened

		return "", err
	}

	file, err := openLogFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND|os.O_TRUNC, w.mode)
	if err != nil {
		return "", ewrap.Wrap(err, "creating new log file")
	}

	w.file = file
	w.size = 0

	return archive, nil
}

// checkArchive validates the rotation target. Existing files are never overwritten.
func (w *FileWriter) checkArchive(archivePath string) (string, error) {
	archive, err := utils.CleanLogPath(archivePath)
	if err != nil {
		return "", ewrap.Wrap(err, "invalid archive path")
	}

	if archive == w.path {
		return "", ewrap.New("archive path equals the active log file").WithMetadata("path", archive)
	}

	candidates := []string{archive}
	if w.compress {
		candidates = append(candidates, archive+w.compressionConfig.Extension)
	}

	for _, candidate := range candidates {
		exists, err := utils.Exists(candidate)
		if err != nil {
			return "", err
		}

		if exists {
			return "", ewrap.Wrap(ErrArchiveExists, "refusing to overwrite archive").
				WithMetadata("archive", candidate)
		}
	}

	return archive, nil
}

// moveExclusive moves src to dst. Linking fails atomically when dst exists,
// so an archive created after checkArchive is never replaced.
func moveExclusive(src, dst string) error {
	err := os.Link(src, dst)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return ewrap.Wrap(ErrArchiveExists, "refusing to overwrite archive").WithMetadata("archive", dst)
		}

		return ewrap.Wrapf(err, "linking log file to archive").
			WithMetadata("from", src).
			WithMetadata("to", dst)
	}

	err = os.Remove(src)
	if err != nil {
		unlinkErr := os.Remove(dst)

		return ewrap.Wrapf(err, "removing rotated log file").
			WithMetadata("path", src).
			WithMetadata("unlink_error", unlinkErr)
	}

	return nil
}

func openLogFile(path string, flags int, mode os.FileMode) (*os.File, error) {
	//nolint:gosec // G304: the path is normalized by utils.CleanLogPath
	file, err := os.OpenFile(path, flags, mode)
	if err != nil {
		return nil, ewrap.Wrapf(err, "opening log file").
			WithMetadata("path", path)
	}

	return file, nil
}
