package destination

import (
	"errors"
	"os"

	"github.com/hyp3rd/ewrap"

	"github.com/simonhopkin/xcglogger"
	"github.com/simonhopkin/xcglogger/internal/constants"
	"github.com/simonhopkin/xcglogger/internal/output"
)

// FileOptions configures a File destination.
type FileOptions struct {
	// Options holds the display options. Nil uses xcglogger.DefaultOptions.
	Options *xcglogger.Options
	// Append keeps existing content; otherwise the file is truncated on open.
	Append bool
	// Async writes on a serial background queue instead of the caller's goroutine.
	Async bool
	// BufferSize is the queue size when Async is set.
	BufferSize int
	// FileMode sets the permissions for a newly created file.
	FileMode os.FileMode
	// CompressArchives gzips the archive after rotation and removes the plain copy.
	CompressArchives bool
	// ErrorHandler receives write errors. Nil prints to stderr.
	ErrorHandler func(error)
	// MetricsReporter receives queue metrics when Async is set.
	MetricsReporter func(xcglogger.QueueMetrics)
	// RotationCallback is called with the final archive path after each rotation.
	RotationCallback func(archive string)
}

// File appends lines to a log file and supports manual rotation.
type File struct {
	*xcglogger.Base

	writer *output.FileWriter
}

// NewFile opens (or creates) the log file at path.
func NewFile(path string, opts FileOptions) (*File, error) {
	writer, err := output.NewFileWriter(output.FileConfig{
		Path:             path,
		Append:           opts.Append,
		FileMode:         opts.FileMode,
		Compress:         opts.CompressArchives,
		RotationCallback: opts.RotationCallback,
	})
	if err != nil {
		return nil, ewrap.Wrap(err, "opening file destination").WithMetadata("path", path)
	}

	baseOpts := baseOptions(opts.ErrorHandler)
	if opts.Async {
		baseOpts = append(baseOpts, xcglogger.WithQueue(xcglogger.QueueConfig{
			BufferSize:      opts.BufferSize,
			MetricsReporter: opts.MetricsReporter,
		}))
	}

	return &File{
		Base:   xcglogger.NewBase(resolveOptions(opts.Options, constants.FileDestinationIdentifier), baseOpts...),
		writer: writer,
	}, nil
}

// Process renders rec and appends it to the file.
func (f *File) Process(rec xcglogger.Record) {
	f.Dispatch(rec, f)
}

// Output appends line followed by a newline.
func (f *File) Output(_ xcglogger.Record, line string) {
	_, err := f.writer.Write([]byte(line + "\n"))
	if err != nil {
		f.ReportError(ewrap.Wrap(err, "file write failed").
			WithMetadata("destination", f.Identifier()).
			WithMetadata("path", f.writer.Path()))
	}
}

// Path returns the absolute path of the active log file.
func (f *File) Path() string {
	return f.writer.Path()
}

// Size returns the number of bytes in the active log file.
func (f *File) Size() int64 {
	return f.writer.Size()
}

// Rotate moves the file's content to archivePath and continues logging into a
// fresh file at the original path. Records dispatched before the call end up
// in the archive; records dispatched after it end up in the new file.
//
// An existing archivePath is never overwritten: Rotate fails with
// xcglogger.ErrArchiveExists and the active file is left untouched.
func (f *File) Rotate(archivePath string) error {
	err := f.Do(func() error {
		_, err := f.writer.Rotate(archivePath)

		return err
	})
	if errors.Is(err, xcglogger.ErrArchiveNotCompressed) {
		return ewrap.Wrap(err, "log file rotated, archive left uncompressed").
			WithMetadata("path", f.writer.Path()).
			WithMetadata("archive", archivePath)
	}

	if err != nil {
		return ewrap.Wrap(err, "rotating log file").
			WithMetadata("path", f.writer.Path()).
			WithMetadata("archive", archivePath)
	}

	return nil
}

// Flush waits for queued records and syncs the file to disk.
func (f *File) Flush() error {
	err := f.Base.Flush()
	if err != nil {
		return err
	}

	if f.Closed() {
		return nil
	}

	return f.writer.Sync()
}

// Metrics returns the queue metrics. They are zero for synchronous files.
func (f *File) Metrics() xcglogger.QueueMetrics {
	return f.QueueMetrics()
}

// Close drains pending records and closes the file.
func (f *File) Close() error {
	if f.Closed() {
		return nil
	}

	err := f.Base.Close()
	if err != nil {
		return err
	}

	return f.writer.Close()
}
