package output

import (
	"github.com/hyp3rd/ewrap"
)

// Common errors for the output package.
var (
	// ErrWriterClosed is returned when attempting to write to a closed writer.
	ErrWriterClosed = ewrap.New("writer is closed")

	// ErrQueueClosed is returned when attempting to enqueue work on a closed queue.
	ErrQueueClosed = ewrap.New("queue is closed")

	// ErrTaskPanicked is returned by Queue.Do when the task panicked.
	ErrTaskPanicked = ewrap.New("queued task panicked")

	// ErrFlushTimeout is returned when a flush operation times out.
	ErrFlushTimeout = ewrap.New("flush timed out")

	// ErrArchiveExists is returned when a rotation target is already occupied.
	ErrArchiveExists = ewrap.New("archive path already exists")

	// ErrArchiveNotCompressed is returned by Rotate when the rotation succeeded
	// but compressing the archive failed.
	ErrArchiveNotCompressed = ewrap.New("archive was not compressed")

	// ErrInvalidCompression is returned when an invalid compression algorithm is selected.
	ErrInvalidCompression = ewrap.New("invalid compression algorithm")
)
