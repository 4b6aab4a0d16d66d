package xcglogger

import (
	"github.com/hyp3rd/ewrap"

	"github.com/simonhopkin/xcglogger/internal/output"
)

var (
	// ErrNilDestination is returned when a nil destination is registered.
	ErrNilDestination = ewrap.New("destination is nil")
	// ErrInvalidIdentifier is returned when a destination has an empty identifier.
	ErrInvalidIdentifier = ewrap.New("destination identifier is empty")
	// ErrDestinationOwned is returned when a destination already belongs to another logger.
	ErrDestinationOwned = ewrap.New("destination is registered with another logger")
	// ErrDestinationClosed is returned when a closed destination is used.
	ErrDestinationClosed = ewrap.New("destination is closed")
	// ErrArchiveExists is returned when a rotation target already exists.
	ErrArchiveExists = output.ErrArchiveExists
	// ErrArchiveNotCompressed is returned when a file was rotated but its
	// archive could not be compressed.
	ErrArchiveNotCompressed = output.ErrArchiveNotCompressed
	// ErrSyslogUnsupported is returned on platforms without a system log.
	ErrSyslogUnsupported = ewrap.New("syslog is not supported on this platform")
)
