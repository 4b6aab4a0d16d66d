// Package constants provides application-wide constant values
// used throughout the logger system. These constants define
// default identifiers, configuration keys, and other fixed values
// to ensure consistency across the codebase.
package constants

import "time"

const (
	// DefaultTimeout is the default timeout for flushing queued destinations.
	DefaultTimeout = 5 * time.Second
	// DefaultQueueSize is the default buffer size of a destination's serial queue.
	DefaultQueueSize = 1024
	// DefaultEnvPrefix is the environment prefix used by the config loader.
	DefaultEnvPrefix = "XCGLOGGER"
)

// Default identifiers for loggers and destinations created by the convenience helpers.
const (
	// DefaultLoggerIdentifier identifies the process-wide default logger.
	DefaultLoggerIdentifier = "xcglogger.default"
	// ConsoleDestinationIdentifier identifies the console destination added by Setup.
	ConsoleDestinationIdentifier = "xcglogger.destination.console"
	// FileDestinationIdentifier identifies the file destination added by Setup.
	FileDestinationIdentifier = "xcglogger.destination.file"
	// SyslogDestinationIdentifier identifies the system log destination added by Setup.
	SyslogDestinationIdentifier = "xcglogger.destination.syslog"
	// CallbackDestinationIdentifier identifies the callback destination added by Setup.
	CallbackDestinationIdentifier = "xcglogger.destination.callback"
)

const (
	// RequestHeader is the default HTTP header for request identifiers.
	RequestHeader = "X-Request-ID"
	// RequestMetadataKey is the default gRPC metadata key for request identifiers.
	RequestMetadataKey = "x-request-id"
)
