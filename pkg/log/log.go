// Package log assembles xcglogger loggers from a Config and provides a
// process-wide default logger for callers that do not pass one around.
//
// Setup attaches destinations in a fixed order:
//
// - a console destination on stdout or stderr, unless ConsoleTarget is "none"
// - a system log destination when Syslog is set
// - a file destination when FilePath is set
// - a callback destination when Callback is set
//
// The default logger is created on first use with DefaultConfig and can be
// replaced with SetDefault. Passing a *xcglogger.Logger explicitly remains the
// preferred style; the package-level helpers exist for parity with call sites
// that expect a global.
//
// Usage:
//
//	logger, err := log.New(xcglogger.DefaultConfig())
//	if err != nil {
//		panic(err)
//	}
//	defer logger.Close()
//
//	logger.Info("Service started successfully")
//	log.Warningf("cache miss for %s", key)
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/hyp3rd/ewrap"

	"github.com/simonhopkin/xcglogger"
	"github.com/simonhopkin/xcglogger/internal/constants"
	"github.com/simonhopkin/xcglogger/pkg/destination"
)

// ErrNilLogger is returned when Setup receives a nil logger.
var ErrNilLogger = ewrap.New("logger is nil")

// Setup attaches the destinations described by cfg to l and applies cfg.Level
// to the logger and to every destination it adds. Date layout and UTC are
// logger construction options; use New to honor them.
//
// On error no destination is added.
func Setup(l *xcglogger.Logger, cfg xcglogger.Config) error {
	if l == nil {
		return ErrNilLogger
	}

	err := cfg.Validate()
	if err != nil {
		return ewrap.Wrap(err, "invalid logger configuration")
	}

	destinations, err := buildDestinations(cfg)
	if err != nil {
		return err
	}

	l.SetLevel(cfg.Level)

	for _, dest := range destinations {
		err = l.AddDestination(dest)
		if err != nil {
			return ewrap.Wrap(err, "adding destination").WithMetadata("destination", dest.Identifier())
		}
	}

	return nil
}

// New creates a logger from cfg and sets it up.
func New(cfg xcglogger.Config) (*xcglogger.Logger, error) {
	identifier := cfg.Identifier
	if identifier == "" {
		identifier = constants.DefaultLoggerIdentifier
	}

	logger := xcglogger.New(identifier, cfg.LoggerOptions()...)

	err := Setup(logger, cfg)
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to create logger")
	}

	return logger, nil
}

// NewWithDefaults creates a logger named identifier with DefaultConfig: a
// Debug level console destination on stdout.
func NewWithDefaults(identifier string) (*xcglogger.Logger, error) {
	cfg := xcglogger.DefaultConfig()
	if identifier != "" {
		cfg.Identifier = identifier
	}

	return New(cfg)
}

func buildDestinations(cfg xcglogger.Config) ([]xcglogger.Destination, error) {
	var destinations []xcglogger.Destination

	closeAll := func() {
		for _, dest := range destinations {
			if closer, ok := dest.(io.Closer); ok {
				_ = closer.Close()
			}
		}
	}

	if console := newConsole(cfg); console != nil {
		destinations = append(destinations, console)
	}

	if cfg.Syslog {
		opts := cfg.Options(constants.SyslogDestinationIdentifier)
		opts.ShowDate = false

		tag := cfg.SyslogTag
		if tag == "" {
			tag = xcglogger.DefaultSyslogTag
		}

		sys, err := destination.NewSyslog(tag, destination.SyslogOptions{Options: &opts})
		if err != nil {
			closeAll()

			return nil, ewrap.Wrap(err, "creating syslog destination")
		}

		destinations = append(destinations, sys)
	}

	if cfg.FilePath != "" {
		opts := cfg.Options(constants.FileDestinationIdentifier)

		file, err := destination.NewFile(cfg.FilePath, destination.FileOptions{
			Options:          &opts,
			Append:           cfg.FileAppend,
			Async:            cfg.Async,
			BufferSize:       cfg.AsyncBufferSize,
			FileMode:         cfg.FileMode,
			CompressArchives: cfg.CompressArchives,
		})
		if err != nil {
			closeAll()

			return nil, ewrap.Wrap(err, "creating file destination")
		}

		destinations = append(destinations, file)
	}

	if cfg.Callback != nil {
		callback, err := destination.NewCallback(cfg.Options(constants.CallbackDestinationIdentifier), cfg.Callback)
		if err != nil {
			closeAll()

			return nil, ewrap.Wrap(err, "creating callback destination")
		}

		destinations = append(destinations, callback)
	}

	return destinations, nil
}

func newConsole(cfg xcglogger.Config) *destination.Console {
	var writer io.Writer

	switch cfg.ConsoleTarget {
	case xcglogger.ConsoleNone:
		return nil
	case xcglogger.ConsoleStderr:
		writer = os.Stderr
	default:
		writer = os.Stdout
	}

	opts := cfg.Options(constants.ConsoleDestinationIdentifier)

	return destination.NewConsole(destination.ConsoleOptions{
		Options:   &opts,
		Writer:    writer,
		ColorMode: cfg.Color,
	})
}

var (
	defaultLogger atomic.Pointer[xcglogger.Logger]

	initDefault = sync.OnceValue(func() *xcglogger.Logger {
		logger, err := NewWithDefaults(constants.DefaultLoggerIdentifier)
		if err != nil {
			fmt.Fprintf(os.Stderr, "xcglogger: default logger: %v\n", err)

			return xcglogger.New(constants.DefaultLoggerIdentifier)
		}

		return logger
	})
)

// Default returns the process-wide logger, creating it on first use.
func Default() *xcglogger.Logger {
	if logger := defaultLogger.Load(); logger != nil {
		return logger
	}

	defaultLogger.CompareAndSwap(nil, initDefault())

	return defaultLogger.Load()
}

// SetDefault replaces the process-wide logger. A nil logger is ignored.
func SetDefault(logger *xcglogger.Logger) {
	if logger != nil {
		defaultLogger.Store(logger)
	}
}

// logAt reports the caller of the exported helper as the call site.
func logAt(level xcglogger.Level, produce func() (string, bool)) {
	logger := Default()
	if !logger.IsEnabledFor(level) {
		return
	}

	logger.LogCaller(context.Background(), level, produce, xcglogger.CallerAt(2))
}

func static(msg string) func() (string, bool) {
	return func() (string, bool) { return msg, true }
}

func formatted(format string, args []any) func() (string, bool) {
	return func() (string, bool) { return fmt.Sprintf(format, args...), true }
}
