package xcglogger

import (
	"os"

	"github.com/hyp3rd/ewrap"

	"github.com/simonhopkin/xcglogger/internal/constants"
)

const (
	// DefaultLevel is the default logging level.
	DefaultLevel = DebugLevel
	// DefaultAsyncBufferSize is the default size of a destination's queue.
	DefaultAsyncBufferSize = constants.DefaultQueueSize
	// LogFilePermissions are the default file permissions for log files.
	LogFilePermissions os.FileMode = 0o644
	// DefaultSyslogTag is the tag used when none is configured.
	DefaultSyslogTag = "xcglogger"
)

type (
	// ConsoleTarget selects the stream of the console destination.
	ConsoleTarget = constants.OutputType
	// ColorMode selects how console colors are chosen.
	ColorMode = constants.ColorMode
)

const (
	// ConsoleStdout writes console output to stdout.
	ConsoleStdout = constants.LogOutputStdout
	// ConsoleStderr writes console output to stderr.
	ConsoleStderr = constants.LogOutputStderr
	// ConsoleNone disables the console destination.
	ConsoleNone = constants.LogOutputNone

	// ColorAuto colors console output when it is a terminal.
	ColorAuto = constants.ColorAuto
	// ColorAlways colors console output unconditionally.
	ColorAlways = constants.ColorAlways
	// ColorNever never colors console output.
	ColorNever = constants.ColorNever
)

// Config describes a logger and the destinations pkg/log.Setup attaches to it.
type Config struct {
	// Identifier names the logger.
	Identifier string
	// Level is applied to the logger and to every destination.
	Level Level

	// Display details.
	ShowDate          bool
	ShowLevel         bool
	ShowLogIdentifier bool
	ShowThreadName    bool
	ShowFileName      bool
	ShowLineNumber    bool
	ShowFunctionName  bool

	// DateFormat is the Go time layout of the date detail.
	DateFormat string
	// UTC renders dates in UTC.
	UTC bool

	// ConsoleTarget selects stdout, stderr or no console destination.
	ConsoleTarget ConsoleTarget
	// Color controls console coloring.
	Color ColorMode

	// FilePath enables a file destination when set.
	FilePath string
	// FileAppend keeps existing content; otherwise the file is truncated.
	FileAppend bool
	// FileMode sets the permissions for new log files.
	FileMode os.FileMode
	// CompressArchives gzips the archive produced by rotation.
	CompressArchives bool

	// Async gives the file destination a serial queue.
	Async bool
	// AsyncBufferSize sets the size of that queue.
	AsyncBufferSize int

	// Syslog enables the system log destination.
	Syslog bool
	// SyslogTag is the tag reported to the system log.
	SyslogTag string

	// Callback enables a destination that hands every line to the function.
	Callback func(string) `mapstructure:"-"`
}

// DefaultConfig returns the default logger configuration: a Debug logger with
// a console destination on stdout and automatic colors.
func DefaultConfig() Config {
	return Config{
		Identifier:       constants.DefaultLoggerIdentifier,
		Level:            DefaultLevel,
		ShowDate:         true,
		ShowLevel:        true,
		ShowFileName:     true,
		ShowLineNumber:   true,
		ShowFunctionName: true,
		DateFormat:       DefaultDateFormat,
		ConsoleTarget:    ConsoleStdout,
		Color:            ColorAuto,
		FileAppend:       true,
		FileMode:         LogFilePermissions,
		AsyncBufferSize:  DefaultAsyncBufferSize,
		SyslogTag:        DefaultSyslogTag,
	}
}

// ProductionConfig returns a configuration for unattended services: Info level,
// no colors and a queued file destination when FilePath is set.
func ProductionConfig() Config {
	config := DefaultConfig()
	config.Level = InfoLevel
	config.Color = ColorNever
	config.ShowFunctionName = false
	config.Async = true

	return config
}

// DevelopmentConfig returns a configuration for local work: Verbose level,
// forced colors and thread names.
func DevelopmentConfig() Config {
	config := DefaultConfig()
	config.Level = VerboseLevel
	config.Color = ColorAlways
	config.ShowThreadName = true

	return config
}

// Options returns destination options carrying the config's display flags.
func (c Config) Options(identifier string) Options {
	return Options{
		Identifier:        identifier,
		Level:             c.Level,
		ShowDate:          c.ShowDate,
		ShowLevel:         c.ShowLevel,
		ShowLogIdentifier: c.ShowLogIdentifier,
		ShowThreadName:    c.ShowThreadName,
		ShowFileName:      c.ShowFileName,
		ShowLineNumber:    c.ShowLineNumber,
		ShowFunctionName:  c.ShowFunctionName,
	}
}

// LoggerOptions returns the Logger options the config implies.
func (c Config) LoggerOptions() []Option {
	return []Option{
		WithLevel(c.Level),
		WithDateFormat(c.DateFormat),
		WithUTC(c.UTC),
	}
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	eg := ewrap.NewErrorGroup()

	if c.Level > NoneLevel {
		eg.Add(ewrap.New("invalid log level").WithMetadata("level", uint8(c.Level)))
	}

	if c.ConsoleTarget != "" && !c.ConsoleTarget.IsValid() {
		eg.Add(ewrap.New("invalid console target").WithMetadata("console", c.ConsoleTarget.String()))
	}

	if c.Color != "" && !c.Color.IsValid() {
		eg.Add(ewrap.New("invalid color mode").WithMetadata("color", c.Color.String()))
	}

	if c.AsyncBufferSize < 0 {
		eg.Add(ewrap.New("async buffer size cannot be negative").WithMetadata("size", c.AsyncBufferSize))
	}

	if eg.HasErrors() {
		return eg
	}

	return nil
}
