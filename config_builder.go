package xcglogger

import "os"

// ConfigBuilder provides a fluent API for constructing logger configurations.
// It allows for more readable and chainable configuration setup.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a new builder starting from DefaultConfig.
// This is the entry point for the fluent configuration API.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{config: DefaultConfig()}
}

// WithIdentifier sets the logger identifier.
func (b *ConfigBuilder) WithIdentifier(identifier string) *ConfigBuilder {
	b.config.Identifier = identifier

	return b
}

// WithLevel sets the logging level.
// Example: builder.WithLevel(xcglogger.InfoLevel).
func (b *ConfigBuilder) WithLevel(level Level) *ConfigBuilder {
	b.config.Level = level

	return b
}

// WithVerboseLevel is a convenience method for WithLevel(VerboseLevel).
func (b *ConfigBuilder) WithVerboseLevel() *ConfigBuilder {
	return b.WithLevel(VerboseLevel)
}

// WithInfoLevel is a convenience method for WithLevel(InfoLevel).
func (b *ConfigBuilder) WithInfoLevel() *ConfigBuilder {
	return b.WithLevel(InfoLevel)
}

// WithDateFormat sets the date layout.
// Example: builder.WithDateFormat(time.RFC3339).
func (b *ConfigBuilder) WithDateFormat(layout string) *ConfigBuilder {
	b.config.DateFormat = layout

	return b
}

// WithUTC renders dates in UTC.
func (b *ConfigBuilder) WithUTC(utc bool) *ConfigBuilder {
	b.config.UTC = utc

	return b
}

// WithNoDate hides the date detail.
func (b *ConfigBuilder) WithNoDate() *ConfigBuilder {
	b.config.ShowDate = false

	return b
}

// WithLogIdentifier shows or hides the logger identifier.
func (b *ConfigBuilder) WithLogIdentifier(show bool) *ConfigBuilder {
	b.config.ShowLogIdentifier = show

	return b
}

// WithThreadName shows or hides the thread label.
func (b *ConfigBuilder) WithThreadName(show bool) *ConfigBuilder {
	b.config.ShowThreadName = show

	return b
}

// WithCaller shows or hides file name, line number and function name together.
// Example: builder.WithCaller(false).
func (b *ConfigBuilder) WithCaller(show bool) *ConfigBuilder {
	b.config.ShowFileName = show
	b.config.ShowLineNumber = show
	b.config.ShowFunctionName = show

	return b
}

// WithConsole selects the console stream.
// Example: builder.WithConsole(xcglogger.ConsoleStderr).
func (b *ConfigBuilder) WithConsole(target ConsoleTarget) *ConfigBuilder {
	b.config.ConsoleTarget = target

	return b
}

// WithoutConsole disables the console destination.
func (b *ConfigBuilder) WithoutConsole() *ConfigBuilder {
	return b.WithConsole(ConsoleNone)
}

// WithColors sets the console color mode.
func (b *ConfigBuilder) WithColors(mode ColorMode) *ConfigBuilder {
	b.config.Color = mode

	return b
}

// WithFileOutput adds a file destination at path.
// The file will be created if it doesn't exist; append controls whether
// existing content is kept.
// Example: builder.WithFileOutput("/var/log/my_app.log", true).
func (b *ConfigBuilder) WithFileOutput(path string, appendMode bool) *ConfigBuilder {
	b.config.FilePath = path
	b.config.FileAppend = appendMode

	return b
}

// WithFileMode sets the permissions of newly created log files.
func (b *ConfigBuilder) WithFileMode(mode os.FileMode) *ConfigBuilder {
	b.config.FileMode = mode

	return b
}

// WithArchiveCompression gzips rotated archives.
func (b *ConfigBuilder) WithArchiveCompression(enabled bool) *ConfigBuilder {
	b.config.CompressArchives = enabled

	return b
}

// WithEnableAsync queues file output on a background worker.
func (b *ConfigBuilder) WithEnableAsync(enabled bool) *ConfigBuilder {
	b.config.Async = enabled

	return b
}

// WithAsyncBufferSize sets the queue size for asynchronous output.
// Example: builder.WithAsyncBufferSize(1000).
func (b *ConfigBuilder) WithAsyncBufferSize(size int) *ConfigBuilder {
	b.config.AsyncBufferSize = size

	return b
}

// WithSyslog enables the system log destination with tag.
func (b *ConfigBuilder) WithSyslog(tag string) *ConfigBuilder {
	b.config.Syslog = true
	if tag != "" {
		b.config.SyslogTag = tag
	}

	return b
}

// WithCallback adds a destination that hands every line to fn.
func (b *ConfigBuilder) WithCallback(fn func(string)) *ConfigBuilder {
	b.config.Callback = fn

	return b
}

// WithDevelopmentDefaults applies DevelopmentConfig, keeping outputs already set.
func (b *ConfigBuilder) WithDevelopmentDefaults() *ConfigBuilder {
	return b.withPreset(DevelopmentConfig())
}

// WithProductionDefaults applies ProductionConfig, keeping outputs already set.
func (b *ConfigBuilder) WithProductionDefaults() *ConfigBuilder {
	return b.withPreset(ProductionConfig())
}

func (b *ConfigBuilder) withPreset(preset Config) *ConfigBuilder {
	preset.Identifier = b.config.Identifier
	preset.FilePath = b.config.FilePath
	preset.FileAppend = b.config.FileAppend
	preset.Syslog = b.config.Syslog
	preset.SyslogTag = b.config.SyslogTag
	preset.Callback = b.config.Callback
	preset.ConsoleTarget = b.config.ConsoleTarget
	b.config = preset

	return b
}

// Build returns a copy of the configuration.
func (b *ConfigBuilder) Build() *Config {
	config := b.config

	return &config
}
