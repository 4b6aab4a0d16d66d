package configloader

import (
	"os"
	"strconv"
	"strings"

	"github.com/hyp3rd/ewrap"

	"github.com/simonhopkin/xcglogger"
)

type rawConfig struct {
	Identifier string `mapstructure:"identifier" yaml:"identifier"`
	Level      string `mapstructure:"level"      yaml:"level"`
	DateFormat string `mapstructure:"date_format" yaml:"date_format"`
	UTC        *bool  `mapstructure:"utc"        yaml:"utc"`
	Show       struct {
		Date       *bool `mapstructure:"date"       yaml:"date"`
		Level      *bool `mapstructure:"level"      yaml:"level"`
		Identifier *bool `mapstructure:"identifier" yaml:"identifier"`
		Thread     *bool `mapstructure:"thread"     yaml:"thread"`
		File       *bool `mapstructure:"file"       yaml:"file"`
		Line       *bool `mapstructure:"line"       yaml:"line"`
		Function   *bool `mapstructure:"function"   yaml:"function"`
	} `mapstructure:"show" yaml:"show"`
	Console struct {
		Target string `mapstructure:"target" yaml:"target"`
		Color  string `mapstructure:"color"  yaml:"color"`
	} `mapstructure:"console" yaml:"console"`
	File struct {
		Path       string `mapstructure:"path"        yaml:"path"`
		Append     *bool  `mapstructure:"append"      yaml:"append"`
		Mode       string `mapstructure:"mode"        yaml:"mode"`
		Compress   *bool  `mapstructure:"compress"    yaml:"compress"`
		Async      *bool  `mapstructure:"async"       yaml:"async"`
		BufferSize *int   `mapstructure:"buffer_size" yaml:"buffer_size"`
	} `mapstructure:"file" yaml:"file"`
	Syslog struct {
		Enabled *bool  `mapstructure:"enabled" yaml:"enabled"`
		Tag     string `mapstructure:"tag"     yaml:"tag"`
	} `mapstructure:"syslog" yaml:"syslog"`
}

func applyRaw(raw rawConfig) (*xcglogger.Config, error) {
	cfg := xcglogger.DefaultConfig()

	if raw.Identifier != "" {
		cfg.Identifier = raw.Identifier
	}

	if raw.Level != "" {
		level, err := xcglogger.ParseLevel(raw.Level)
		if err != nil {
			return nil, err
		}

		cfg.Level = level
	}

	if raw.DateFormat != "" {
		cfg.DateFormat = raw.DateFormat
	}

	setBool(&cfg.UTC, raw.UTC)
	setBool(&cfg.ShowDate, raw.Show.Date)
	setBool(&cfg.ShowLevel, raw.Show.Level)
	setBool(&cfg.ShowLogIdentifier, raw.Show.Identifier)
	setBool(&cfg.ShowThreadName, raw.Show.Thread)
	setBool(&cfg.ShowFileName, raw.Show.File)
	setBool(&cfg.ShowLineNumber, raw.Show.Line)
	setBool(&cfg.ShowFunctionName, raw.Show.Function)

	if raw.Console.Target != "" {
		cfg.ConsoleTarget = xcglogger.ConsoleTarget(strings.ToLower(raw.Console.Target))
	}

	if raw.Console.Color != "" {
		cfg.Color = xcglogger.ColorMode(strings.ToLower(raw.Console.Color))
	}

	cfg.FilePath = raw.File.Path
	setBool(&cfg.FileAppend, raw.File.Append)
	setBool(&cfg.CompressArchives, raw.File.Compress)
	setBool(&cfg.Async, raw.File.Async)

	if raw.File.BufferSize != nil {
		cfg.AsyncBufferSize = *raw.File.BufferSize
	}

	if raw.File.Mode != "" {
		mode, err := strconv.ParseUint(raw.File.Mode, 8, 32)
		if err != nil {
			return nil, ewrap.Wrap(err, "invalid file mode").WithMetadata("mode", raw.File.Mode)
		}

		cfg.FileMode = os.FileMode(mode)
	}

	setBool(&cfg.Syslog, raw.Syslog.Enabled)

	if raw.Syslog.Tag != "" {
		cfg.SyslogTag = raw.Syslog.Tag
	}

	err := cfg.Validate()
	if err != nil {
		return nil, ewrap.Wrap(err, "invalid configuration")
	}

	return &cfg, nil
}

func setBool(dst *bool, value *bool) {
	if value != nil {
		*dst = *value
	}
}

func allKeys() []string {
	return []string{
		"identifier",
		"level",
		"date_format",
		"utc",
		"show.date",
		"show.level",
		"show.identifier",
		"show.thread",
		"show.file",
		"show.line",
		"show.function",
		"console.target",
		"console.color",
		"file.path",
		"file.append",
		"file.mode",
		"file.compress",
		"file.async",
		"file.buffer_size",
		"syslog.enabled",
		"syslog.tag",
	}
}
