package destination

import (
	"io"
	"maps"

	"github.com/hyp3rd/ewrap"

	"github.com/simonhopkin/xcglogger"
	"github.com/simonhopkin/xcglogger/internal/constants"
	"github.com/simonhopkin/xcglogger/internal/output"
)

// ConsoleOptions configures a Console destination.
type ConsoleOptions struct {
	// Options holds the display options. Nil uses xcglogger.DefaultOptions.
	Options *xcglogger.Options
	// Writer is the console stream. Nil writes to stdout.
	Writer io.Writer
	// ColorMode decides whether lines are wrapped in their level's color.
	ColorMode xcglogger.ColorMode
	// LevelColors maps levels to ANSI colors. Nil uses xcglogger.DefaultLevelColors.
	LevelColors map[xcglogger.Level]string
	// ErrorHandler receives write errors. Nil prints to stderr.
	ErrorHandler func(error)
}

// Console writes lines to a terminal stream. Writes are synchronous.
type Console struct {
	*xcglogger.Base

	writer *output.ConsoleWriter
	colors map[xcglogger.Level]string
}

// NewConsole creates a console destination.
func NewConsole(opts ConsoleOptions) *Console {
	colors := opts.LevelColors
	if colors == nil {
		colors = xcglogger.DefaultLevelColors()
	}

	return &Console{
		Base: xcglogger.NewBase(
			resolveOptions(opts.Options, constants.ConsoleDestinationIdentifier),
			baseOptions(opts.ErrorHandler)...,
		),
		writer: output.NewConsoleWriter(opts.Writer, toOutputColorMode(opts.ColorMode)),
		colors: maps.Clone(colors),
	}
}

// Process renders rec and writes it.
func (c *Console) Process(rec xcglogger.Record) {
	c.Dispatch(rec, c)
}

// Output writes line followed by a newline.
func (c *Console) Output(rec xcglogger.Record, line string) {
	payload := []byte(line + "\n")

	var err error
	if c.writer.UseColors() {
		_, err = c.writer.WriteColored(payload, c.colors[rec.Level])
	} else {
		_, err = c.writer.Write(payload)
	}

	if err != nil {
		c.ReportError(ewrap.Wrap(err, "console write failed").WithMetadata("destination", c.Identifier()))
	}
}

// UseColors reports whether lines are colored.
func (c *Console) UseColors() bool {
	return c.writer.UseColors()
}

// Flush syncs the underlying stream when it supports it.
func (c *Console) Flush() error {
	return c.writer.Sync()
}

// Close closes the underlying writer unless it is a standard stream.
func (c *Console) Close() error {
	if c.Closed() {
		return nil
	}

	err := c.Base.Close()
	if err != nil {
		return err
	}

	return c.writer.Close()
}
