package main

import (
	"bufio"
	"context"
	"io"

	"github.com/hyp3rd/ewrap"
	"github.com/spf13/cobra"

	"github.com/simonhopkin/xcglogger"
	"github.com/simonhopkin/xcglogger/internal/constants"
	"github.com/simonhopkin/xcglogger/pkg/configloader"
	"github.com/simonhopkin/xcglogger/pkg/destination"
	xlog "github.com/simonhopkin/xcglogger/pkg/log"
)

const maxLineSize = 1024 * 1024

type pipeFlags struct {
	config     string
	level      string
	file       string
	appendMode bool
	identifier string
	console    string
	color      string
	thread     string
	caller     bool
}

func newPipeCmd() *cobra.Command {
	var flags pipeFlags

	cmd := &cobra.Command{
		Use:   "pipe",
		Short: "Log every stdin line",
		Long:  "Read stdin line by line and log each line at the given level to the configured destinations.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPipe(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.config, "config", "", "YAML configuration file (environment overrides use the XCGLOGGER_ prefix)")
	cmd.Flags().StringVar(&flags.level, "level", "", "Level of every line: verbose|debug|info|notice|warning|error|severe|alert|emergency")
	cmd.Flags().StringVar(&flags.file, "file", "", "Log file path")
	cmd.Flags().BoolVar(&flags.appendMode, "append", true, "Append to the log file instead of truncating it")
	cmd.Flags().StringVar(&flags.identifier, "identifier", "", "Logger identifier")
	cmd.Flags().StringVar(&flags.console, "console", "", "Console stream: stdout|stderr|none")
	cmd.Flags().StringVar(&flags.color, "color", "", "Console colors: auto|always|never")
	cmd.Flags().StringVar(&flags.thread, "thread", "", "Thread label of every line")
	cmd.Flags().BoolVar(&flags.caller, "caller", false, "Show file, line and function details")

	return cmd
}

func pipeConfig(cmd *cobra.Command, flags pipeFlags) (xcglogger.Config, error) {
	cfg := xcglogger.DefaultConfig()

	if flags.config != "" {
		loaded, err := configloader.FromFile(flags.config)
		if err != nil {
			return cfg, err
		}

		cfg = *loaded
	}

	if !flags.caller {
		cfg.ShowFileName = false
		cfg.ShowLineNumber = false
		cfg.ShowFunctionName = false
	}

	if flags.level != "" {
		level, err := xcglogger.ParseLevel(flags.level)
		if err != nil {
			return cfg, err
		}

		cfg.Level = level
	}

	if flags.file != "" {
		cfg.FilePath = flags.file
	}

	if cmd.Flags().Changed("append") || flags.config == "" {
		cfg.FileAppend = flags.appendMode
	}

	if flags.identifier != "" {
		cfg.Identifier = flags.identifier
	}

	if flags.console != "" {
		cfg.ConsoleTarget = xcglogger.ConsoleTarget(flags.console)
	}

	if flags.color != "" {
		cfg.Color = xcglogger.ColorMode(flags.color)
	}

	if flags.thread != "" {
		cfg.ShowThreadName = true
	}

	err := cfg.Validate()
	if err != nil {
		return cfg, ewrap.Wrap(err, "invalid flags")
	}

	return cfg, nil
}

func runPipe(cmd *cobra.Command, flags pipeFlags) error {
	cfg, err := pipeConfig(cmd, flags)
	if err != nil {
		return err
	}

	// The console follows the command's streams so the output can be captured.
	target := cfg.ConsoleTarget
	cfg.ConsoleTarget = xcglogger.ConsoleNone

	logger, err := xlog.New(cfg)
	if err != nil {
		return err
	}

	if target != xcglogger.ConsoleNone {
		writer := cmd.OutOrStdout()
		if target == xcglogger.ConsoleStderr {
			writer = cmd.ErrOrStderr()
		}

		opts := cfg.Options(constants.ConsoleDestinationIdentifier)

		err = logger.AddDestination(destination.NewConsole(destination.ConsoleOptions{
			Options:   &opts,
			Writer:    writer,
			ColorMode: cfg.Color,
		}))
		if err != nil {
			return err
		}
	}

	ctx := xcglogger.WithThreadName(cmd.Context(), flags.thread)

	// Records from the main goroutine always carry the main label, so
	// the lines are read on a worker for --thread to apply.
	done := make(chan error, 1)

	go func() {
		done <- pipeLines(ctx, cmd.InOrStdin(), logger, cfg.Level)
	}()

	err = <-done

	closeErr := logger.Close()
	if err != nil {
		return err
	}

	return closeErr
}

func pipeLines(ctx context.Context, in io.Reader, logger *xcglogger.Logger, level xcglogger.Level) error {
	if ctx == nil {
		ctx = context.Background()
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	for scanner.Scan() {
		logger.LogContext(ctx, level, scanner.Text())
	}

	err := scanner.Err()
	if err != nil {
		return ewrap.Wrap(err, "reading input")
	}

	return nil
}
