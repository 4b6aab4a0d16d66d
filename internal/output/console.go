package output

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/hyp3rd/ewrap"
	"github.com/mattn/go-isatty"
)

// ansiReset resets all terminal formatting.
const ansiReset = "\x1b[0m"

// ColorMode determines how colors are handled.
type ColorMode int

const (
	// ColorModeAuto detects if the output supports colors.
	ColorModeAuto ColorMode = iota
	// ColorModeAlways forces color output.
	ColorModeAlways
	// ColorModeNever disables color output.
	ColorModeNever
)

// ConsoleWriter is a synchronized writer for the console with color support.
type ConsoleWriter struct {
	out        io.Writer
	mode       ColorMode
	isTerminal bool
	buffer     bytes.Buffer
	mu         sync.Mutex
}

// NewConsoleWriter creates a new ConsoleWriter. If the provided io.Writer is nil,
// it defaults to os.Stdout.
func NewConsoleWriter(out io.Writer, mode ColorMode) *ConsoleWriter {
	if out == nil {
		out = os.Stdout
	}

	return &ConsoleWriter{
		out:        out,
		mode:       mode,
		isTerminal: IsTerminal(out),
	}
}

// Write implements io.Writer without applying any color.
func (w *ConsoleWriter) Write(payload []byte) (int, error) {
	return w.WriteColored(payload, "")
}

// WriteColored writes payload wrapped in the given ANSI start sequence when colors
// are enabled. A trailing newline is kept outside the colored span. The returned
// count refers to payload bytes only.
func (w *ConsoleWriter) WriteColored(payload []byte, color string) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if color == "" || !w.UseColors() {
		n, err := w.out.Write(payload)
		if err != nil {
			return n, ewrap.Wrap(err, "failed writing to console output")
		}

		return n, nil
	}

	body := payload
	newline := false

	if len(body) > 0 && body[len(body)-1] == '\n' {
		body = body[:len(body)-1]
		newline = true
	}

	w.buffer.Reset()
	w.buffer.Grow(len(payload) + len(color) + len(ansiReset))
	w.buffer.WriteString(color)
	w.buffer.Write(body)
	w.buffer.WriteString(ansiReset)

	if newline {
		w.buffer.WriteByte('\n')
	}

	_, err := w.out.Write(w.buffer.Bytes())
	if err != nil {
		return 0, ewrap.Wrap(err, "failed writing to console output")
	}

	return len(payload), nil
}

// UseColors determines if color output should be used based on mode and terminal support.
//
//nolint:exhaustive // ColorModeAuto is handled as default.
func (w *ConsoleWriter) UseColors() bool {
	switch w.mode {
	case ColorModeAlways:
		return true
	case ColorModeNever:
		return false
	default: // ColorModeAuto
		return w.isTerminal
	}
}

// Sync synchronizes the underlying io.Writer if it implements the Sync() error interface.
// Standard streams are skipped.
func (w *ConsoleWriter) Sync() error {
	if f, ok := w.out.(*os.File); ok && isStandardStream(f) {
		return nil
	}

	if syncer, ok := w.out.(interface{ Sync() error }); ok {
		err := syncer.Sync()
		if err != nil {
			return ewrap.Wrap(err, "syncing console writer")
		}
	}

	return nil
}

// Close closes the underlying io.Writer if it implements io.Closer.
// Standard streams are never closed.
func (w *ConsoleWriter) Close() error {
	if f, ok := w.out.(*os.File); ok && isStandardStream(f) {
		return nil
	}

	if closer, ok := w.out.(io.Closer); ok {
		err := closer.Close()
		if err != nil {
			return ewrap.Wrap(err, "closing console writer")
		}
	}

	return nil
}

// IsTerminal checks if the given writer is a terminal. It returns true if the writer is
// a file connected to a terminal, and false otherwise.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return false
}

func isStandardStream(f *os.File) bool {
	return f == os.Stdout || f == os.Stderr
}
