package constants

type (
	// OutputType represents the console stream a logger writes to.
	OutputType string
	// ColorMode represents how console colors are chosen.
	ColorMode string
)

const (
	// Output types.

	// LogOutputStdout represents the standard output stream.
	LogOutputStdout OutputType = "stdout"
	// LogOutputStderr represents the standard error stream.
	LogOutputStderr OutputType = "stderr"
	// LogOutputNone disables the console destination.
	LogOutputNone OutputType = "none"

	// Color modes.

	// ColorAuto enables colors when the output is a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways forces colored output.
	ColorAlways ColorMode = "always"
	// ColorNever disables colored output.
	ColorNever ColorMode = "never"
)

// IsValid returns true if the given OutputType is a valid output type, and false otherwise.
func (o OutputType) IsValid() bool {
	switch o {
	case LogOutputStdout, LogOutputStderr, LogOutputNone:
		return true
	default:
		return false
	}
}

// String returns the string representation of the OutputType.
func (o OutputType) String() string {
	return string(o)
}

// IsValid returns true if the given ColorMode is recognised, and false otherwise.
func (c ColorMode) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// String returns the string representation of the ColorMode.
func (c ColorMode) String() string {
	return string(c)
}
