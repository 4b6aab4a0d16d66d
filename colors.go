package xcglogger

//nolint:revive // Pointless to comment the colors.
const (
	// ANSI color codes for terminal output.

	// Regular colors.

	Black   = "\x1b[30m"
	Red     = "\x1b[31m"
	Green   = "\x1b[32m"
	Yellow  = "\x1b[33m"
	Blue    = "\x1b[34m"
	Magenta = "\x1b[35m"
	Cyan    = "\x1b[36m"
	White   = "\x1b[37m"

	// Bold colors.

	BoldRed     = "\x1b[31;1m"
	BoldYellow  = "\x1b[33;1m"
	BoldMagenta = "\x1b[35;1m"
	BoldWhite   = "\x1b[37;1m"

	// Background.

	RedBackground = "\x1b[41;37;1m"

	// Reset resets the terminal's color settings.
	Reset = "\x1b[0m"
)

// DefaultLevelColors returns a map of log levels to their default ANSI color codes.
// Severity grows from muted to bold, with Emergency rendered on a red background.
func DefaultLevelColors() map[Level]string {
	return map[Level]string{
		VerboseLevel:   White,
		DebugLevel:     Blue,
		InfoLevel:      Green,
		NoticeLevel:    Cyan,
		WarningLevel:   Yellow,
		ErrorLevel:     Red,
		SevereLevel:    BoldRed,
		AlertLevel:     BoldMagenta,
		EmergencyLevel: RedBackground,
	}
}
