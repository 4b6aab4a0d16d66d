package xcglogger

import (
	"strings"

	"github.com/hyp3rd/ewrap"
)

// Level represents the severity of a log message. Levels are totally ordered by
// their numeric value.
type Level uint8

const (
	// VerboseLevel represents the most detailed tracing information.
	VerboseLevel Level = iota
	// DebugLevel represents debugging information.
	DebugLevel
	// InfoLevel represents general operational information.
	InfoLevel
	// NoticeLevel represents normal but significant conditions.
	NoticeLevel
	// WarningLevel represents warning messages.
	WarningLevel
	// ErrorLevel represents error messages.
	ErrorLevel
	// SevereLevel represents critical conditions.
	SevereLevel
	// AlertLevel represents conditions that need immediate action.
	AlertLevel
	// EmergencyLevel represents an unusable system.
	EmergencyLevel
	// NoneLevel suppresses all output. It is never a valid level for a record.
	NoneLevel
)

// String returns the upper-case tag of a log level.
func (l Level) String() string {
	switch l {
	case VerboseLevel:
		return "VERBOSE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case NoticeLevel:
		return "NOTICE"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case SevereLevel:
		return "SEVERE"
	case AlertLevel:
		return "ALERT"
	case EmergencyLevel:
		return "EMERGENCY"
	case NoneLevel:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// IsValid returns true if the level can be attached to a record.
func (l Level) IsValid() bool {
	return l <= EmergencyLevel
}

// Levels returns every level a record can carry, from lowest to highest.
func Levels() []Level {
	return []Level{
		VerboseLevel,
		DebugLevel,
		InfoLevel,
		NoticeLevel,
		WarningLevel,
		ErrorLevel,
		SevereLevel,
		AlertLevel,
		EmergencyLevel,
	}
}

// ParseLevel parses a case-insensitive level name. A few aliases used by other
// logging libraries are accepted as well.
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "verbose", "trace":
		return VerboseLevel, nil
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "notice":
		return NoticeLevel, nil
	case "warning", "warn":
		return WarningLevel, nil
	case "error":
		return ErrorLevel, nil
	case "severe", "critical":
		return SevereLevel, nil
	case "alert":
		return AlertLevel, nil
	case "emergency", "fatal":
		return EmergencyLevel, nil
	case "none", "off":
		return NoneLevel, nil
	default:
		return NoneLevel, ewrap.New("invalid log level").WithMetadata("level", level)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(l.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}

	*l = parsed

	return nil
}
