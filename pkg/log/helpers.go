package log

import "github.com/simonhopkin/xcglogger"

// Verbose logs msg at Verbose level on the default logger.
func Verbose(msg string) {
	logAt(xcglogger.VerboseLevel, static(msg))
}

// Verbosef logs a formatted message at Verbose level on the default logger.
func Verbosef(format string, args ...any) {
	logAt(xcglogger.VerboseLevel, formatted(format, args))
}

// Debug logs msg at Debug level on the default logger.
func Debug(msg string) {
	logAt(xcglogger.DebugLevel, static(msg))
}

// Debugf logs a formatted message at Debug level on the default logger.
func Debugf(format string, args ...any) {
	logAt(xcglogger.DebugLevel, formatted(format, args))
}

// Info logs msg at Info level on the default logger.
func Info(msg string) {
	logAt(xcglogger.InfoLevel, static(msg))
}

// Infof logs a formatted message at Info level on the default logger.
func Infof(format string, args ...any) {
	logAt(xcglogger.InfoLevel, formatted(format, args))
}

// Notice logs msg at Notice level on the default logger.
func Notice(msg string) {
	logAt(xcglogger.NoticeLevel, static(msg))
}

// Noticef logs a formatted message at Notice level on the default logger.
func Noticef(format string, args ...any) {
	logAt(xcglogger.NoticeLevel, formatted(format, args))
}

// Warning logs msg at Warning level on the default logger.
func Warning(msg string) {
	logAt(xcglogger.WarningLevel, static(msg))
}

// Warningf logs a formatted message at Warning level on the default logger.
func Warningf(format string, args ...any) {
	logAt(xcglogger.WarningLevel, formatted(format, args))
}

// Error logs msg at Error level on the default logger.
func Error(msg string) {
	logAt(xcglogger.ErrorLevel, static(msg))
}

// Errorf logs a formatted message at Error level on the default logger.
func Errorf(format string, args ...any) {
	logAt(xcglogger.ErrorLevel, formatted(format, args))
}

// Severe logs msg at Severe level on the default logger.
func Severe(msg string) {
	logAt(xcglogger.SevereLevel, static(msg))
}

// Severef logs a formatted message at Severe level on the default logger.
func Severef(format string, args ...any) {
	logAt(xcglogger.SevereLevel, formatted(format, args))
}

// Alert logs msg at Alert level on the default logger.
func Alert(msg string) {
	logAt(xcglogger.AlertLevel, static(msg))
}

// Alertf logs a formatted message at Alert level on the default logger.
func Alertf(format string, args ...any) {
	logAt(xcglogger.AlertLevel, formatted(format, args))
}

// Emergency logs msg at Emergency level on the default logger.
func Emergency(msg string) {
	logAt(xcglogger.EmergencyLevel, static(msg))
}

// Emergencyf logs a formatted message at Emergency level on the default logger.
func Emergencyf(format string, args ...any) {
	logAt(xcglogger.EmergencyLevel, formatted(format, args))
}
