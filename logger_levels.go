package xcglogger

import "context"

// Verbose logs msg at VerboseLevel.
func (l *Logger) Verbose(msg string) {
	l.log(context.Background(), VerboseLevel, staticMessage(msg))
}

// Verbosef logs a formatted message at VerboseLevel.
func (l *Logger) Verbosef(format string, args ...any) {
	l.log(context.Background(), VerboseLevel, formatMessage(format, args))
}

// VerboseFunc logs the result of fn at VerboseLevel. fn runs only when the level is enabled.
func (l *Logger) VerboseFunc(fn func() string) {
	l.log(context.Background(), VerboseLevel, lazyMessage(fn))
}

// Debug logs msg at DebugLevel.
func (l *Logger) Debug(msg string) {
	l.log(context.Background(), DebugLevel, staticMessage(msg))
}

// Debugf logs a formatted message at DebugLevel.
func (l *Logger) Debugf(format string, args ...any) {
	l.log(context.Background(), DebugLevel, formatMessage(format, args))
}

// DebugFunc logs the result of fn at DebugLevel. fn runs only when the level is enabled.
func (l *Logger) DebugFunc(fn func() string) {
	l.log(context.Background(), DebugLevel, lazyMessage(fn))
}

// Info logs msg at InfoLevel.
func (l *Logger) Info(msg string) {
	l.log(context.Background(), InfoLevel, staticMessage(msg))
}

// Infof logs a formatted message at InfoLevel.
func (l *Logger) Infof(format string, args ...any) {
	l.log(context.Background(), InfoLevel, formatMessage(format, args))
}

// InfoFunc logs the result of fn at InfoLevel. fn runs only when the level is enabled.
func (l *Logger) InfoFunc(fn func() string) {
	l.log(context.Background(), InfoLevel, lazyMessage(fn))
}

// Notice logs msg at NoticeLevel.
func (l *Logger) Notice(msg string) {
	l.log(context.Background(), NoticeLevel, staticMessage(msg))
}

// Noticef logs a formatted message at NoticeLevel.
func (l *Logger) Noticef(format string, args ...any) {
	l.log(context.Background(), NoticeLevel, formatMessage(format, args))
}

// NoticeFunc logs the result of fn at NoticeLevel. fn runs only when the level is enabled.
func (l *Logger) NoticeFunc(fn func() string) {
	l.log(context.Background(), NoticeLevel, lazyMessage(fn))
}

// Warning logs msg at WarningLevel.
func (l *Logger) Warning(msg string) {
	l.log(context.Background(), WarningLevel, staticMessage(msg))
}

// Warningf logs a formatted message at WarningLevel.
func (l *Logger) Warningf(format string, args ...any) {
	l.log(context.Background(), WarningLevel, formatMessage(format, args))
}

// WarningFunc logs the result of fn at WarningLevel. fn runs only when the level is enabled.
func (l *Logger) WarningFunc(fn func() string) {
	l.log(context.Background(), WarningLevel, lazyMessage(fn))
}

// Error logs msg at ErrorLevel.
func (l *Logger) Error(msg string) {
	l.log(context.Background(), ErrorLevel, staticMessage(msg))
}

// Errorf logs a formatted message at ErrorLevel.
func (l *Logger) Errorf(format string, args ...any) {
	l.log(context.Background(), ErrorLevel, formatMessage(format, args))
}

// ErrorFunc logs the result of fn at ErrorLevel. fn runs only when the level is enabled.
func (l *Logger) ErrorFunc(fn func() string) {
	l.log(context.Background(), ErrorLevel, lazyMessage(fn))
}

// Severe logs msg at SevereLevel.
func (l *Logger) Severe(msg string) {
	l.log(context.Background(), SevereLevel, staticMessage(msg))
}

// Severef logs a formatted message at SevereLevel.
func (l *Logger) Severef(format string, args ...any) {
	l.log(context.Background(), SevereLevel, formatMessage(format, args))
}

// SevereFunc logs the result of fn at SevereLevel. fn runs only when the level is enabled.
func (l *Logger) SevereFunc(fn func() string) {
	l.log(context.Background(), SevereLevel, lazyMessage(fn))
}

// Alert logs msg at AlertLevel.
func (l *Logger) Alert(msg string) {
	l.log(context.Background(), AlertLevel, staticMessage(msg))
}

// Alertf logs a formatted message at AlertLevel.
func (l *Logger) Alertf(format string, args ...any) {
	l.log(context.Background(), AlertLevel, formatMessage(format, args))
}

// AlertFunc logs the result of fn at AlertLevel. fn runs only when the level is enabled.
func (l *Logger) AlertFunc(fn func() string) {
	l.log(context.Background(), AlertLevel, lazyMessage(fn))
}

// Emergency logs msg at EmergencyLevel.
func (l *Logger) Emergency(msg string) {
	l.log(context.Background(), EmergencyLevel, staticMessage(msg))
}

// Emergencyf logs a formatted message at EmergencyLevel.
func (l *Logger) Emergencyf(format string, args ...any) {
	l.log(context.Background(), EmergencyLevel, formatMessage(format, args))
}

// EmergencyFunc logs the result of fn at EmergencyLevel. fn runs only when the level is enabled.
func (l *Logger) EmergencyFunc(fn func() string) {
	l.log(context.Background(), EmergencyLevel, lazyMessage(fn))
}
