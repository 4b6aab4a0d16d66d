// Package xcglogger defines a level-filtered logging façade that fans records
// out to independently configured destinations.
//
// This package provides:
// - Nine ordered severity levels plus None to silence everything
// - An ordered destination registry that can change while logging
// - Lazy message producers that are never evaluated for disabled levels
// - Per-destination thresholds, filter chains and formatter chains
// - Thread labels derived from the goroutine or the context
//
// Concrete destinations (console, file with rotation, system log and callback)
// live in the destination package; pkg/log assembles them from a Config.
//
// Basic usage:
//
//	log := xcglogger.New("app")
//	console := destination.NewConsole(destination.ConsoleOptions{})
//	if err := log.AddDestination(console); err != nil {
//		panic(err)
//	}
//
//	log.Info("Application started")
//	log.DebugFunc(func() string { return expensiveDump() })
//
// Always call Close() before application exit to ensure all records are written:
//
//	defer log.Close()
package xcglogger

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hyp3rd/ewrap"
)

// DefaultDateFormat is the layout used to render record dates.
const DefaultDateFormat = "2006-01-02 15:04:05.000"

// Option configures a Logger.
type Option func(*Logger)

// WithLevel sets the logger's global level.
func WithLevel(level Level) Option {
	return func(l *Logger) {
		l.level.Store(uint32(level))
	}
}

// WithDateFormat sets the time layout used for the date detail.
func WithDateFormat(layout string) Option {
	return func(l *Logger) {
		if layout != "" {
			l.dateFormat = layout
		}
	}
}

// WithUTC renders dates in UTC instead of local time.
func WithUTC(utc bool) Option {
	return func(l *Logger) {
		l.utc = utc
	}
}

// WithLevelDescription overrides the text rendered for level.
func WithLevelDescription(level Level, description string) Option {
	return func(l *Logger) {
		l.descriptions[level] = description
	}
}

// WithDestinations registers destinations as the logger is created. Invalid
// destinations are reported to stderr and skipped.
func WithDestinations(destinations ...Destination) Option {
	return func(l *Logger) {
		l.pending = append(l.pending, destinations...)
	}
}

// Logger routes records to its destinations. All methods are safe for
// concurrent use.
type Logger struct {
	identifier   string
	level        atomic.Uint32
	dateFormat   string
	utc          bool
	descriptions map[Level]string

	mu           sync.Mutex
	destinations atomic.Pointer[[]Destination]
	pending      []Destination
}

// New creates a logger with the given identifier. The global level defaults
// to Debug; a logger without destinations discards everything.
func New(identifier string, opts ...Option) *Logger {
	l := &Logger{
		identifier:   identifier,
		dateFormat:   DefaultDateFormat,
		descriptions: make(map[Level]string),
	}

	l.level.Store(uint32(DebugLevel))
	l.destinations.Store(&[]Destination{})

	for _, opt := range opts {
		opt(l)
	}

	pending := l.pending
	l.pending = nil

	for _, dest := range pending {
		if err := l.AddDestination(dest); err != nil {
			fmt.Fprintf(os.Stderr, "xcglogger: %v\n", err)
		}
	}

	return l
}

// Identifier returns the logger identifier.
func (l *Logger) Identifier() string {
	return l.identifier
}

// Level returns the global level.
func (l *Logger) Level() Level {
	return Level(l.level.Load())
}

// SetLevel changes the global level. Destination thresholds are not touched.
func (l *Logger) SetLevel(level Level) {
	l.level.Store(uint32(level))
}

// DateFormat returns the date layout. It is safe to call on a nil logger.
func (l *Logger) DateFormat() string {
	if l == nil || l.dateFormat == "" {
		return DefaultDateFormat
	}

	return l.dateFormat
}

// FormatDate renders t with the logger's date layout. It is safe to call on a
// nil logger.
func (l *Logger) FormatDate(t time.Time) string {
	if l != nil && l.utc {
		t = t.UTC()
	}

	return t.Format(l.DateFormat())
}

// LevelDescription returns the text rendered for level. It is safe to call on
// a nil logger.
func (l *Logger) LevelDescription(level Level) string {
	if l != nil {
		if description, ok := l.descriptions[level]; ok {
			return description
		}
	}

	return level.String()
}

// EffectiveLevel returns the lowest level that can reach any destination: the
// higher of the global level and the lowest destination threshold. Without
// destinations it is None.
func (l *Logger) EffectiveLevel() Level {
	destinations := l.snapshot()
	if len(destinations) == 0 {
		return NoneLevel
	}

	lowest := NoneLevel

	for _, dest := range destinations {
		if level := destinationLevel(dest); level < lowest {
			lowest = level
		}
	}

	return max(l.Level(), lowest)
}

type leveler interface {
	Level() Level
}

func destinationLevel(dest Destination) Level {
	if lv, ok := dest.(leveler); ok {
		return lv.Level()
	}

	return dest.Options().Level
}

// IsEnabledFor reports whether a record at level would be built.
func (l *Logger) IsEnabledFor(level Level) bool {
	if !level.IsValid() {
		return false
	}

	return level >= l.EffectiveLevel()
}

// AddDestination registers dest. A destination with the same identifier is
// replaced in place and its owner cleared.
func (l *Logger) AddDestination(dest Destination) error {
	if dest == nil {
		return ErrNilDestination
	}

	id := dest.Identifier()
	if id == "" {
		return ErrInvalidIdentifier
	}

	for !dest.SwapOwner(nil, l) {
		owner := dest.Owner()
		if owner == l {
			break
		}

		if owner != nil {
			return ewrap.Wrap(ErrDestinationOwned, "cannot add destination").
				WithMetadata("destination", id).
				WithMetadata("owner", owner.Identifier())
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	current := *l.destinations.Load()
	next := make([]Destination, len(current), len(current)+1)
	copy(next, current)

	var replaced Destination

	index := -1

	for i, existing := range next {
		if existing.Identifier() == id {
			index = i

			break
		}
	}

	if index >= 0 {
		replaced = next[index]
		next[index] = dest
	} else {
		next = append(next, dest)
	}

	l.destinations.Store(&next)

	if replaced != nil && replaced != dest {
		replaced.SwapOwner(l, nil)
	}

	return nil
}

// RemoveDestination unregisters the destination with identifier id and
// clears its owner. It returns false if no such destination exists.
func (l *Logger) RemoveDestination(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	current := *l.destinations.Load()

	for i, dest := range current {
		if dest.Identifier() != id {
			continue
		}

		next := make([]Destination, 0, len(current)-1)
		next = append(next, current[:i]...)
		next = append(next, current[i+1:]...)
		l.destinations.Store(&next)
		dest.SwapOwner(l, nil)

		return true
	}

	return false
}

// Destination returns the destination registered as id.
func (l *Logger) Destination(id string) (Destination, bool) {
	for _, dest := range l.snapshot() {
		if dest.Identifier() == id {
			return dest, true
		}
	}

	return nil, false
}

// Destinations returns the registered destinations in insertion order.
func (l *Logger) Destinations() []Destination {
	current := l.snapshot()
	out := make([]Destination, len(current))
	copy(out, current)

	return out
}

func (l *Logger) snapshot() []Destination {
	return *l.destinations.Load()
}

// Sync flushes every destination that queues or buffers output.
func (l *Logger) Sync() error {
	eg := ewrap.NewErrorGroup()

	for _, dest := range l.snapshot() {
		if flusher, ok := dest.(Flusher); ok {
			if err := flusher.Flush(); err != nil {
				eg.Add(ewrap.Wrap(err, "flush failed").WithMetadata("destination", dest.Identifier()))
			}
		}
	}

	if eg.HasErrors() {
		return eg
	}

	return nil
}

// Close flushes and closes every destination and empties the registry.
func (l *Logger) Close() error {
	l.mu.Lock()
	current := *l.destinations.Load()
	l.destinations.Store(&[]Destination{})
	l.mu.Unlock()

	eg := ewrap.NewErrorGroup()

	for _, dest := range current {
		if flusher, ok := dest.(Flusher); ok {
			if err := flusher.Flush(); err != nil {
				eg.Add(ewrap.Wrap(err, "flush failed").WithMetadata("destination", dest.Identifier()))
			}
		}

		if closer, ok := dest.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				eg.Add(ewrap.Wrap(err, "close failed").WithMetadata("destination", dest.Identifier()))
			}
		}

		dest.SwapOwner(l, nil)
	}

	if eg.HasErrors() {
		return eg
	}

	return nil
}

type producer func() (string, bool)

func staticMessage(msg string) producer {
	return func() (string, bool) { return msg, true }
}

func lazyMessage(fn func() string) producer {
	return func() (string, bool) {
		if fn == nil {
			return "", true
		}

		return fn(), true
	}
}

func formatMessage(format string, args []any) producer {
	return func() (string, bool) {
		if len(args) == 0 {
			return format, true
		}

		return fmt.Sprintf(format, args...), true
	}
}

// log captures the call site two frames up. Every exported logging method
// must call it directly.
func (l *Logger) log(ctx context.Context, level Level, produce producer) {
	if !l.IsEnabledFor(level) {
		return
	}

	l.emit(ctx, level, produce, CallerAt(2))
}

// LogCaller logs with an explicitly supplied call site. It is the primitive
// for bridges that already know the function, file and line.
func (l *Logger) LogCaller(ctx context.Context, level Level, produce func() (string, bool), caller Caller) {
	if produce == nil || !l.IsEnabledFor(level) {
		return
	}

	l.emit(ctx, level, produce, caller)
}

func (l *Logger) emit(ctx context.Context, level Level, produce producer, caller Caller) {
	msg, ok := produce()
	if !ok {
		return
	}

	if ctx == nil {
		ctx = context.Background()
	}

	rec := Record{
		Time:     time.Now(),
		Level:    level,
		Message:  msg,
		Function: caller.Function,
		File:     caller.File,
		Line:     caller.Line,
		Thread:   ThreadLabel(ctx),
		Logger:   l.identifier,
	}

	for _, dest := range l.snapshot() {
		if dest.IsEnabledFor(level) {
			l.process(dest, rec)
		}
	}
}

func (l *Logger) process(dest Destination, rec Record) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "xcglogger: destination %q panicked: %v\n", dest.Identifier(), r)
		}
	}()

	dest.Process(rec)
}

// Log logs msg at level.
func (l *Logger) Log(level Level, msg string) {
	l.log(context.Background(), level, staticMessage(msg))
}

// Logf logs a formatted message at level. Formatting happens only when level is enabled.
func (l *Logger) Logf(level Level, format string, args ...any) {
	l.log(context.Background(), level, formatMessage(format, args))
}

// LogFunc logs the result of fn at level. fn runs only when level is enabled.
func (l *Logger) LogFunc(level Level, fn func() string) {
	l.log(context.Background(), level, lazyMessage(fn))
}

// LogOptional logs the result of fn at level unless fn reports false.
func (l *Logger) LogOptional(level Level, fn func() (string, bool)) {
	if fn == nil {
		return
	}

	l.log(context.Background(), level, fn)
}

// LogContext logs msg at level using ctx to resolve the thread label.
func (l *Logger) LogContext(ctx context.Context, level Level, msg string) {
	l.log(ctx, level, staticMessage(msg))
}

// LogFuncContext logs the result of fn at level using ctx to resolve the thread label.
func (l *Logger) LogFuncContext(ctx context.Context, level Level, fn func() string) {
	l.log(ctx, level, lazyMessage(fn))
}

// LogfContext logs a formatted message at level using ctx to resolve the thread label.
func (l *Logger) LogfContext(ctx context.Context, level Level, format string, args ...any) {
	l.log(ctx, level, formatMessage(format, args))
}
