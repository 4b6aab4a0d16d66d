package xcglogger

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/hyp3rd/ewrap"

	"github.com/simonhopkin/xcglogger/internal/output"
)

// Destination receives records from a Logger. A destination belongs to at
// most one logger at a time.
type Destination interface {
	// Identifier returns the name the destination is registered under.
	Identifier() string
	// Owner returns the logger the destination is registered with, or nil.
	Owner() *Logger
	// SwapOwner sets the owner to next if it is currently old and reports
	// whether it did. It is called by the Logger.
	SwapOwner(old, next *Logger) bool
	// Configure applies fn to a copy of the destination's options and stores
	// the result. The identifier cannot be changed.
	Configure(fn func(*Options))
	// Options returns a copy of the destination's current options.
	Options() Options
	// IsEnabledFor reports whether records at level pass the destination's threshold.
	IsEnabledFor(level Level) bool
	// Process handles a record that has passed the logger's gate.
	Process(rec Record)
}

// Outputter writes a fully rendered line. It is the one behavior every
// concrete destination must supply.
type Outputter interface {
	Output(rec Record, message string)
}

// Flusher is implemented by destinations that buffer or queue output.
type Flusher interface {
	Flush() error
}

// Options controls which records a destination accepts and how they render.
type Options struct {
	Identifier        string
	Level             Level
	ShowDate          bool
	ShowLevel         bool
	ShowLogIdentifier bool
	ShowThreadName    bool
	ShowFileName      bool
	ShowLineNumber    bool
	ShowFunctionName  bool
	Filters           []Filter
	Formatters        []Formatter
}

// DefaultOptions returns the display defaults: Debug threshold, every detail
// shown except the logger identifier and the thread name.
func DefaultOptions(identifier string) Options {
	return Options{
		Identifier:       identifier,
		Level:            DebugLevel,
		ShowDate:         true,
		ShowLevel:        true,
		ShowFileName:     true,
		ShowLineNumber:   true,
		ShowFunctionName: true,
	}
}

func (o Options) clone() Options {
	o.Filters = slices.Clone(o.Filters)
	o.Formatters = slices.Clone(o.Formatters)

	return o
}

// BaseOption configures a Base.
type BaseOption func(*Base)

// WithQueue gives the destination a serial queue. Records are rendered and
// output on the queue's worker in the order they were dispatched.
func WithQueue(config QueueConfig) BaseOption {
	return func(b *Base) {
		b.queueConfig = &config
	}
}

// WithErrorHandler sets the handler for errors that cannot be returned to a
// caller, such as failed writes. The default prints to stderr.
func WithErrorHandler(handler func(error)) BaseOption {
	return func(b *Base) {
		if handler != nil {
			b.errorHandler = handler
		}
	}
}

// Base carries the state and the rendering pipeline every destination shares.
// Concrete destinations embed *Base, implement Output, and implement Process
// by calling Dispatch with themselves.
type Base struct {
	mu           sync.RWMutex
	opts         Options
	owner        atomic.Pointer[Logger]
	queueConfig  *QueueConfig
	queue        *output.Queue
	errorHandler func(error)
	closed       atomic.Bool
}

// NewBase creates a Base with the given options.
func NewBase(opts Options, baseOpts ...BaseOption) *Base {
	b := &Base{
		opts:         opts.clone(),
		errorHandler: defaultErrorHandler,
	}

	for _, opt := range baseOpts {
		opt(b)
	}

	if b.queueConfig != nil {
		cfg := *b.queueConfig

		var reporter func(output.QueueMetrics)
		if cfg.MetricsReporter != nil {
			reporter = func(m output.QueueMetrics) {
				cfg.MetricsReporter(toQueueMetrics(m))
			}
		}

		b.queue = output.NewQueue(output.QueueConfig{
			BufferSize:      cfg.BufferSize,
			WaitTimeout:     cfg.WaitTimeout,
			ErrorHandler:    b.ReportError,
			MetricsReporter: reporter,
		})
	}

	return b
}

func defaultErrorHandler(err error) {
	fmt.Fprintf(os.Stderr, "xcglogger: %v\n", err)
}

// Identifier returns the destination identifier.
func (b *Base) Identifier() string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.opts.Identifier
}

// Owner returns the owning logger, or nil.
func (b *Base) Owner() *Logger {
	return b.owner.Load()
}

// SwapOwner sets the owner to next if it is currently old.
func (b *Base) SwapOwner(old, next *Logger) bool {
	return b.owner.CompareAndSwap(old, next)
}

// Configure applies fn to a copy of the options and stores the result.
func (b *Base) Configure(fn func(*Options)) {
	if fn == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	next := b.opts.clone()
	fn(&next)
	next.Identifier = b.opts.Identifier
	b.opts = next
}

// Options returns a copy of the current options.
func (b *Base) Options() Options {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.opts.clone()
}

// Level returns the destination threshold.
func (b *Base) Level() Level {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.opts.Level
}

// SetLevel sets the destination threshold.
func (b *Base) SetLevel(level Level) {
	b.mu.Lock()
	b.opts.Level = level
	b.mu.Unlock()
}

// IsEnabledFor reports whether level reaches the destination threshold.
func (b *Base) IsEnabledFor(level Level) bool {
	if !level.IsValid() {
		return false
	}

	return level >= b.Level()
}

// Async reports whether the destination owns a serial queue.
func (b *Base) Async() bool {
	return b.queue != nil
}

// Render runs the filter chain, prefixes the enabled details and runs the
// formatter chain. It returns false when a filter vetoes the record.
func (b *Base) Render(rec Record) (string, bool) {
	return b.render(b.Owner(), rec)
}

// render formats rec with the date layout and level descriptions of owner,
// which may be nil.
func (b *Base) render(owner *Logger, rec Record) (string, bool) {
	b.mu.RLock()
	opts := b.opts
	b.mu.RUnlock()

	for _, filter := range opts.Filters {
		if filter != nil && filter(rec, rec.Message) {
			return "", false
		}
	}

	line := details(owner, opts, rec) + "> " + rec.Message

	for _, formatter := range opts.Formatters {
		if formatter != nil {
			line = formatter(rec, line)
		}
	}

	return line, true
}

func details(owner *Logger, opts Options, rec Record) string {
	var sb strings.Builder

	if opts.ShowDate {
		writeBracketed(&sb, owner.FormatDate(rec.Time))
	}

	if opts.ShowLevel {
		writeBracketed(&sb, owner.LevelDescription(rec.Level))
	}

	if opts.ShowLogIdentifier && rec.Logger != "" {
		writeBracketed(&sb, rec.Logger)
	}

	if opts.ShowThreadName && rec.Thread != "" {
		writeBracketed(&sb, rec.Thread)
	}

	fileName := ""
	if opts.ShowFileName {
		fileName = rec.FileName()
	}

	line := ""
	if opts.ShowLineNumber && rec.Line > 0 {
		line = strconv.Itoa(rec.Line)
	}

	switch {
	case fileName != "" && line != "":
		writeBracketed(&sb, fileName+":"+line)
	case fileName != "":
		writeBracketed(&sb, fileName)
	case line != "":
		writeBracketed(&sb, line)
	}

	if opts.ShowFunctionName && rec.Function != "" {
		sb.WriteString(rec.Function)
		sb.WriteByte(' ')
	}

	return sb.String()
}

func writeBracketed(sb *strings.Builder, value string) {
	sb.WriteByte('[')
	sb.WriteString(value)
	sb.WriteString("] ")
}

// Dispatch renders rec and hands the line to out. With a queue, both steps run
// on the queue's worker; the caller only blocks when the buffer is full. The
// owner is read at dispatch time, so a queued record renders with the date
// layout and level descriptions of the logger that logged it.
func (b *Base) Dispatch(rec Record, out Outputter) {
	if b.closed.Load() {
		b.ReportError(ewrap.Wrap(ErrDestinationClosed, "record discarded").
			WithMetadata("destination", b.Identifier()))

		return
	}

	owner := b.Owner()

	if b.queue == nil {
		b.deliver(owner, rec, out)

		return
	}

	err := b.queue.Enqueue(func() {
		b.deliver(owner, rec, out)
	})
	if err != nil {
		b.ReportError(ewrap.Wrap(ErrDestinationClosed, "record discarded").
			WithMetadata("destination", b.Identifier()))
	}
}

func (b *Base) deliver(owner *Logger, rec Record, out Outputter) {
	line, ok := b.render(owner, rec)
	if !ok {
		return
	}

	out.Output(rec, line)
}

// Do runs task on the destination's queue after every record dispatched
// before it, and returns the task's error. Without a queue, task runs inline.
func (b *Base) Do(task func() error) error {
	if b.closed.Load() {
		return ErrDestinationClosed
	}

	if b.queue == nil {
		return task()
	}

	err := b.queue.Do(task)
	if errors.Is(err, output.ErrQueueClosed) {
		return ErrDestinationClosed
	}

	return err
}

// Flush waits until every record dispatched so far has been output.
func (b *Base) Flush() error {
	if b.queue == nil || b.closed.Load() {
		return nil
	}

	return b.queue.Flush()
}

// Close drains and stops the queue. Later records are reported as errors.
func (b *Base) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}

	if b.queue == nil {
		return nil
	}

	return b.queue.Close()
}

// Closed reports whether Close has been called.
func (b *Base) Closed() bool {
	return b.closed.Load()
}

// QueueMetrics returns the queue counters. It is zero for synchronous destinations.
func (b *Base) QueueMetrics() QueueMetrics {
	if b.queue == nil {
		return QueueMetrics{}
	}

	return toQueueMetrics(b.queue.Metrics())
}

// ReportError hands err to the destination's error handler.
func (b *Base) ReportError(err error) {
	if err == nil {
		return
	}

	b.errorHandler(err)
}
