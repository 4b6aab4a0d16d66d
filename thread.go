package xcglogger

import (
	"bytes"
	"context"
	"runtime"
	"strconv"
)

// MainThreadLabel is the label reported for the main goroutine.
const MainThreadLabel = "main"

type threadNameKey struct{}

type queueLabelKey struct{}

// WithThreadName returns a context that labels records logged with it.
// An empty name leaves ctx unchanged.
func WithThreadName(ctx context.Context, name string) context.Context {
	if name == "" {
		return ctx
	}

	return context.WithValue(ctx, threadNameKey{}, name)
}

// WithQueueLabel returns a context carrying the label of the work queue the
// caller runs on. A thread name set with WithThreadName takes precedence.
func WithQueueLabel(ctx context.Context, label string) context.Context {
	if label == "" {
		return ctx
	}

	return context.WithValue(ctx, queueLabelKey{}, label)
}

// ThreadName returns the thread name stored in ctx, if any.
func ThreadName(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}

	name, ok := ctx.Value(threadNameKey{}).(string)

	return name, ok && name != ""
}

// QueueLabel returns the queue label stored in ctx, if any.
func QueueLabel(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}

	label, ok := ctx.Value(queueLabelKey{}).(string)

	return label, ok && label != ""
}

// ThreadLabel resolves the label of the calling goroutine: "main" for the
// main goroutine, then the context thread name, then the context queue label,
// and finally "goroutine-<id>".
func ThreadLabel(ctx context.Context) string {
	return resolveThreadLabel(ctx, goroutineID())
}

func resolveThreadLabel(ctx context.Context, id uint64) string {
	if id == 1 {
		return MainThreadLabel
	}

	if name, ok := ThreadName(ctx); ok {
		return name
	}

	if label, ok := QueueLabel(ctx); ok {
		return label
	}

	return "goroutine-" + strconv.FormatUint(id, 10)
}

var goroutinePrefix = []byte("goroutine ")

// goroutineID parses the id from the first line of the goroutine's stack,
// which has the form "goroutine 42 [running]:". It returns 0 if the header
// cannot be parsed.
func goroutineID() uint64 {
	var buf [64]byte

	n := runtime.Stack(buf[:], false)
	header := bytes.TrimPrefix(buf[:n], goroutinePrefix)

	end := bytes.IndexByte(header, ' ')
	if end < 0 {
		return 0
	}

	id, err := strconv.ParseUint(string(header[:end]), 10, 64)
	if err != nil {
		return 0
	}

	return id
}
