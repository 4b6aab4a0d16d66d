package xcglogger

import (
	"context"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveThreadLabel(t *testing.T) {
	named := WithThreadName(context.Background(), "worker")
	queued := WithQueueLabel(context.Background(), "com.example.queue")
	both := WithQueueLabel(named, "com.example.queue")

	tests := []struct {
		name     string
		ctx      context.Context
		id       uint64
		expected string
	}{
		{"main goroutine", context.Background(), 1, MainThreadLabel},
		{"main ignores context", named, 1, MainThreadLabel},
		{"thread name", named, 7, "worker"},
		{"queue label", queued, 7, "com.example.queue"},
		{"name before queue", both, 7, "worker"},
		{"fallback", context.Background(), 7, "goroutine-7"},
		{"nil context", nil, 9, "goroutine-9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolveThreadLabel(tt.ctx, tt.id))
		})
	}
}

func TestWithThreadNameEmpty(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, ctx, WithThreadName(ctx, ""))
	assert.Equal(t, ctx, WithQueueLabel(ctx, ""))

	_, ok := ThreadName(ctx)
	assert.False(t, ok)
}

func TestGoroutineID(t *testing.T) {
	id := goroutineID()
	require.NotZero(t, id)
	assert.Equal(t, id, goroutineID())

	var (
		wg    sync.WaitGroup
		other uint64
	)

	wg.Go(func() {
		other = goroutineID()
	})
	wg.Wait()

	assert.NotZero(t, other)
	assert.NotEqual(t, id, other)
}

func TestThreadLabelInBackgroundGoroutine(t *testing.T) {
	var (
		wg      sync.WaitGroup
		named   string
		unnamed string
		id      uint64
	)

	wg.Go(func() {
		named = ThreadLabel(WithThreadName(context.Background(), "uploader"))
		unnamed = ThreadLabel(context.Background())
		id = goroutineID()
	})
	wg.Wait()

	assert.Equal(t, "uploader", named)
	assert.Equal(t, "goroutine-"+strconv.FormatUint(id, 10), unnamed)
}
