package xcglogger

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2024, 3, 9, 14, 5, 6, 789_000_000, time.UTC)

func testRecord() Record {
	return Record{
		Time:     testTime,
		Level:    ErrorLevel,
		Message:  "y",
		Function: "app.run",
		File:     "/src/app/main.go",
		Line:     42,
		Thread:   "main",
		Logger:   "app",
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions("dest")

	assert.Equal(t, "dest", opts.Identifier)
	assert.Equal(t, DebugLevel, opts.Level)
	assert.True(t, opts.ShowDate)
	assert.True(t, opts.ShowLevel)
	assert.True(t, opts.ShowFileName)
	assert.True(t, opts.ShowLineNumber)
	assert.True(t, opts.ShowFunctionName)
	assert.False(t, opts.ShowLogIdentifier)
	assert.False(t, opts.ShowThreadName)
	assert.Empty(t, opts.Filters)
	assert.Empty(t, opts.Formatters)
}

func TestRenderDetails(t *testing.T) {
	tests := []struct {
		name      string
		configure func(*Options)
		expected  string
	}{
		{
			name:      "defaults",
			configure: func(*Options) {},
			expected:  "[2024-03-09 14:05:06.789] [ERROR] [main.go:42] app.run > y",
		},
		{
			name: "everything",
			configure: func(o *Options) {
				o.ShowLogIdentifier = true
				o.ShowThreadName = true
			},
			expected: "[2024-03-09 14:05:06.789] [ERROR] [app] [main] [main.go:42] app.run > y",
		},
		{
			name: "level only",
			configure: func(o *Options) {
				bareOptions(o)
				o.ShowLevel = true
			},
			expected: "[ERROR] > y",
		},
		{
			name: "file without line",
			configure: func(o *Options) {
				bareOptions(o)
				o.ShowFileName = true
			},
			expected: "[main.go] > y",
		},
		{
			name: "line without file",
			configure: func(o *Options) {
				bareOptions(o)
				o.ShowLineNumber = true
			},
			expected: "[42] > y",
		},
		{
			name:      "nothing",
			configure: bareOptions,
			expected:  "> y",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := NewBase(DefaultOptions("dest"))
			base.Configure(tt.configure)

			line, ok := base.Render(testRecord())
			require.True(t, ok)
			assert.Equal(t, tt.expected, line)
		})
	}
}

func TestRenderUsesOwner(t *testing.T) {
	logger := New("app",
		WithDateFormat("15:04"),
		WithUTC(true),
		WithLevelDescription(ErrorLevel, "E"),
	)

	base := NewBase(DefaultOptions("dest"))
	base.Configure(func(o *Options) {
		bareOptions(o)
		o.ShowDate = true
		o.ShowLevel = true
	})
	require.True(t, base.SwapOwner(nil, logger))

	line, ok := base.Render(testRecord())
	require.True(t, ok)
	assert.Equal(t, "[14:05] [E] > y", line)
}

func TestRenderFilterVetoSkipsRest(t *testing.T) {
	var laterFilter, formatterRan bool

	base := NewBase(DefaultOptions("dest"))
	base.Configure(func(o *Options) {
		o.Filters = []Filter{
			func(Record, string) bool { return true },
			func(Record, string) bool {
				laterFilter = true

				return false
			},
		}
		o.Formatters = []Formatter{
			func(_ Record, line string) string {
				formatterRan = true

				return line
			},
		}
	})

	_, ok := base.Render(testRecord())
	assert.False(t, ok)
	assert.False(t, laterFilter)
	assert.False(t, formatterRan)
}

func TestRenderFormattersRunInOrder(t *testing.T) {
	base := NewBase(DefaultOptions("dest"))
	base.Configure(func(o *Options) {
		bareOptions(o)
		o.Formatters = []Formatter{
			PrefixPostfixFormatter("(", ")"),
			PrefixPostfixFormatter("1", ""),
		}
	})

	line, ok := base.Render(testRecord())
	require.True(t, ok)
	assert.Equal(t, "1(> y)", line)
}

func TestConfigureKeepsIdentifier(t *testing.T) {
	base := NewBase(DefaultOptions("dest"))
	base.Configure(func(o *Options) {
		o.Identifier = "renamed"
		o.Level = WarningLevel
	})

	assert.Equal(t, "dest", base.Identifier())
	assert.Equal(t, WarningLevel, base.Level())
}

func TestOptionsReturnsCopy(t *testing.T) {
	base := NewBase(DefaultOptions("dest"))
	base.Configure(func(o *Options) {
		o.Filters = []Filter{MessageFilter("x")}
	})

	opts := base.Options()
	opts.Filters[0] = nil
	opts.Level = NoneLevel

	assert.NotNil(t, base.Options().Filters[0])
	assert.Equal(t, DebugLevel, base.Level())
}

func TestIsEnabledFor(t *testing.T) {
	base := NewBase(DefaultOptions("dest"))
	base.SetLevel(WarningLevel)

	assert.False(t, base.IsEnabledFor(NoticeLevel))
	assert.True(t, base.IsEnabledFor(WarningLevel))
	assert.True(t, base.IsEnabledFor(EmergencyLevel))
	assert.False(t, base.IsEnabledFor(NoneLevel))
}

func TestQueuedDispatchPreservesOrder(t *testing.T) {
	dest := newMemoryDestination("queued", VerboseLevel, WithQueue(QueueConfig{BufferSize: 4}))
	dest.Configure(bareOptions)

	rec := testRecord()

	for _, msg := range []string{"a", "b", "c", "d", "e", "f"} {
		rec.Message = msg
		dest.Process(rec)
	}

	require.NoError(t, dest.Flush())
	assert.Equal(t, []string{"> a", "> b", "> c", "> d", "> e", "> f"}, dest.Lines())
	assert.True(t, dest.Async())
	assert.GreaterOrEqual(t, dest.QueueMetrics().Processed, uint64(6))

	require.NoError(t, dest.Close())
}

func TestDispatchAfterCloseReportsError(t *testing.T) {
	var (
		mu   sync.Mutex
		errs []error
	)

	dest := newMemoryDestination("closed", VerboseLevel,
		WithQueue(QueueConfig{}),
		WithErrorHandler(func(err error) {
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		}),
	)

	require.NoError(t, dest.Close())
	require.NoError(t, dest.Close())
	assert.True(t, dest.Closed())

	dest.Process(testRecord())
	assert.Empty(t, dest.Lines())

	mu.Lock()
	defer mu.Unlock()

	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrDestinationClosed)
	assert.ErrorIs(t, dest.Do(func() error { return nil }), ErrDestinationClosed)
}

func TestDoRunsAfterQueuedRecords(t *testing.T) {
	dest := newMemoryDestination("queued", VerboseLevel, WithQueue(QueueConfig{}))
	dest.Configure(bareOptions)

	for range 10 {
		dest.Process(testRecord())
	}

	var seen int

	err := dest.Do(func() error {
		seen = len(dest.Lines())

		return errors.New("task failed")
	})
	require.EqualError(t, err, "task failed")
	assert.Equal(t, 10, seen)

	require.NoError(t, dest.Close())
}

func TestDoRunsInlineWithoutQueue(t *testing.T) {
	base := NewBase(DefaultOptions("sync"))

	ran := false

	require.NoError(t, base.Do(func() error {
		ran = true

		return nil
	}))
	assert.True(t, ran)
	assert.False(t, base.Async())
	assert.Equal(t, QueueMetrics{}, base.QueueMetrics())
	require.NoError(t, base.Flush())
}
