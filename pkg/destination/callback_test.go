package destination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhopkin/xcglogger"
)

func TestCallbackReceivesLines(t *testing.T) {
	var lines []string

	opts := *levelOnly("")
	opts.Filters = []xcglogger.Filter{xcglogger.MessageFilter("secret")}

	callback, err := NewCallback(opts, func(line string) {
		lines = append(lines, line)
	})
	require.NoError(t, err)
	assert.Equal(t, "xcglogger.destination.callback", callback.Identifier())

	logger := xcglogger.New("app", xcglogger.WithDestinations(callback))

	logger.Notice("hello")
	logger.Notice("secret token")
	logger.Verbose("below threshold")

	assert.Equal(t, []string{"[NOTICE] > hello"}, lines)
}

func TestCallbackRequiresFunction(t *testing.T) {
	_, err := NewCallback(xcglogger.DefaultOptions("cb"), nil)
	require.Error(t, err)
}

func TestCallbackPanicIsContained(t *testing.T) {
	callback, err := NewCallback(xcglogger.DefaultOptions("cb"), func(string) {
		panic("callback failed")
	})
	require.NoError(t, err)

	var after []string

	tail, err := NewCallback(xcglogger.DefaultOptions("tail"), func(line string) {
		after = append(after, line)
	})
	require.NoError(t, err)

	logger := xcglogger.New("app", xcglogger.WithDestinations(callback, tail))

	assert.NotPanics(t, func() { logger.Info("x") })
	assert.Len(t, after, 1)
}
