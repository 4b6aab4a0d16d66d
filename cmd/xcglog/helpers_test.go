package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/simonhopkin/xcglogger"
	"github.com/simonhopkin/xcglogger/pkg/destination"
)

func captureDestination(t *testing.T, opts xcglogger.Options, lines *[]string) *destination.Callback {
	t.Helper()

	callback, err := destination.NewCallback(opts, func(line string) {
		*lines = append(*lines, line)
	})
	require.NoError(t, err)

	return callback
}
