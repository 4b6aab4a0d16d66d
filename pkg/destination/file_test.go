package destination

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhopkin/xcglogger"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := strings.TrimSuffix(string(data), "\n")
	if content == "" {
		return nil
	}

	return strings.Split(content, "\n")
}

func messageOnly(id string) *xcglogger.Options {
	opts := xcglogger.DefaultOptions(id)
	opts.ShowDate = false
	opts.ShowLevel = false
	opts.ShowFileName = false
	opts.ShowLineNumber = false
	opts.ShowFunctionName = false

	return &opts
}

func expectedLines(prefix string, from, to int) []string {
	lines := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		lines = append(lines, fmt.Sprintf("> %s-%d", prefix, i))
	}

	return lines
}

func TestFileAppendAndTruncate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte("> old\n"), 0o600))

	appended, err := NewFile(path, FileOptions{Options: messageOnly("file"), Append: true})
	require.NoError(t, err)

	logger := xcglogger.New("app", xcglogger.WithDestinations(appended))
	logger.Info("new")
	require.NoError(t, logger.Close())

	assert.Equal(t, []string{"> old", "> new"}, readLines(t, path))

	truncated, err := NewFile(path, FileOptions{Options: messageOnly("file")})
	require.NoError(t, err)
	require.NoError(t, truncated.Close())

	assert.Empty(t, readLines(t, path))
}

func TestFileInvalidPath(t *testing.T) {
	_, err := NewFile("", FileOptions{})
	require.Error(t, err)

	_, err = NewFile(t.TempDir(), FileOptions{})
	require.Error(t, err)
}

func TestFileRotation(t *testing.T) {
	for _, async := range []bool{false, true} {
		t.Run(fmt.Sprintf("async=%v", async), func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "app.log")
			archive := filepath.Join(dir, "app.1.log")

			file, err := NewFile(path, FileOptions{Options: messageOnly("file"), Async: async, BufferSize: 8})
			require.NoError(t, err)

			logger := xcglogger.New("app", xcglogger.WithDestinations(file))

			const n, m = 25, 17

			for i := range n {
				logger.Infof("rec-%d", i)
			}

			require.NoError(t, file.Rotate(archive))

			for i := n; i < n+m; i++ {
				logger.Infof("rec-%d", i)
			}

			require.NoError(t, logger.Close())

			assert.Equal(t, expectedLines("rec", 0, n), readLines(t, archive))
			assert.Equal(t, expectedLines("rec", n, n+m), readLines(t, path))
		})
	}
}

func TestFileRotationCollisionFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	archive := filepath.Join(dir, "archive.log")

	require.NoError(t, os.WriteFile(archive, []byte("keep me\n"), 0o600))

	file, err := NewFile(path, FileOptions{Options: messageOnly("file")})
	require.NoError(t, err)

	logger := xcglogger.New("app", xcglogger.WithDestinations(file))
	logger.Info("before")

	err = file.Rotate(archive)
	require.ErrorIs(t, err, xcglogger.ErrArchiveExists)

	logger.Info("after")
	require.NoError(t, logger.Close())

	assert.Equal(t, []string{"keep me"}, readLines(t, archive))
	assert.Equal(t, []string{"> before", "> after"}, readLines(t, path))
}

func TestFileRotationCompressesArchive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	archive := filepath.Join(dir, "app.1.log")

	var rotated string

	file, err := NewFile(path, FileOptions{
		Options:          messageOnly("file"),
		CompressArchives: true,
		RotationCallback: func(final string) { rotated = final },
	})
	require.NoError(t, err)

	logger := xcglogger.New("app", xcglogger.WithDestinations(file))
	logger.Info("archived")

	require.NoError(t, file.Rotate(archive))
	require.NoError(t, logger.Close())

	assert.Equal(t, archive+".gz", rotated)
	assert.NoFileExists(t, archive)

	compressed, err := os.Open(archive + ".gz")
	require.NoError(t, err)

	defer compressed.Close()

	reader, err := gzip.NewReader(compressed)
	require.NoError(t, err)

	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "> archived\n", string(content))
}

func TestFileConcurrentWritesDuringRotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")

	file, err := NewFile(path, FileOptions{Options: messageOnly("file"), Async: true})
	require.NoError(t, err)

	logger := xcglogger.New("app", xcglogger.WithDestinations(file))

	var wg sync.WaitGroup

	for g := range 4 {
		wg.Go(func() {
			for i := range 100 {
				logger.Infof("g%d-%d", g, i)
			}
		})
	}

	archives := make([]string, 3)
	for i := range archives {
		archives[i] = filepath.Join(dir, fmt.Sprintf("app.%d.log", i))
		require.NoError(t, file.Rotate(archives[i]))
	}

	wg.Wait()
	require.NoError(t, logger.Close())

	total := len(readLines(t, path))
	for _, archive := range archives {
		total += len(readLines(t, archive))
	}

	assert.Equal(t, 400, total)
}

func TestFileAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	var reported []error

	file, err := NewFile(path, FileOptions{
		Options:      messageOnly("file"),
		ErrorHandler: func(err error) { reported = append(reported, err) },
	})
	require.NoError(t, err)
	assert.Equal(t, path, file.Path())

	require.NoError(t, file.Close())
	require.NoError(t, file.Close())
	require.NoError(t, file.Flush())

	file.Process(xcglogger.Record{Level: xcglogger.InfoLevel, Message: "late"})
	require.Len(t, reported, 1)
	require.ErrorIs(t, reported[0], xcglogger.ErrDestinationClosed)

	require.ErrorIs(t, file.Rotate(path+".1"), xcglogger.ErrDestinationClosed)
}

func TestFileMetricsReporter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	exporter := xcglogger.NewQueueMetricsExporter()

	file, err := NewFile(path, FileOptions{
		Options:         messageOnly("file"),
		Async:           true,
		MetricsReporter: exporter.Reporter("file"),
	})
	require.NoError(t, err)

	logger := xcglogger.New("app", xcglogger.WithDestinations(file))
	logger.Info("one")
	logger.Info("two")

	require.NoError(t, logger.Close())

	assert.GreaterOrEqual(t, file.Metrics().Processed, uint64(2))

	snapshot, ok := exporter.Snapshot("file")
	require.True(t, ok)
	assert.GreaterOrEqual(t, snapshot.Processed, uint64(2))
	assert.Equal(t, int64(len("> one\n> two\n")), file.Size())
}
