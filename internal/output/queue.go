package output

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/hyp3rd/ewrap"

	"github.com/simonhopkin/xcglogger/internal/constants"
)

// QueueConfig configures a Queue.
type QueueConfig struct {
	// BufferSize is the size of the task buffer channel.
	BufferSize int
	// WaitTimeout is the maximum time to wait for queued tasks during Flush.
	WaitTimeout time.Duration
	// ErrorHandler is called when a queued task panics.
	ErrorHandler func(error)
	// MetricsReporter receives metrics after every processed task.
	MetricsReporter func(QueueMetrics)
}

// QueueMetrics provides insight into the internal state of a Queue.
type QueueMetrics struct {
	Enqueued   uint64
	Processed  uint64
	Panicked   uint64
	QueueDepth int
}

// Queue runs tasks one at a time, in the order they were enqueued, on a
// single background goroutine. A full buffer blocks the caller; tasks are
// never dropped.
type Queue struct {
	config    QueueConfig
	taskCh    chan func()
	wg        sync.WaitGroup
	closed    bool
	closeMu   sync.RWMutex
	metricsMu sync.Mutex

	enqueuedCount  atomic.Uint64
	processedCount atomic.Uint64
	panicCount     atomic.Uint64
}

// NewQueue creates a Queue and starts its worker.
func NewQueue(config QueueConfig) *Queue {
	if config.BufferSize <= 0 {
		config.BufferSize = constants.DefaultQueueSize
	}

	if config.WaitTimeout <= 0 {
		config.WaitTimeout = constants.DefaultTimeout
	}

	if config.ErrorHandler == nil {
		config.ErrorHandler = func(error) {}
	}

	q := &Queue{
		config: config,
		taskCh: make(chan func(), config.BufferSize),
	}

	q.wg.Add(1)

	go q.process()

	return q
}

// Enqueue schedules task after every task enqueued before it.
// It blocks while the buffer is full.
func (q *Queue) Enqueue(task func()) error {
	if task == nil {
		return nil
	}

	q.closeMu.RLock()
	defer q.closeMu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	q.taskCh <- task
	q.enqueuedCount.Add(1)

	return nil
}

// Do enqueues task and waits for it to run, returning its error.
// It must not be called from a task running on the same queue.
func (q *Queue) Do(task func() error) error {
	resultCh := make(chan error, 1)

	err := q.Enqueue(func() {
		var taskErr error = ErrTaskPanicked

		defer func() {
			resultCh <- taskErr
		}()

		taskErr = task()
	})
	if err != nil {
		return err
	}

	return <-resultCh
}

// Flush waits until every task enqueued before the call has run.
func (q *Queue) Flush() error {
	doneCh := make(chan struct{})

	err := q.Enqueue(func() { close(doneCh) })
	if err != nil {
		return err
	}

	select {
	case <-doneCh:
		return nil
	case <-time.After(q.config.WaitTimeout):
		return ErrFlushTimeout
	}
}

// Close runs the remaining tasks and stops the worker.
func (q *Queue) Close() error {
	q.closeMu.Lock()

	if q.closed {
		q.closeMu.Unlock()

		return ErrQueueClosed
	}

	q.closed = true
	close(q.taskCh)
	q.closeMu.Unlock()

	q.wg.Wait()

	return nil
}

// Metrics returns a snapshot of the current metrics counters.
func (q *Queue) Metrics() QueueMetrics {
	return QueueMetrics{
		Enqueued:   q.enqueuedCount.Load(),
		Processed:  q.processedCount.Load(),
		Panicked:   q.panicCount.Load(),
		QueueDepth: len(q.taskCh),
	}
}

// process is the background goroutine that runs queued tasks.
func (q *Queue) process() {
	defer q.wg.Done()

	for task := range q.taskCh {
		q.run(task)
	}
}

func (q *Queue) run(task func()) {
	defer func() {
		if r := recover(); r != nil {
			q.panicCount.Add(1)
			q.config.ErrorHandler(ewrap.New("queued task panicked").WithMetadata("panic", r))
		}

		q.processedCount.Add(1)
		q.reportMetrics()
	}()

	task()
}

func (q *Queue) reportMetrics() {
	reporter := q.config.MetricsReporter
	if reporter == nil {
		return
	}

	q.metricsMu.Lock()
	defer q.metricsMu.Unlock()

	reporter(q.Metrics())
}
