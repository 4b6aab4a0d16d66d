package xcglogger

import (
	"fmt"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/simonhopkin/xcglogger/internal/output"
)

// QueueConfig configures the serial queue of an asynchronous destination.
type QueueConfig struct {
	// BufferSize is the number of records that can be pending before callers block.
	BufferSize int
	// WaitTimeout bounds how long Flush waits for pending records.
	WaitTimeout time.Duration
	// MetricsReporter receives a snapshot after every processed task.
	MetricsReporter func(QueueMetrics)
}

// QueueMetrics describes the state of a destination's serial queue.
type QueueMetrics struct {
	Enqueued   uint64
	Processed  uint64
	Panicked   uint64
	QueueDepth int
}

func toQueueMetrics(m output.QueueMetrics) QueueMetrics {
	return QueueMetrics{
		Enqueued:   m.Enqueued,
		Processed:  m.Processed,
		Panicked:   m.Panicked,
		QueueDepth: m.QueueDepth,
	}
}

// QueueMetricsExporter exposes queue metrics of asynchronous destinations via a
// Prometheus-style HTTP handler. Pass Reporter(identifier) as a destination's
// MetricsReporter to begin collecting data.
type QueueMetricsExporter struct {
	mu      sync.RWMutex
	metrics map[string]QueueMetrics
}

// NewQueueMetricsExporter creates a new exporter instance.
func NewQueueMetricsExporter() *QueueMetricsExporter {
	return &QueueMetricsExporter{metrics: make(map[string]QueueMetrics)}
}

// Observe records a metrics snapshot for the destination with the given identifier.
func (e *QueueMetricsExporter) Observe(identifier string, metrics QueueMetrics) {
	e.mu.Lock()
	e.metrics[identifier] = metrics
	e.mu.Unlock()
}

// Reporter returns a MetricsReporter bound to identifier.
func (e *QueueMetricsExporter) Reporter(identifier string) func(QueueMetrics) {
	return func(metrics QueueMetrics) {
		e.Observe(identifier, metrics)
	}
}

// Snapshot returns the last metrics observed for identifier.
func (e *QueueMetricsExporter) Snapshot(identifier string) (QueueMetrics, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	metrics, ok := e.metrics[identifier]

	return metrics, ok
}

// ServeHTTP renders the metrics using Prometheus exposition format.
func (e *QueueMetricsExporter) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	e.mu.RLock()
	ids := make([]string, 0, len(e.metrics))
	for id := range e.metrics {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	snapshot := make([]QueueMetrics, len(ids))
	for i, id := range ids {
		snapshot[i] = e.metrics[id]
	}
	e.mu.RUnlock()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	fmt.Fprintln(w, "# HELP xcglogger_queue_enqueued_total Total records enqueued")
	fmt.Fprintln(w, "# TYPE xcglogger_queue_enqueued_total counter")

	for i, id := range ids {
		fmt.Fprintf(w, "xcglogger_queue_enqueued_total{destination=%q} %d\n", id, snapshot[i].Enqueued)
	}

	fmt.Fprintln(w, "# HELP xcglogger_queue_processed_total Total records processed")
	fmt.Fprintln(w, "# TYPE xcglogger_queue_processed_total counter")

	for i, id := range ids {
		fmt.Fprintf(w, "xcglogger_queue_processed_total{destination=%q} %d\n", id, snapshot[i].Processed)
	}

	fmt.Fprintln(w, "# HELP xcglogger_queue_panicked_total Total queued tasks that panicked")
	fmt.Fprintln(w, "# TYPE xcglogger_queue_panicked_total counter")

	for i, id := range ids {
		fmt.Fprintf(w, "xcglogger_queue_panicked_total{destination=%q} %d\n", id, snapshot[i].Panicked)
	}

	fmt.Fprintln(w, "# HELP xcglogger_queue_depth Current queue depth")
	fmt.Fprintln(w, "# TYPE xcglogger_queue_depth gauge")

	for i, id := range ids {
		fmt.Fprintf(w, "xcglogger_queue_depth{destination=%q} %d\n", id, snapshot[i].QueueDepth)
	}
}
