package xcglogger

import (
	"sync"
)

// memoryDestination records every line it outputs.
type memoryDestination struct {
	*Base

	mu      sync.Mutex
	lines   []string
	records []Record
	onWrite func(line string)
}

func newMemoryDestination(id string, level Level, baseOpts ...BaseOption) *memoryDestination {
	opts := DefaultOptions(id)
	opts.Level = level

	return &memoryDestination{Base: NewBase(opts, baseOpts...)}
}

func (d *memoryDestination) Process(rec Record) {
	d.Dispatch(rec, d)
}

func (d *memoryDestination) Output(rec Record, line string) {
	d.mu.Lock()
	d.lines = append(d.lines, line)
	d.records = append(d.records, rec)
	onWrite := d.onWrite
	d.mu.Unlock()

	if onWrite != nil {
		onWrite(line)
	}
}

func (d *memoryDestination) Lines() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]string, len(d.lines))
	copy(out, d.lines)

	return out
}

func (d *memoryDestination) Records() []Record {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]Record, len(d.records))
	copy(out, d.records)

	return out
}

// bareOptions hides every detail so lines are "> message".
func bareOptions(o *Options) {
	o.ShowDate = false
	o.ShowLevel = false
	o.ShowLogIdentifier = false
	o.ShowThreadName = false
	o.ShowFileName = false
	o.ShowLineNumber = false
	o.ShowFunctionName = false
}
