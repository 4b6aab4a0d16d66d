package destination

import (
	"github.com/hyp3rd/ewrap"

	"github.com/simonhopkin/xcglogger"
	"github.com/simonhopkin/xcglogger/internal/constants"
)

// Callback hands every rendered line to a function. The function runs on the
// logging goroutine; the caller owns its lifetime and any state it touches.
type Callback struct {
	*xcglogger.Base

	fn func(string)
}

// NewCallback creates a callback destination. An empty identifier in opts is
// replaced by the default callback identifier.
func NewCallback(opts xcglogger.Options, fn func(string)) (*Callback, error) {
	if fn == nil {
		return nil, ewrap.New("callback function is nil")
	}

	if opts.Identifier == "" {
		opts.Identifier = constants.CallbackDestinationIdentifier
	}

	return &Callback{
		Base: xcglogger.NewBase(opts),
		fn:   fn,
	}, nil
}

// Process renders rec and passes the line to the callback.
func (c *Callback) Process(rec xcglogger.Record) {
	c.Dispatch(rec, c)
}

// Output invokes the callback with line.
func (c *Callback) Output(_ xcglogger.Record, line string) {
	c.fn(line)
}
