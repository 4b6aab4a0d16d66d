//go:build windows || plan9

package destination

import "github.com/simonhopkin/xcglogger"

// Syslog is unavailable on this platform.
type Syslog struct {
	*xcglogger.Base
}

// NewSyslog always fails with xcglogger.ErrSyslogUnsupported.
func NewSyslog(_ string, _ SyslogOptions) (*Syslog, error) {
	return nil, xcglogger.ErrSyslogUnsupported
}

// Process discards rec.
func (s *Syslog) Process(rec xcglogger.Record) {
	s.Dispatch(rec, s)
}

// Output discards line.
func (*Syslog) Output(xcglogger.Record, string) {}
