//go:build !windows && !plan9

package destination

import (
	"log/syslog"
	"strings"

	"github.com/hyp3rd/ewrap"

	"github.com/simonhopkin/xcglogger"
	"github.com/simonhopkin/xcglogger/internal/constants"
)

var facilities = map[string]syslog.Priority{
	"":       syslog.LOG_USER,
	"kern":   syslog.LOG_KERN,
	"user":   syslog.LOG_USER,
	"mail":   syslog.LOG_MAIL,
	"daemon": syslog.LOG_DAEMON,
	"auth":   syslog.LOG_AUTH,
	"syslog": syslog.LOG_SYSLOG,
	"local0": syslog.LOG_LOCAL0,
	"local1": syslog.LOG_LOCAL1,
	"local2": syslog.LOG_LOCAL2,
	"local3": syslog.LOG_LOCAL3,
	"local4": syslog.LOG_LOCAL4,
	"local5": syslog.LOG_LOCAL5,
	"local6": syslog.LOG_LOCAL6,
	"local7": syslog.LOG_LOCAL7,
}

// Syslog writes lines to the system log with a priority derived from the
// record level.
type Syslog struct {
	*xcglogger.Base

	writer *syslog.Writer
}

// NewSyslog connects to the system log and tags every message with tag.
func NewSyslog(tag string, opts SyslogOptions) (*Syslog, error) {
	facility, ok := facilities[strings.ToLower(opts.Facility)]
	if !ok {
		return nil, ewrap.New("unknown syslog facility").WithMetadata("facility", opts.Facility)
	}

	writer, err := syslog.Dial(opts.Network, opts.Address, facility|syslog.LOG_INFO, tag)
	if err != nil {
		return nil, ewrap.Wrap(err, "connecting to syslog").
			WithMetadata("network", opts.Network).
			WithMetadata("address", opts.Address)
	}

	return &Syslog{
		Base:   xcglogger.NewBase(syslogOptions(opts.Options, constants.SyslogDestinationIdentifier), baseOptions(opts.ErrorHandler)...),
		writer: writer,
	}, nil
}

// Process renders rec and sends it to the system log.
func (s *Syslog) Process(rec xcglogger.Record) {
	s.Dispatch(rec, s)
}

// Output sends line with the priority matching the record level.
func (s *Syslog) Output(rec xcglogger.Record, line string) {
	var err error

	switch rec.Level {
	case xcglogger.VerboseLevel, xcglogger.DebugLevel:
		err = s.writer.Debug(line)
	case xcglogger.InfoLevel:
		err = s.writer.Info(line)
	case xcglogger.NoticeLevel:
		err = s.writer.Notice(line)
	case xcglogger.WarningLevel:
		err = s.writer.Warning(line)
	case xcglogger.ErrorLevel:
		err = s.writer.Err(line)
	case xcglogger.SevereLevel:
		err = s.writer.Crit(line)
	case xcglogger.AlertLevel:
		err = s.writer.Alert(line)
	case xcglogger.EmergencyLevel:
		err = s.writer.Emerg(line)
	default:
		return
	}

	if err != nil {
		s.ReportError(ewrap.Wrap(err, "syslog write failed").WithMetadata("destination", s.Identifier()))
	}
}

// Close closes the connection to the system log.
func (s *Syslog) Close() error {
	if s.Closed() {
		return nil
	}

	err := s.Base.Close()
	if err != nil {
		return err
	}

	err = s.writer.Close()
	if err != nil {
		return ewrap.Wrap(err, "closing syslog writer")
	}

	return nil
}
