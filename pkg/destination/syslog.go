package destination

import "github.com/simonhopkin/xcglogger"

// SyslogOptions configures a Syslog destination.
type SyslogOptions struct {
	// Options holds the display options. Nil uses xcglogger.DefaultOptions
	// without the date, which the system log adds itself.
	Options *xcglogger.Options
	// Network and Address select a remote daemon. Both empty use the local one.
	Network string
	Address string
	// Facility is the syslog facility name, for example "user" or "local0".
	// Empty uses "user".
	Facility string
	// ErrorHandler receives write errors. Nil prints to stderr.
	ErrorHandler func(error)
}

func syslogOptions(opts *xcglogger.Options, identifier string) xcglogger.Options {
	if opts == nil {
		resolved := xcglogger.DefaultOptions(identifier)
		resolved.ShowDate = false

		return resolved
	}

	return resolveOptions(opts, identifier)
}
