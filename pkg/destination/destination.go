// Package destination provides the concrete destinations of an xcglogger
// Logger: console, file with manual rotation, system log and callback.
//
// Every destination embeds *xcglogger.Base, which supplies the threshold,
// filter chain, detail rendering and formatter chain. What is left to each
// type is writing the rendered line.
package destination

import (
	"github.com/simonhopkin/xcglogger"
	"github.com/simonhopkin/xcglogger/internal/output"
)

// resolveOptions returns a copy of opts, or the defaults for identifier when
// opts is nil. An empty identifier is replaced by the default one.
func resolveOptions(opts *xcglogger.Options, identifier string) xcglogger.Options {
	if opts == nil {
		return xcglogger.DefaultOptions(identifier)
	}

	resolved := *opts
	if resolved.Identifier == "" {
		resolved.Identifier = identifier
	}

	return resolved
}

func baseOptions(errorHandler func(error)) []xcglogger.BaseOption {
	if errorHandler == nil {
		return nil
	}

	return []xcglogger.BaseOption{xcglogger.WithErrorHandler(errorHandler)}
}

func toOutputColorMode(mode xcglogger.ColorMode) output.ColorMode {
	switch mode {
	case xcglogger.ColorAlways:
		return output.ColorModeAlways
	case xcglogger.ColorNever:
		return output.ColorModeNever
	default:
		return output.ColorModeAuto
	}
}
