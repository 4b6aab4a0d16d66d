package xcglogger

import (
	"slices"
	"strings"
	"sync/atomic"
)

// Filter inspects a record and its message before it is rendered. Returning
// true vetoes the record for the destination the filter is attached to.
type Filter func(rec Record, message string) bool

// FileNameFilter matches the base name of the record's source file against
// names. An inclusive filter only lets matching files through; an exclusive
// one drops them.
func FileNameFilter(inclusive bool, names ...string) Filter {
	set := slices.Clone(names)

	return func(rec Record, _ string) bool {
		return slices.Contains(set, rec.FileName()) != inclusive
	}
}

// FunctionNameFilter matches the record's function name against names. The
// package qualifier is ignored, so "handler.Serve" and "Serve" both match
// "Serve".
func FunctionNameFilter(inclusive bool, names ...string) Filter {
	set := slices.Clone(names)

	return func(rec Record, _ string) bool {
		fn := rec.Function
		if idx := strings.LastIndexByte(fn, '.'); idx >= 0 {
			fn = fn[idx+1:]
		}

		matched := slices.Contains(set, fn) || slices.Contains(set, rec.Function)

		return matched != inclusive
	}
}

// MessageFilter drops records whose message contains substr.
func MessageFilter(substr string) Filter {
	return func(_ Record, message string) bool {
		return substr != "" && strings.Contains(message, substr)
	}
}

// LevelRangeFilter drops records outside the inclusive range [minLevel, maxLevel].
func LevelRangeFilter(minLevel, maxLevel Level) Filter {
	return func(rec Record, _ string) bool {
		return rec.Level < minLevel || rec.Level > maxLevel
	}
}

// SamplingFilter lets the first initial records of each level through, then
// every thereafter-th one. A thereafter of zero drops everything past the
// initial burst. Warnings and above are never sampled.
func SamplingFilter(initial, thereafter int) Filter {
	sampler := newLogSampler(initial, thereafter)

	return func(rec Record, _ string) bool {
		return !sampler.allow(rec.Level)
	}
}

type logSampler struct {
	initial       uint64
	thereafter    uint64
	levelCounters [EmergencyLevel + 1]atomic.Uint64
}

func newLogSampler(initial, thereafter int) *logSampler {
	sampler := &logSampler{}

	if initial > 0 {
		sampler.initial = uint64(initial)
	}

	if thereafter > 0 {
		sampler.thereafter = uint64(thereafter)
	}

	return sampler
}

func (s *logSampler) allow(level Level) bool {
	if level >= WarningLevel || !level.IsValid() {
		return true
	}

	currentCount := s.levelCounters[level].Add(1)

	if currentCount <= s.initial {
		return true
	}

	if s.thereafter <= 1 {
		return s.thereafter == 1
	}

	return ((currentCount - s.initial) % s.thereafter) == 0
}
