package xcglogger

import "slices"

// Formatter rewrites a fully rendered line. Formatters run in order, each
// receiving the output of the previous one.
type Formatter func(rec Record, line string) string

// PrefixPostfixFormatter surrounds the line with prefix and postfix. When
// levels are given, only records at those levels are changed.
func PrefixPostfixFormatter(prefix, postfix string, levels ...Level) Formatter {
	only := slices.Clone(levels)

	return func(rec Record, line string) string {
		if len(only) > 0 && !slices.Contains(only, rec.Level) {
			return line
		}

		return prefix + line + postfix
	}
}

// ANSIColorFormatter wraps the line in the color mapped to the record's level.
// A nil map uses DefaultLevelColors. Levels without a color are left as is.
func ANSIColorFormatter(colors map[Level]string) Formatter {
	if colors == nil {
		colors = DefaultLevelColors()
	}

	palette := make(map[Level]string, len(colors))
	for level, color := range colors {
		palette[level] = color
	}

	return func(rec Record, line string) string {
		color, ok := palette[rec.Level]
		if !ok || color == "" {
			return line
		}

		return color + line + Reset
	}
}
