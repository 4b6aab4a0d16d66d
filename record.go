package xcglogger

import (
	"path/filepath"
	"runtime"
	"time"
)

const unknown = "unknown"

// Record is an immutable snapshot of one log event. Destinations receive it by
// value, so changes made by one destination never reach another.
type Record struct {
	// Time is when the event was logged.
	Time time.Time
	// Level is the severity of the event.
	Level Level
	// Message is the produced message body.
	Message string
	// Function is the name of the calling function.
	Function string
	// File is the path of the calling source file.
	File string
	// Line is the line number of the call site.
	Line int
	// Thread is the resolved thread label of the caller.
	Thread string
	// Logger is the identifier of the logger that created the record.
	Logger string
}

// FileName returns the last element of the record's file path.
func (r Record) FileName() string {
	if r.File == "" {
		return ""
	}

	return filepath.Base(r.File)
}

// Caller identifies a call site.
type Caller struct {
	Function string
	File     string
	Line     int
}

// CallerAt returns the call site skip frames above the caller of CallerAt.
// CallerAt(0) reports the function calling CallerAt.
func CallerAt(skip int) Caller {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Caller{Function: unknown, File: unknown}
	}

	funcName := unknown
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = filepath.Base(fn.Name())
	}

	return Caller{
		Function: funcName,
		File:     file,
		Line:     line,
	}
}
