// Package logging wraps the standard library's log package with a
// component prefix, the closest idiomatic match to how the teacher
// repo logs (fmt.Println/Printf scattered at call sites) without
// reaching for a structured logging library the example pack never
// uses in this domain.
package logging

import (
	"log"
	"os"
)

// Logger prefixes every line with a component name, e.g. "[match] ".
type Logger struct {
	std *log.Logger
}

// New returns a Logger that writes to stderr, tagged with component.
func New(component string) *Logger {
	return &Logger{std: log.New(os.Stderr, "["+component+"] ", log.LstdFlags)}
}

// Printf logs a formatted line.
func (l *Logger) Printf(format string, args ...interface{}) {
	l.std.Printf(format, args...)
}

// Println logs a line.
func (l *Logger) Println(args ...interface{}) {
	l.std.Println(args...)
}
