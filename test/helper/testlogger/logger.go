// Package testlogger provides a recording log.Logger for tests
package testlogger

import (
	"fmt"
	"strings"
	"sync"

	"github.com/LerianStudio/lib-commons/commons/log"
)

// LogEntry represents a single recorded log line
type LogEntry struct {
	Level   string
	Message string
	Fields  []any
}

type sink struct {
	mu      sync.Mutex
	entries []LogEntry
}

// TestLogger implements log.Logger and records every entry
type TestLogger struct {
	sink   *sink
	fields []any
}

// New creates a new TestLogger
func New() *TestLogger {
	return &TestLogger{sink: &sink{}}
}

// Ptr returns the logger as the *log.Logger the library constructors take
func (l *TestLogger) Ptr() *log.Logger {
	var logger log.Logger = l
	return &logger
}

func (l *TestLogger) record(level, msg string) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	l.sink.entries = append(l.sink.entries, LogEntry{
		Level:   level,
		Message: strings.TrimSuffix(msg, "\n"),
		Fields:  append([]any(nil), l.fields...),
	})
}

func (l *TestLogger) Debug(args ...any) { l.record("DEBUG", fmt.Sprint(args...)) }
func (l *TestLogger) Debugf(format string, args ...any) {
	l.record("DEBUG", fmt.Sprintf(format, args...))
}
func (l *TestLogger) Debugln(args ...any) { l.record("DEBUG", fmt.Sprintln(args...)) }
func (l *TestLogger) Info(args ...any)    { l.record("INFO", fmt.Sprint(args...)) }
func (l *TestLogger) Infof(format string, args ...any) {
	l.record("INFO", fmt.Sprintf(format, args...))
}
func (l *TestLogger) Infoln(args ...any) { l.record("INFO", fmt.Sprintln(args...)) }
func (l *TestLogger) Warn(args ...any)   { l.record("WARN", fmt.Sprint(args...)) }
func (l *TestLogger) Warnf(format string, args ...any) {
	l.record("WARN", fmt.Sprintf(format, args...))
}
func (l *TestLogger) Warnln(args ...any) { l.record("WARN", fmt.Sprintln(args...)) }
func (l *TestLogger) Error(args ...any)  { l.record("ERROR", fmt.Sprint(args...)) }
func (l *TestLogger) Errorf(format string, args ...any) {
	l.record("ERROR", fmt.Sprintf(format, args...))
}
func (l *TestLogger) Errorln(args ...any) { l.record("ERROR", fmt.Sprintln(args...)) }
func (l *TestLogger) Fatal(args ...any)   { l.record("FATAL", fmt.Sprint(args...)) }
func (l *TestLogger) Fatalf(format string, args ...any) {
	l.record("FATAL", fmt.Sprintf(format, args...))
}
func (l *TestLogger) Fatalln(args ...any) { l.record("FATAL", fmt.Sprintln(args...)) }

// WithFields returns a logger sharing the same record that tags entries with fields
func (l *TestLogger) WithFields(fields ...any) log.Logger {
	return &TestLogger{sink: l.sink, fields: append(append([]any(nil), l.fields...), fields...)}
}

// WithDefaultMessageTemplate implements log.Logger
func (l *TestLogger) WithDefaultMessageTemplate(string) log.Logger {
	return l
}

// Sync implements log.Logger
func (l *TestLogger) Sync() error {
	return nil
}

// Entries returns a copy of the recorded entries
func (l *TestLogger) Entries() []LogEntry {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	return append([]LogEntry(nil), l.sink.entries...)
}

// Count returns the number of entries at level
func (l *TestLogger) Count(level string) int {
	n := 0

	for _, e := range l.Entries() {
		if e.Level == level {
			n++
		}
	}

	return n
}

// Contains reports whether an entry at level contains every substring
func (l *TestLogger) Contains(level string, substrings ...string) bool {
	for _, e := range l.Entries() {
		if e.Level != level {
			continue
		}

		found := true

		for _, s := range substrings {
			if !strings.Contains(e.Message, s) {
				found = false
				break
			}
		}

		if found {
			return true
		}
	}

	return false
}
