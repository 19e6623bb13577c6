package logging

import (
	"fmt"
	"io"
)

// MockLogger writes plain log lines to the given writer, for assertions in
// tests.
type MockLogger struct {
	level Level
	out   io.Writer
}

func NewMockLogger(level Level, out io.Writer) Logger {
	return &MockLogger{
		level: level,
		out:   out,
	}
}

func (m *MockLogger) logf(level Level, format string, args ...any) {
	if level < m.level {
		return
	}

	var message any

	switch {
	case len(args) == 1 && format == "":
		message = args[0]
	case len(args) != 1 && format == "":
		message = args
	case format != "":
		// format+"" keeps vet's printf analyzer from treating logf as a
		// printf wrapper; the empty-format calls above are intentional.
		message = fmt.Sprintf(format+"", args...)
	}

	fmt.Fprintf(m.out, "%v\n", message)
}

func (m *MockLogger) Debug(args ...interface{}) {
	m.logf(DEBUG, "", args...)
}

func (m *MockLogger) Debugf(format string, args ...interface{}) {
	m.logf(DEBUG, format, args...)
}

func (m *MockLogger) Info(args ...interface{}) {
	m.logf(INFO, "", args...)
}

func (m *MockLogger) Infof(format string, args ...interface{}) {
	m.logf(INFO, format, args...)
}

func (m *MockLogger) Notice(args ...interface{}) {
	m.logf(NOTICE, "", args...)
}

func (m *MockLogger) Noticef(format string, args ...interface{}) {
	m.logf(NOTICE, format, args...)
}

func (m *MockLogger) Log(args ...interface{}) {
	m.logf(INFO, "", args...)
}

func (m *MockLogger) Logf(format string, args ...interface{}) {
	m.logf(INFO, format, args...)
}

func (m *MockLogger) Warn(args ...interface{}) {
	m.logf(WARN, "", args...)
}

func (m *MockLogger) Warnf(format string, args ...interface{}) {
	m.logf(WARN, format, args...)
}

func (m *MockLogger) Error(args ...interface{}) {
	m.logf(ERROR, "", args...)
}

func (m *MockLogger) Errorf(format string, args ...interface{}) {
	m.logf(ERROR, format, args...)
}

func (m *MockLogger) Fatal(args ...interface{}) {
	m.logf(FATAL, "", args...)
}

func (m *MockLogger) Fatalf(format string, args ...interface{}) {
	m.logf(FATAL, format, args...)
}

func (m *MockLogger) ChangeLevel(level Level) {
	m.level = level
}
