package logger

import "testing"

var _ Logger = Test{}

// Test is a logger.Logger implementation using testing.T instance.
type Test struct{ t testing.TB }

// NewTest returns a new logger using the provided testing.TB instance.
func NewTest(t testing.TB) Test {
	return Test{t: t}
}

func (t Test) log(level, msg string, fields []Field) {
	t.t.Helper()
	t.t.Logf("[%s] %s {args: %+v}", level, msg, fields)
}

// Debug uses t.Logf to print a debug message.
func (t Test) Debug(msg string, fields ...Field) {
	t.t.Helper()
	t.log("debug", msg, fields)
}

// Info uses t.Logf to print an info message.
func (t Test) Info(msg string, fields ...Field) {
	t.t.Helper()
	t.log("info", msg, fields)
}

// Warn uses t.Logf to print a warning message.
func (t Test) Warn(msg string, fields ...Field) {
	t.t.Helper()
	t.log("warn", msg, fields)
}

// Error uses t.Logf to print an error message.
func (t Test) Error(msg string, fields ...Field) {
	t.t.Helper()
	t.log("error", msg, fields)
}
