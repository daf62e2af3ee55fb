package testing

import (
	"testing"

	"github.com/arloliu/santa/types"
)

// NewTestLogger returns a Logger that writes to t.Logf.
//
// Pass it to a Group, a BasketDraw or a KVPublisher to see which giver drew
// which name, and why an attempt was aborted, in verbose test output.
//
// Example:
//
//	cfg := santa.TestConfig()
//	group, _ := santa.NewGroup(&cfg, santa.WithLogger(santatest.NewTestLogger(t)))
func NewTestLogger(t testing.TB) types.Logger {
	return &testLogger{t: t}
}

type testLogger struct {
	t testing.TB
}

var _ types.Logger = (*testLogger)(nil)

func (l *testLogger) Debug(msg string, keysAndValues ...any) {
	l.t.Logf("DEBUG: %s %v", msg, keysAndValues)
}

func (l *testLogger) Info(msg string, keysAndValues ...any) {
	l.t.Logf("INFO: %s %v", msg, keysAndValues)
}

func (l *testLogger) Warn(msg string, keysAndValues ...any) {
	l.t.Logf("WARN: %s %v", msg, keysAndValues)
}

func (l *testLogger) Error(msg string, keysAndValues ...any) {
	l.t.Logf("ERROR: %s %v", msg, keysAndValues)
}

func (l *testLogger) Fatal(msg string, keysAndValues ...any) {
	l.t.Fatalf("FATAL: %s %v", msg, keysAndValues)
}
