package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew_QuietByDefault(t *testing.T) {
	logger, err := New(false)
	if err != nil {
		t.Fatalf("New(false): %v", err)
	}
	if logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatalf("expected quiet logger to drop everything")
	}
}

func TestNew_VerboseEnablesDebug(t *testing.T) {
	logger, err := New(true)
	if err != nil {
		t.Fatalf("New(true): %v", err)
	}
	defer func() { _ = logger.Sync() }()
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug level to be enabled")
	}
}
