package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestInitLevel(t *testing.T) {
	tests := []struct {
		level        string
		debugEnabled bool
		infoEnabled  bool
	}{
		{"", false, true},
		{"debug", true, true},
		{"warn", false, false},
		{"not-a-level", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			sharedLogger = nil
			defer func() { sharedLogger = nil }()

			Init(tt.level)
			core := Get().Desugar().Core()

			if core.Enabled(zapcore.DebugLevel) != tt.debugEnabled {
				t.Errorf("debug enabled = %v, want %v", core.Enabled(zapcore.DebugLevel), tt.debugEnabled)
			}
			if core.Enabled(zapcore.InfoLevel) != tt.infoEnabled {
				t.Errorf("info enabled = %v, want %v", core.Enabled(zapcore.InfoLevel), tt.infoEnabled)
			}
		})
	}
}

func TestInitOnce(t *testing.T) {
	sharedLogger = nil
	defer func() { sharedLogger = nil }()

	Init("error")
	first := Get()
	Init("debug")

	if Get() != first {
		t.Error("Expected second Init to keep the existing logger")
	}
	Sync()
}
