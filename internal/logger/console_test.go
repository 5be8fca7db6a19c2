package logger

import (
	"bytes"
	"strings"
	"testing"
)

// TestNilWriterDiscards verifies a nil writer never panics
func TestNilWriterDiscards(t *testing.T) {
	c := NewConsole(nil, "debug")
	c.LogDebug("dropped")
	c.LogError("dropped too")
}

// TestLevelFiltering verifies messages below the configured level are dropped
func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, "warn")

	c.LogDebug("debug message")
	c.LogInfo("info message")
	c.LogWarn("warn message")
	c.LogError("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") {
		t.Error("debug message should be filtered at warn level")
	}
	if strings.Contains(out, "info message") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(out, "warn message") {
		t.Error("warn message missing")
	}
	if !strings.Contains(out, "error message") {
		t.Error("error message missing")
	}
}

// TestMessageFormat verifies the [HH:MM:SS] [LEVEL] prefix
func TestMessageFormat(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, "debug")

	c.LogInfo("hello")

	out := buf.String()
	if !strings.HasPrefix(out, "[") {
		t.Errorf("output %q should start with a timestamp", out)
	}
	if !strings.Contains(out, "] [INFO] hello\n") {
		t.Errorf("output %q missing level and message", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("non-terminal writer should get plain output, got %q", out)
	}
}

// TestInvalidLevelDefaultsToInfo verifies unknown levels fall back to info
func TestInvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, "loud")

	c.LogDebug("hidden")
	c.LogInfo("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug should be filtered at default info level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("info message missing at default level")
	}
}
