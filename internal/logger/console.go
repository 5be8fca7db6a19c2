// Package logger provides the leveled console logger used for verbose
// progress reporting.
//
// Diffs, command echoes, and trouble messages are the tool's contract
// surface and bypass this logger entirely; it only carries diagnostics
// (enumeration counts, per-file timings, preflight results) that operators
// opt into with --verbose.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Log level constants for filtering
const (
	levelDebug int = 0
	levelInfo  int = 1
	levelWarn  int = 2
	levelError int = 3
)

// Console logs progress messages to a writer with timestamps and thread
// safety. All output is prefixed with [HH:MM:SS] timestamps. Color output
// is automatically enabled for terminal output (os.Stdout/os.Stderr).
type Console struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsole creates a Console that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// logLevel determines the minimum level for messages to be output; valid
// levels are debug, info, warn, error (case-insensitive). Empty or invalid
// levels default to "info".
func NewConsole(writer io.Writer, logLevel string) *Console {
	return &Console{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: isTerminal(writer),
	}
}

// isTerminal checks if the writer is a terminal that supports colors.
// Returns true for os.Stdout and os.Stderr when they are TTYs.
func isTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	if w == os.Stdout || w == os.Stderr {
		// The color library's NoColor already accounts for NO_COLOR and
		// non-TTY streams.
		return !color.NoColor
	}
	return false
}

// normalizeLogLevel converts a log level string to lowercase and validates
// it, defaulting to "info".
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))
	switch normalized {
	case "debug", "info", "warn", "error":
		return normalized
	}
	return "info"
}

// logLevelToInt converts a log level string to its numeric value.
func logLevelToInt(level string) int {
	switch level {
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// shouldLog checks if a message at the given level should be logged.
func (c *Console) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(c.logLevel)
}

// LogDebug logs a debug-level message.
// Format: "[HH:MM:SS] [DEBUG] <message>"
func (c *Console) LogDebug(message string) {
	c.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
// Format: "[HH:MM:SS] [INFO] <message>"
func (c *Console) LogInfo(message string) {
	c.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
// Format: "[HH:MM:SS] [WARN] <message>"
func (c *Console) LogWarn(message string) {
	c.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
// Format: "[HH:MM:SS] [ERROR] <message>"
func (c *Console) LogError(message string) {
	c.logWithLevel("ERROR", message)
}

// logWithLevel logs a message at the specified level if filtering allows it.
func (c *Console) logWithLevel(level string, message string) {
	if c.writer == nil {
		return
	}
	if !c.shouldLog(strings.ToLower(level)) {
		return
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	ts := time.Now().Format("15:04:05")
	levelText := level
	if c.colorOutput {
		levelText = colorizeLevel(level)
	}
	fmt.Fprintf(c.writer, "[%s] [%s] %s\n", ts, levelText, message)
}

// colorizeLevel applies the level color scheme.
func colorizeLevel(level string) string {
	switch level {
	case "DEBUG":
		return color.New(color.FgCyan).Sprint(level)
	case "INFO":
		return color.New(color.FgBlue).Sprint(level)
	case "WARN":
		return color.New(color.FgYellow).Sprint(level)
	case "ERROR":
		return color.New(color.FgRed).Sprint(level)
	default:
		return level
	}
}
