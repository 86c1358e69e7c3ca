package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("Level.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"DEBUG", DebugLevel},
		{"debug", DebugLevel},
		{"INFO", InfoLevel},
		{"WARNING", WarnLevel},
		{"error", ErrorLevel},
		{"invalid", InfoLevel}, // Default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestJSONLoggerOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	logger.Info("graph built", GraphName("coauthorship"), Nodes(4), Edges(3))

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse log output: %v", err)
	}

	if entry.Level != "INFO" {
		t.Errorf("Expected level INFO, got %s", entry.Level)
	}
	if entry.Message != "graph built" {
		t.Errorf("Expected message 'graph built', got %q", entry.Message)
	}
	if entry.Fields["graph"] != "coauthorship" {
		t.Errorf("Expected graph field 'coauthorship', got %v", entry.Fields["graph"])
	}
	if entry.Fields["nodes"] != float64(4) {
		t.Errorf("Expected nodes field 4, got %v", entry.Fields["nodes"])
	}
}

func TestJSONLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, WarnLevel)

	logger.Debug("debug msg")
	logger.Info("info msg")
	logger.Warn("warn msg")

	output := buf.String()
	if strings.Contains(output, "debug msg") || strings.Contains(output, "info msg") {
		t.Errorf("Expected debug/info to be filtered at WarnLevel, got: %s", output)
	}
	if !strings.Contains(output, "warn msg") {
		t.Errorf("Expected warn msg in output, got: %s", output)
	}
}

func TestLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	child := logger.With(Component("builder"), RunID("run-1"))
	child.Info("processing")

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse log output: %v", err)
	}

	if entry.Fields["component"] != "builder" {
		t.Errorf("Expected component field from parent, got %v", entry.Fields["component"])
	}
	if entry.Fields["run_id"] != "run-1" {
		t.Errorf("Expected run_id field from parent, got %v", entry.Fields["run_id"])
	}
}

func TestErrorField(t *testing.T) {
	f := Error(errors.New("boom"))
	if f.Key != "error" || f.Value != "boom" {
		t.Errorf("Error() = %+v, want {Key:error Value:boom}", f)
	}

	f = Error(nil)
	if f.Key != "error" || f.Value != nil {
		t.Errorf("Error(nil) = %+v, want nil value", f)
	}
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	// Should not panic and With should return a usable logger
	logger.Info("ignored")
	child := logger.With(Component("x"))
	child.Error("also ignored")
}
