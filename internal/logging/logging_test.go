package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatJSON,
		Output: &buf,
	})

	logger.Info("test message", "key", "value")

	output := buf.String()
	if output == "" {
		t.Fatal("expected output, got empty string")
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(output), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, output)
	}

	if _, ok := parsed["msg"]; !ok {
		t.Errorf("JSON output missing 'msg' field: %s", output)
	}
	if _, ok := parsed["level"]; !ok {
		t.Errorf("JSON output missing 'level' field: %s", output)
	}
	if parsed["key"] != "value" {
		t.Errorf("JSON output missing custom attribute: got %v, want 'value'", parsed["key"])
	}
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatText,
		Output: &buf,
	})

	logger.Info("test message", "key", "value")

	output := buf.String()
	if output == "" {
		t.Fatal("expected output, got empty string")
	}

	// Text format must not be parseable as JSON
	var parsed map[string]any
	if err := json.Unmarshal([]byte(output), &parsed); err == nil {
		t.Error("text format should not be valid JSON")
	}

	for _, want := range []string{"test message", "key=value", "INFO"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q: %s", want, output)
		}
	}
}

func TestNew_DefaultsToStderr(t *testing.T) {
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatText,
		// Output intentionally nil
	})

	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNew_UnknownFormatDefaultsToText(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: Format("unknown"),
		Output: &buf,
	})

	logger.Info("test message")

	var parsed map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err == nil {
		t.Error("unknown format should default to text, not JSON")
	}
}

func TestDefault(t *testing.T) {
	if Default() == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNewDiscard(t *testing.T) {
	logger := NewDiscard()

	// Nothing to inspect on io.Discard; verify the logger accepts calls at
	// every level without panicking.
	logger.Debug("debug message", "key", "value")
	logger.Info("info message", "count", 42)
	logger.Warn("warn message", "flag", true)
	logger.Error("error message", "err", "something went wrong")
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name         string
		configLevel  slog.Level
		logLevel     slog.Level
		shouldAppear bool
	}{
		{"info logged at info level", slog.LevelInfo, slog.LevelInfo, true},
		{"debug not logged at info level", slog.LevelInfo, slog.LevelDebug, false},
		{"error logged at info level", slog.LevelInfo, slog.LevelError, true},
		{"warn logged at warn level", slog.LevelWarn, slog.LevelWarn, true},
		{"info not logged at warn level", slog.LevelWarn, slog.LevelInfo, false},
		{"debug logged at debug level", slog.LevelDebug, slog.LevelDebug, true},
		{"error not logged above error level", slog.LevelError + 4, slog.LevelError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(Config{
				Level:  tt.configLevel,
				Format: FormatText,
				Output: &buf,
			})

			switch tt.logLevel {
			case slog.LevelDebug:
				logger.Debug("test message")
			case slog.LevelInfo:
				logger.Info("test message")
			case slog.LevelWarn:
				logger.Warn("test message")
			case slog.LevelError:
				logger.Error("test message")
			}

			hasOutput := buf.Len() > 0
			if hasOutput != tt.shouldAppear {
				t.Errorf("level filtering: got output=%v, want output=%v\nconfig level: %v, log level: %v\noutput: %q",
					hasOutput, tt.shouldAppear, tt.configLevel, tt.logLevel, buf.String())
			}
		})
	}
}

func TestForTest(t *testing.T) {
	logger := ForTest(t)
	if logger == nil {
		t.Fatal("expected non-nil logger")
	}

	// ForTest is configured at Debug level to capture everything; all of
	// these land in t.Log without panicking.
	logger.Debug("debug from test logger")
	logger.Info("info from test logger", "test", t.Name())
	logger.Warn("warn from test logger")
	logger.Error("error from test logger")
}

func TestNew_WithAttributes(t *testing.T) {
	tests := []struct {
		name   string
		format Format
	}{
		{"text format", FormatText},
		{"json format", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(Config{
				Level:  slog.LevelInfo,
				Format: tt.format,
				Output: &buf,
			})

			logger.Info("message",
				"string", "value",
				"int", 42,
				"float", 3.14,
				"bool", true,
			)

			output := buf.String()
			if output == "" {
				t.Fatal("expected output, got empty string")
			}

			for _, want := range []string{"string", "value", "42", "3.14", "true"} {
				if !strings.Contains(output, want) {
					t.Errorf("output missing %q: %s", want, output)
				}
			}
		})
	}
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		want      slog.Level
	}{
		{-1, slog.LevelWarn},
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{3, LevelTrace},
		{4, LevelTrace},
	}

	for _, tt := range tests {
		got := LevelFromVerbosity(tt.verbosity)
		if got != tt.want {
			t.Errorf("LevelFromVerbosity(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestLevelTrace(t *testing.T) {
	if LevelTrace >= slog.LevelDebug {
		t.Error("LevelTrace should be lower than LevelDebug")
	}
}

func TestTestWriter_TrimsNewline(t *testing.T) {
	tw := &testWriter{t: t}

	tests := []struct {
		name  string
		input string
	}{
		{"trailing newline", "test message\n"},
		{"no newline", "no newline"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := tw.Write([]byte(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			// io.Writer contract: report the full input consumed, even
			// though the logged message drops the trailing newline.
			if n != len(tt.input) {
				t.Errorf("Write returned %d, want %d", n, len(tt.input))
			}
		})
	}
}
