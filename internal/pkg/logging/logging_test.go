package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestStringToLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"Warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := stringToLogLevel(tt.in); got != tt.want {
			t.Errorf("stringToLogLevel(%q) = %v, want: %v", tt.in, got, tt.want)
		}
	}
}

func TestSetupLogger(t *testing.T) {
	t.Run("production writes json", func(t *testing.T) {
		var buf bytes.Buffer
		logger := SetupLogger("production", "info", &buf)
		logger.Info("hello", "key", "value")

		var entry map[string]any
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("json.Unmarshal(%q) = %v", buf.String(), err)
		}
		if entry["msg"] != "hello" {
			t.Errorf(`entry["msg"] = %v, want: %q`, entry["msg"], "hello")
		}
	})

	t.Run("development writes text and honors level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := SetupLogger("development", "warn", &buf)

		if logger.Enabled(context.Background(), slog.LevelInfo) {
			t.Error("logger.Enabled(LevelInfo) = true, want: false")
		}

		logger.Warn("careful")
		if !strings.Contains(buf.String(), "msg=careful") {
			t.Errorf("buf.String() = %q, want it to contain %q", buf.String(), "msg=careful")
		}
	})
}
