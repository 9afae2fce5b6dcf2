package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Errorf("ParseLevel(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNewWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(&buf, "info", "json")
	if err != nil {
		t.Fatalf("NewWithWriter failed: %v", err)
	}

	logger.Debug("hidden")
	logger.Info("shape created", "kind", "circle")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 record, got %d: %q", len(lines), buf.String())
	}

	var record map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatalf("record is not JSON: %v", err)
	}
	if record["msg"] != "shape created" || record["kind"] != "circle" {
		t.Errorf("unexpected record %v", record)
	}
}

func TestNewWithWriterText(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(&buf, "debug", "")
	if err != nil {
		t.Fatalf("NewWithWriter failed: %v", err)
	}

	logger.Debug("watching", "path", "doc.json")
	if !strings.Contains(buf.String(), "msg=watching") || !strings.Contains(buf.String(), "path=doc.json") {
		t.Errorf("unexpected text output %q", buf.String())
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := NewWithWriter(&bytes.Buffer{}, "info", "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil).Enabled(context.Background(), slog.LevelError) {
		t.Error("nop logger should not be enabled")
	}

	l := slog.Default()
	if OrNop(l) != l {
		t.Error("OrNop should return the given logger")
	}
}
