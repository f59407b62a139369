package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLogWritesJSONLine(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelInfo, &buf)

	l.Info("fetching", Fields{"url": "https://www.nps.gov"})

	line := strings.TrimSpace(buf.String())
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("log line is not valid JSON: %v", err)
	}
	if entry["level"] != "INFO" {
		t.Errorf("level = %v, want INFO", entry["level"])
	}
	if entry["message"] != "fetching" {
		t.Errorf("message = %v, want fetching", entry["message"])
	}
	fields, ok := entry["fields"].(map[string]interface{})
	if !ok || fields["url"] != "https://www.nps.gov" {
		t.Errorf("fields = %v, want url field", entry["fields"])
	}
}

func TestMinLevelFiltersMessages(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn, &buf)

	l.Debug("dropped", nil)
	l.Info("dropped", nil)
	l.Warn("kept", nil)
	l.Error("kept", nil, errors.New("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %q", len(lines), buf.String())
	}
}

func TestErrorFieldIncluded(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelError, &buf)

	l.Error("request failed", nil, errors.New("connection refused"))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not valid JSON: %v", err)
	}
	if entry["error"] != "connection refused" {
		t.Errorf("error = %v, want connection refused", entry["error"])
	}
}
