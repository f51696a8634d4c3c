package infra

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNewLoggerProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger("production", &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Msg("visible")

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected a single JSON line, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "visible" {
		t.Fatalf("unexpected message: %#v", entry["message"])
	}
	if entry["service"] != "ngo-api" {
		t.Fatalf("unexpected service field: %#v", entry["service"])
	}
}

func TestNewLoggerDevelopmentEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger("development", &buf)

	logger.Debug().Msg("debug line")
	if !bytes.Contains(buf.Bytes(), []byte("debug line")) {
		t.Fatalf("expected debug output, got %q", buf.String())
	}
}
