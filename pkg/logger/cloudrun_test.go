package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
)

func TestCloudRunHandlerShape(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(newCloudRunHandler(slog.LevelInfo, &buf))

	log.With("request_id", "r-1").WithGroup("bank").Warn("bank not found", "id", "b-1", "error", errors.New("boom"))

	var event map[string]any
	if err := json.Unmarshal(buf.Bytes(), &event); err != nil {
		t.Fatalf("output is not json: %v (%s)", err, buf.String())
	}
	if event["severity"] != "WARNING" || event["message"] != "bank not found" {
		t.Fatalf("unexpected event header: %+v", event)
	}
	data, _ := event["data"].(map[string]any)
	if data["request_id"] != "r-1" {
		t.Fatalf("request_id missing from data: %+v", data)
	}
	bank, _ := data["bank"].(map[string]any)
	if bank["id"] != "b-1" || bank["error"] != "boom" {
		t.Fatalf("grouped attrs not nested: %+v", data)
	}
}

func TestCloudRunHandlerLevel(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(newCloudRunHandler(slog.LevelWarn, &buf))

	log.Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info record should be filtered at warn level, got %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
