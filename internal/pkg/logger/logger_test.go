package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug":   DebugLevel,
		" WARN ":  WarnLevel,
		"error":   ErrorLevel,
		"info":    InfoLevel,
		"":        InfoLevel,
		"verbose": InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewWritesJSONAtLevel(t *testing.T) {
	var buf bytes.Buffer
	lgr := New(Config{Level: WarnLevel, Output: &buf})

	lgr.Info().Msg("hidden")
	lgr.Warn().Str("form", "checkin").Msg("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("not JSON: %v", err)
	}
	if entry["message"] != "shown" || entry["form"] != "checkin" || entry["level"] != "warn" {
		t.Fatalf("entry = %v", entry)
	}
}

func TestFromContext(t *testing.T) {
	var fallbackBuf, scopedBuf bytes.Buffer
	fallback := New(Config{Output: &fallbackBuf})
	scoped := New(Config{Output: &scopedBuf}).With().Str("request_id", "abc").Logger()

	got := FromContext(context.Background(), fallback)
	got.Info().Msg("one")
	if fallbackBuf.Len() == 0 {
		t.Fatal("expected fallback logger without a scoped one")
	}

	ctx := scoped.WithContext(context.Background())
	got = FromContext(ctx, fallback)
	got.Info().Msg("two")
	if !strings.Contains(scopedBuf.String(), `"request_id":"abc"`) {
		t.Fatalf("scoped output = %q", scopedBuf.String())
	}
}
