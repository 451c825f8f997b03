package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestFanoutFilter(t *testing.T) {
	var console, file bytes.Buffer
	consoleHandler := Filter(
		slog.NewTextHandler(&console, &slog.HandlerOptions{Level: slog.LevelDebug}),
		func(l slog.Level) bool { return l <= slog.LevelInfo || l >= slog.LevelError },
	)
	fileHandler := slog.NewTextHandler(&file, &slog.HandlerOptions{Level: slog.LevelWarn})
	l := slog.New(Fanout(consoleHandler, fileHandler)).With("job", "abc")

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message")
	l.Error("error message")

	for _, tt := range []struct {
		out      string
		msg      string
		included bool
	}{
		{console.String(), "debug message", true},
		{console.String(), "info message", true},
		{console.String(), "warn message", false},
		{console.String(), "error message", true},
		{file.String(), "debug message", false},
		{file.String(), "info message", false},
		{file.String(), "warn message", true},
		{file.String(), "error message", true},
	} {
		if got := strings.Contains(tt.out, tt.msg); got != tt.included {
			t.Errorf("%q included: got %v, want %v", tt.msg, got, tt.included)
		}
	}
	if !strings.Contains(file.String(), "job=abc") {
		t.Errorf("attributes not passed on: %s", file.String())
	}
}

func TestFanoutDisabled(t *testing.T) {
	var buf bytes.Buffer
	h := Fanout(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError}))
	l := slog.New(h)
	if l.Enabled(t.Context(), slog.LevelInfo) {
		t.Error("fanout enabled below the level of all handlers")
	}
	l.WithGroup("g").Error("failed", "n", 1)
	if !strings.Contains(buf.String(), "g.n=1") {
		t.Errorf("group not passed on: %s", buf.String())
	}
}
