package config

import (
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/meshmerizeme/meshmerize/spacing"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		Strategy:      "heuristic",
		Workers:       10,
		LearningRate:  5e-5,
		MaxIter:       50,
		Threshold:     1e-6,
		SubpathLength: 25,
		LogLevel:      slog.LevelInfo,
	}
	diff(t, want, cfg)

	s, err := cfg.SpacingStrategy()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(spacing.Heuristic); !ok {
		t.Errorf("got strategy %T", s)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("MESHMERIZE_STRATEGY", "Gradient")
	t.Setenv("MESHMERIZE_WORKERS", "3")
	t.Setenv("MESHMERIZE_LEARNING_RATE", "1e-4")
	t.Setenv("MESHMERIZE_MAX_ITER", "200")
	t.Setenv("MESHMERIZE_SUBPATH_LENGTH", "12.5")
	t.Setenv("MESHMERIZE_SEED", "42")
	t.Setenv("MESHMERIZE_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("got log level %v", cfg.LogLevel)
	}
	s, err := cfg.SpacingStrategy()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(spacing.Parallel); !ok {
		t.Errorf("got strategy %T", s)
	}

	sc := cfg.Spacing(0.5)
	want := spacing.DefaultConfig(0.5)
	want.Workers = 3
	want.LearningRate = 1e-4
	want.MaxIter = 200
	want.SubpathLength = 12.5
	want.Seed = 42
	// Config holds a func, which cmp cannot compare.
	sc.Progress, want.Progress = nil, nil
	diff(t, want, sc)
}

func TestLoadErrors(t *testing.T) {
	for _, tt := range []struct{ key, value string }{
		{"MESHMERIZE_STRATEGY", "random"},
		{"MESHMERIZE_WORKERS", "many"},
		{"MESHMERIZE_LOG_LEVEL", "loud"},
	} {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}
